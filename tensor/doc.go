// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 arrays that Variables hold.
//
// Arrays are gorgonia.org/tensor Dense values with float64 backing. Every
// operation here allocates a new result and requires operands of exactly the
// same shape: there is no broadcasting. A scalar is an array of shape (1).
//
// # Basic Usage
//
//	import "github.com/born-ml/deepzero/tensor"
//
//	func main() {
//	    x := tensor.MustFromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	    y := tensor.Ones(2, 3)
//	    z := tensor.Add(x, y)
//	    fmt.Println(tensor.Values(z)) // [2 3 4 5 6 7]
//	}
package tensor
