// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/deepzero/internal/tensor"

// Dense is a float64 n-dimensional array.
type Dense = tensor.Dense

// Shape is the size of each dimension of an array.
type Shape = tensor.Shape

// Creation

// FromSlice copies data into a new array of the given shape.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	return tensor.FromSlice(data, shape...)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float64, shape ...int) *Dense {
	return tensor.MustFromSlice(data, shape...)
}

// Scalar returns a one-element array of shape (1).
func Scalar(value float64) *Dense { return tensor.Scalar(value) }

// Full returns an array filled with value.
func Full(value float64, shape ...int) *Dense { return tensor.Full(value, shape...) }

// Zeros returns an array of zeros.
func Zeros(shape ...int) *Dense { return tensor.Zeros(shape...) }

// Ones returns an array of ones.
func Ones(shape ...int) *Dense { return tensor.Ones(shape...) }

// OnesLike returns an array of ones shaped like a.
func OnesLike(a *Dense) *Dense { return tensor.OnesLike(a) }

// ZerosLike returns an array of zeros shaped like a.
func ZerosLike(a *Dense) *Dense { return tensor.ZerosLike(a) }

// Inspection

// Clone returns a deep copy of a.
func Clone(a *Dense) *Dense { return tensor.Clone(a) }

// Values returns a copy of the elements of a in row-major order.
func Values(a *Dense) []float64 { return tensor.Values(a) }

// Item returns the only element of a one-element array.
func Item(a *Dense) float64 { return tensor.Item(a) }

// EqualShapes reports whether two shapes are identical.
func EqualShapes(a, b Shape) bool { return tensor.EqualShapes(a, b) }

// AllClose reports whether a and b have the same shape and every pair of
// elements is within tol.
func AllClose(a, b *Dense, tol float64) bool { return tensor.AllClose(a, b, tol) }

// Elementwise operations

// Add returns a + b.
func Add(a, b *Dense) *Dense { return tensor.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Dense) *Dense { return tensor.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Dense) *Dense { return tensor.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Dense) *Dense { return tensor.Div(a, b) }

// Sum returns the sum of all elements.
func Sum(a *Dense) float64 { return tensor.Sum(a) }
