// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides define-by-run reverse-mode automatic differentiation.
//
// Every call to a Function on Variables records a Creator linking the outputs
// back to the inputs. Calling Backward on a result walks that graph from the
// most recent Creator to the oldest and accumulates a gradient on every
// Variable it reaches.
//
// Example:
//
//	import (
//	    "github.com/born-ml/deepzero/autodiff"
//	    "github.com/born-ml/deepzero/tensor"
//	)
//
//	func main() {
//	    x := autodiff.NewVariable(tensor.Scalar(0.5)).SetName("x")
//	    y := autodiff.Square(autodiff.Exp(autodiff.Square(x)))
//	    y.Backward()
//	    fmt.Println(tensor.Item(x.Grad())) // 3.297442541400256
//	}
package autodiff

import (
	"gonum.org/v1/gonum/graph"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// Variable is a node of the computation graph: a value and its gradient.
type Variable = autodiff.Variable

// Creator records one Function application.
type Creator = autodiff.Creator

// Function is the contract for a differentiable operation.
type Function = autodiff.Function

// NewVariable wraps data in a new leaf Variable.
func NewVariable(data *tensor.Dense) *Variable {
	return autodiff.NewVariable(data)
}

// Call applies f to inputs and records the result in the graph.
func Call(f Function, inputs ...*Variable) []*Variable {
	return autodiff.Call(f, inputs...)
}

// Call1 is Call for Functions with exactly one output.
func Call1(f Function, inputs ...*Variable) *Variable {
	return autodiff.Call1(f, inputs...)
}

// TryCall is Call that reports contract violations as an error.
func TryCall(f Function, inputs ...*Variable) ([]*Variable, error) {
	return autodiff.TryCall(f, inputs...)
}

// NoGrad disables graph recording until the returned function is called.
//
// Example:
//
//	defer autodiff.NoGrad()()
func NoGrad() (restore func()) {
	return autodiff.NoGrad()
}

// GradEnabled reports whether calls are currently recorded.
func GradEnabled() bool {
	return autodiff.GradEnabled()
}

// Graph returns the computation graph that produced v.
func Graph(v *Variable) graph.Directed {
	return autodiff.Graph(v)
}

// DOT renders the computation graph that produced v in Graphviz DOT format.
func DOT(v *Variable) (string, error) {
	return autodiff.DOT(v)
}
