// Package tensor is the dense array layer used by the autodiff engine.
//
// Arrays are float64 gorgonia.org/tensor Dense values. This package does not
// reimplement storage or arithmetic: it only adds the constructors the engine
// needs (constant fills, copies of Go slices) and fail-fast wrappers around the
// library's elementwise operations.
//
// Every wrapper returns a new array and never mutates its arguments, with the
// single exception of AddInPlace, which the backward pass uses to accumulate
// gradients into arrays it owns.
//
// Example:
//
//	x := tensor.MustFromSlice([]float64{1, 2, 3}, 3)
//	y := tensor.Mul(x, x)           // [1 4 9]
//	z := tensor.MulScalar(y, 0.5)   // [0.5 2 4.5]
package tensor

import (
	"fmt"

	gorgonia "gorgonia.org/tensor"
)

// Dense is the array type shared by every package of the engine.
type Dense = gorgonia.Dense

// Shape is the dimensions of an array. Scalars have shape (1).
type Shape = gorgonia.Shape

// Clone returns a deep copy of a.
func Clone(a *Dense) *Dense {
	return a.Clone().(*Dense)
}

// Values returns a copy of the elements of a in row-major order.
func Values(a *Dense) []float64 {
	src := a.Float64s()
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Item returns the single element of a one-element array.
// Panics if a holds more than one element.
func Item(a *Dense) float64 {
	values := a.Float64s()
	if len(values) != 1 {
		panic(fmt.Sprintf("Item() only works for one-element arrays, got shape %v", a.Shape()))
	}
	return values[0]
}

// Describe returns a short description of a, such as "Dense(2, 3)", used in panics.
func Describe(a *Dense) string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Dense%v", a.Shape())
}
