package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// constant lifts c into a leaf Variable shaped like x.
func constant(x *autodiff.Variable, c float64) *autodiff.Variable {
	return autodiff.NewVariable(tensor.Full(c, x.Shape()...))
}

// AddScalar returns x + c.
func AddScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Add(x, constant(x, c))
}

// SubScalar returns x - c.
func SubScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Sub(x, constant(x, c))
}

// RSubScalar returns c - x.
func RSubScalar(c float64, x *autodiff.Variable) *autodiff.Variable {
	return Sub(constant(x, c), x)
}

// MulScalar returns x * c.
func MulScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Mul(x, constant(x, c))
}

// DivScalar returns x / c.
func DivScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Div(x, constant(x, c))
}

// RDivScalar returns c / x.
//
// Example:
//
//	a := autodiff.NewVariable(tensor.MustFromSlice([]float64{3, 2, 5}, 3))
//	c := ops.RDivScalar(2, a) // [0.667 1 0.4]
func RDivScalar(c float64, x *autodiff.Variable) *autodiff.Variable {
	return Div(constant(x, c), x)
}
