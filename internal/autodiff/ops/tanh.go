package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// TanhOp represents the hyperbolic tangent: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
type TanhOp struct{}

// Forward computes tanh(x).
func (TanhOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("TanhOp", xs, 1)
	return []*tensor.Dense{tensor.Tanh(xs[0])}
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
// grad_input = grad_output * (1 - tanh²(input)).
func (TanhOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	y := tensor.Tanh(xs[0])
	derivative := tensor.AddScalar(tensor.Neg(tensor.Mul(y, y)), 1)
	return []*tensor.Dense{tensor.Mul(gys[0], derivative)}
}

// Tanh returns tanh(x).
func Tanh(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(TanhOp{}, x)
}
