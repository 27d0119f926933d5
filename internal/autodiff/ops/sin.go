package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp struct{}

// Forward computes sin(x).
func (SinOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("SinOp", xs, 1)
	return []*tensor.Dense{tensor.Sin(xs[0])}
}

// Backward computes the input gradient for sin.
func (SinOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Mul(gys[0], tensor.Cos(xs[0]))}
}

// Sin returns sin(x).
func Sin(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(SinOp{}, x)
}
