package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x)
//   - grad_input = grad_output * exp(input)
type ExpOp struct{}

// Forward computes exp(x).
func (ExpOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("ExpOp", xs, 1)
	return []*tensor.Dense{tensor.Exp(xs[0])}
}

// Backward computes the input gradient for exp.
//
// Backward receives inputs, not outputs, so exp(x) is recomputed.
func (ExpOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Mul(tensor.Exp(xs[0]), gys[0])}
}

// Exp returns exp(x).
func Exp(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(ExpOp{}, x)
}
