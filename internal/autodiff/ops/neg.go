package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// NegOp represents negation: y = -x.
//
// Backward pass:
//   - d(-x)/dx = -1, so grad_input = -grad_output
type NegOp struct{}

// Forward computes -x.
func (NegOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("NegOp", xs, 1)
	return []*tensor.Dense{tensor.Neg(xs[0])}
}

// Backward computes the input gradient for negation.
func (NegOp) Backward(_, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Neg(gys[0])}
}

// Neg returns -x.
func Neg(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(NegOp{}, x)
}
