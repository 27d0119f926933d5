package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Forward computes a - b.
func (SubOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("SubOp", xs, 2)
	return []*tensor.Dense{tensor.Sub(xs[0], xs[1])}
}

// Backward computes input gradients for subtraction.
func (SubOp) Backward(_, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{gys[0], tensor.Neg(gys[0])}
}

// Sub returns a - b.
func Sub(a, b *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(SubOp{}, a, b)
}
