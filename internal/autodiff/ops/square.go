package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// SquareOp represents the square operation: y = x².
//
// Backward pass:
//   - d(x²)/dx = 2x
//   - grad_input = grad_output * 2 * input
type SquareOp struct{}

// Forward computes x * x.
func (SquareOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("SquareOp", xs, 1)
	return []*tensor.Dense{tensor.Mul(xs[0], xs[0])}
}

// Backward computes the input gradient for square.
func (SquareOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Mul(tensor.MulScalar(xs[0], 2), gys[0])}
}

// Square returns x².
func Square(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(SquareOp{}, x)
}
