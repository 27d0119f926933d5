package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Forward computes a * b.
func (MulOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("MulOp", xs, 2)
	return []*tensor.Dense{tensor.Mul(xs[0], xs[1])}
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	a, b := xs[0], xs[1]
	return []*tensor.Dense{tensor.Mul(gys[0], b), tensor.Mul(gys[0], a)}
}

// Mul returns a * b.
func Mul(a, b *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(MulOp{}, a, b)
}
