package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// DivOp represents an element-wise division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct{}

// Forward computes a / b.
func (DivOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("DivOp", xs, 2)
	return []*tensor.Dense{tensor.Div(xs[0], xs[1])}
}

// Backward computes input gradients for division.
func (DivOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	a, b := xs[0], xs[1]

	gradA := tensor.Div(gys[0], b)

	// grad_b = -(outputGrad * a) / (b * b)
	gradB := tensor.Neg(tensor.Div(tensor.Mul(gys[0], a), tensor.Mul(b, b)))

	return []*tensor.Dense{gradA, gradB}
}

// Div returns a / b.
func Div(a, b *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(DivOp{}, a, b)
}
