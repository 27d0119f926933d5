package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = -grad_output * sin(input)
type CosOp struct{}

// Forward computes cos(x).
func (CosOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("CosOp", xs, 1)
	return []*tensor.Dense{tensor.Cos(xs[0])}
}

// Backward computes the input gradient for cos.
func (CosOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Neg(tensor.Mul(gys[0], tensor.Sin(xs[0])))}
}

// Cos returns cos(x).
func Cos(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(CosOp{}, x)
}
