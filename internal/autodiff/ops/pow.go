package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// PowOp represents raising to a constant power: y = x^c.
//
// Backward pass:
//   - d(x^c)/dx = c * x^(c-1)
//   - grad_input = grad_output * c * input^(c-1)
type PowOp struct {
	Exponent float64
}

// Forward computes x^c.
func (op PowOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("PowOp", xs, 1)
	return []*tensor.Dense{tensor.PowScalar(xs[0], op.Exponent)}
}

// Backward computes the input gradient for the power function.
func (op PowOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	local := tensor.MulScalar(tensor.PowScalar(xs[0], op.Exponent-1), op.Exponent)
	return []*tensor.Dense{tensor.Mul(local, gys[0])}
}

// Pow returns x^c.
func Pow(x *autodiff.Variable, c float64) *autodiff.Variable {
	return autodiff.Call1(PowOp{Exponent: c}, x)
}
