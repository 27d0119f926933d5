package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// LogOp represents element-wise natural logarithm operation.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Input values must be positive.
type LogOp struct{}

// Forward computes log(x).
func (LogOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("LogOp", xs, 1)
	return []*tensor.Dense{tensor.Log(xs[0])}
}

// Backward computes the input gradient for log.
func (LogOp) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{tensor.Div(gys[0], xs[0])}
}

// Log returns log(x).
func Log(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(LogOp{}, x)
}
