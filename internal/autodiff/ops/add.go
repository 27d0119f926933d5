package ops

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Both inputs must have the same shape.
type AddOp struct{}

// Forward computes a + b.
func (AddOp) Forward(xs []*tensor.Dense) []*tensor.Dense {
	expectInputs("AddOp", xs, 2)
	return []*tensor.Dense{tensor.Add(xs[0], xs[1])}
}

// Backward computes input gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both inputs.
func (AddOp) Backward(_, gys []*tensor.Dense) []*tensor.Dense {
	return []*tensor.Dense{gys[0], gys[0]}
}

// Add returns a + b.
func Add(a, b *autodiff.Variable) *autodiff.Variable {
	return autodiff.Call1(AddOp{}, a, b)
}
