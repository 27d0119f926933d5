// Package ops provides the elementary differentiable Functions and the
// arithmetic helpers built on them.
//
// Each Function is a small value type implementing autodiff.Function:
//   - SquareOp, PowOp: powers (d(x^c)/dx = c * x^(c-1))
//   - ExpOp, LogOp: exponential and natural logarithm
//   - SinOp, CosOp, TanhOp: trigonometric and hyperbolic functions
//   - AddOp, SubOp, MulOp, DivOp, NegOp: arithmetic
//
// The helpers (Square, Exp, Add, MulScalar, ...) apply a Function through
// autodiff.Call and return the output Variable. Scalar helpers lift the
// constant into an array shaped like the other operand, so every binary
// Function sees two arrays of the same shape.
package ops

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/deepzero/internal/tensor"
)

// expectInputs panics unless exactly n arrays were given to op.
func expectInputs(op string, xs []*tensor.Dense, n int) {
	if len(xs) != n {
		exceptions.Panicf("%s: expected %d inputs, got %d", op, n, len(xs))
	}
}
