// Package autodiff implements define-by-run reverse-mode automatic differentiation.
//
// Architecture:
//   - Variable: a graph vertex holding data, an optional gradient, a generation
//     and the Creator that produced it (nil for leaves).
//   - Function: the contract every elementary operation implements (Forward and
//     Backward over arrays). Call applies a Function to Variables and wires the graph.
//   - Creator: the call record produced by Call. It owns its inputs and only
//     weakly references its outputs, so an output and its Creator never form a
//     reference cycle.
//   - Backward: walks Creators from the highest generation down, accumulating
//     gradients on every upstream Variable.
//
// Usage:
//
//	x := autodiff.NewVariable(tensor.MustFromSlice([]float64{0.5}, 1))
//	y := ops.Square(ops.Exp(ops.Square(x)))
//	y.Backward()
//	fmt.Println(x.Grad()) // ~[3.2974]
//
// A graph is not safe for concurrent use: building it and running Backward
// must happen on a single goroutine.
package autodiff

// gradEnabled controls whether Call records Creators.
var gradEnabled = true

// GradEnabled reports whether Call currently records the graph.
func GradEnabled() bool {
	return gradEnabled
}

// NoGrad disables graph recording until the returned function is called.
// Outputs produced meanwhile are leaves: they have no Creator and generation 0.
//
// Example:
//
//	defer autodiff.NoGrad()()
//	y := ops.Square(x) // y.Creator() == nil
func NoGrad() (restore func()) {
	previous := gradEnabled
	gradEnabled = false
	return func() {
		gradEnabled = previous
	}
}
