// Package optim implements gradient-based optimizers over autodiff Variables.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient after Backward and
// overwrite the parameter's data in place. Parameters without a gradient
// are skipped.
//
// Example usage:
//
//	x := autodiff.NewVariable(tensor.Scalar(3)).SetName("x")
//	optimizer := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})
//
//	for range steps {
//	    optimizer.ZeroGrad()
//	    loss := ops.Square(x)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across Backward calls, so this should be called
	// before each backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad clears the gradient of every parameter.
func zeroGrad(params []*autodiff.Variable) {
	for _, param := range params {
		param.ClearGrad()
	}
}

// getGradient returns the parameter's gradient, or nil if it did not take
// part in the last backward pass.
func getGradient(param *autodiff.Variable) *tensor.Dense {
	if param == nil || !param.HasGrad() {
		return nil
	}
	return param.Grad()
}
