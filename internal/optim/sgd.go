package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.001,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*autodiff.Variable
	lr         float64
	momentum   float64
	velocities map[*autodiff.Variable]*tensor.Dense
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*autodiff.Variable, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Variable]*tensor.Dense),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := getGradient(param)
		if grad == nil {
			continue
		}

		update := grad
		if s.momentum != 0 {
			update = s.updateVelocity(param, grad)
		}

		// param -= lr * update
		param.SetData(tensor.Sub(param.Data(), tensor.MulScalar(update, s.lr)))
	}
}

// updateVelocity computes velocity = momentum * velocity + grad and stores it.
func (s *SGD) updateVelocity(param *autodiff.Variable, grad *tensor.Dense) *tensor.Dense {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.ZerosLike(grad)
	}
	velocity = tensor.Add(tensor.MulScalar(velocity, s.momentum), grad)
	s.velocities[param] = velocity
	return velocity
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state.
//
// For SGD with momentum, this exports velocity buffers for each parameter.
// Without momentum, returns an empty map.
//
// State keys: "velocity.{param_index}" -> velocity array.
func (s *SGD) StateDict() map[string]*tensor.Dense {
	stateDict := make(map[string]*tensor.Dense)
	if s.momentum == 0 {
		return stateDict
	}

	for i, param := range s.params {
		velocity, exists := s.velocities[param]
		if !exists {
			continue // Not stepped yet.
		}
		stateDict[fmt.Sprintf("velocity.%d", i)] = tensor.Clone(velocity)
	}
	return stateDict
}

// LoadStateDict restores velocity buffers saved by StateDict.
//
// If momentum is 0 the state is ignored. Returns an error if a velocity
// shape doesn't match its parameter.
func (s *SGD) LoadStateDict(stateDict map[string]*tensor.Dense) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make(map[*autodiff.Variable]*tensor.Dense)
	for i, param := range s.params {
		velocity, exists := stateDict[fmt.Sprintf("velocity.%d", i)]
		if !exists {
			continue
		}
		if !tensor.EqualShapes(velocity.Shape(), param.Shape()) {
			return errors.Errorf("velocity shape mismatch for parameter %d: expected %v, got %v",
				i, param.Shape(), velocity.Shape())
		}
		velocities[param] = tensor.Clone(velocity)
	}
	s.velocities = velocities
	return nil
}
