package optim

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*autodiff.Variable
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                                  // Timestep for bias correction
	m      map[*autodiff.Variable]*tensor.Dense // First moment estimates
	v      map[*autodiff.Variable]*tensor.Dense // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer. Zero fields of config take the
// defaults LR=0.001, Betas=[0.9, 0.999], Eps=1e-8.
func NewAdam(params []*autodiff.Variable, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autodiff.Variable]*tensor.Dense),
		v:      make(map[*autodiff.Variable]*tensor.Dense),
	}
}

// Step performs a single optimization step. Parameters with no gradient are skipped.
func (a *Adam) Step() {
	a.t++
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad := getGradient(param)
		if grad == nil {
			continue
		}

		m, exists := a.m[param]
		if !exists {
			m = tensor.ZerosLike(grad)
			a.m[param] = m
		}
		v, exists := a.v[param]
		if !exists {
			v = tensor.ZerosLike(grad)
			a.v[param] = v
		}

		data := param.Data()
		a.updateParameter(data.Float64s(), grad.Float64s(), m.Float64s(), v.Float64s(),
			biasCorrection1, biasCorrection2)
		param.SetData(data)
	}
}

// updateParameter updates the moments and the parameter values element-wise.
func (a *Adam) updateParameter(paramData, gradData, mData, vData []float64, biasCorrection1, biasCorrection2 float64) {
	for i := range paramData {
		g := gradData[i]
		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2
		paramData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}

// StateDict returns the optimizer state.
//
// State keys:
//   - "step" -> timestep, as a one-element array
//   - "m.{param_index}", "v.{param_index}" -> moment estimates
func (a *Adam) StateDict() map[string]*tensor.Dense {
	stateDict := map[string]*tensor.Dense{"step": tensor.Scalar(float64(a.t))}
	for i, param := range a.params {
		if m, exists := a.m[param]; exists {
			stateDict[fmt.Sprintf("m.%d", i)] = tensor.Clone(m)
		}
		if v, exists := a.v[param]; exists {
			stateDict[fmt.Sprintf("v.%d", i)] = tensor.Clone(v)
		}
	}
	return stateDict
}

// LoadStateDict restores the timestep and moments saved by StateDict.
//
// Returns an error, leaving the optimizer unchanged, if a moment shape doesn't
// match its parameter.
func (a *Adam) LoadStateDict(stateDict map[string]*tensor.Dense) error {
	t := 0
	if step, exists := stateDict["step"]; exists {
		if step.Size() != 1 {
			return errors.Errorf("step must have one element, got shape %v", step.Shape())
		}
		t = int(tensor.Item(step))
	}

	m := make(map[*autodiff.Variable]*tensor.Dense)
	v := make(map[*autodiff.Variable]*tensor.Dense)
	for i, param := range a.params {
		for _, moment := range []struct {
			key    string
			target map[*autodiff.Variable]*tensor.Dense
		}{{fmt.Sprintf("m.%d", i), m}, {fmt.Sprintf("v.%d", i), v}} {
			value, exists := stateDict[moment.key]
			if !exists {
				continue
			}
			if !tensor.EqualShapes(value.Shape(), param.Shape()) {
				return errors.Errorf("%s shape mismatch for parameter %d: expected %v, got %v",
					moment.key, i, param.Shape(), value.Shape())
			}
			moment.target[param] = tensor.Clone(value)
		}
	}
	a.t, a.m, a.v = t, m, v
	return nil
}
