// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers for autodiff Variables.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	x0 := autodiff.NewVariable(tensor.Scalar(0))
//	x1 := autodiff.NewVariable(tensor.Scalar(2))
//	optimizer := optim.NewSGD([]*autodiff.Variable{x0, x1}, optim.SGDConfig{LR: 0.001})
//
//	for range iterations {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward and backward pass
//	    y := rosenbrock(x0, x1)
//	    y.Backward()
//
//	    // 3. Update parameters
//	    optimizer.Step()
//	}
package optim
