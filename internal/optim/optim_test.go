package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/autodiff/ops"
	"github.com/born-ml/deepzero/internal/optim"
	"github.com/born-ml/deepzero/internal/tensor"
)

func scalarParam(name string, value float64) *autodiff.Variable {
	return autodiff.NewVariable(tensor.Scalar(value)).SetName(name)
}

func value(v *autodiff.Variable) float64 {
	return tensor.Item(v.Data())
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := scalarParam("x", 2.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.1})

	// Backward on a leaf seeds grad_x = 1.
	x.Backward()
	optimizer.Step()

	// x_new = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, value(x), 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	x := scalarParam("x", 1.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	x.Backward()
	optimizer.Step()
	// velocity = 1, x = 1 - 0.1
	assert.InDelta(t, 0.9, value(x), 1e-12)

	optimizer.ZeroGrad()
	x.Backward()
	optimizer.Step()
	// velocity = 0.9 * 1 + 1 = 1.9, x = 0.9 - 0.19
	assert.InDelta(t, 0.71, value(x), 1e-12)
}

// TestSGD_SkipsParamsWithoutGrad tests that parameters outside the graph are left alone.
func TestSGD_SkipsParamsWithoutGrad(t *testing.T) {
	x := scalarParam("x", 1.0)
	unused := scalarParam("unused", 5.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x, unused}, optim.SGDConfig{LR: 0.5})

	ops.Square(x).Backward()
	optimizer.Step()

	assert.InDelta(t, 0.0, value(x), 1e-12)
	assert.InDelta(t, 5.0, value(unused), 1e-12)
}

// TestSGD_ZeroGrad tests that ZeroGrad clears every parameter's gradient.
func TestSGD_ZeroGrad(t *testing.T) {
	x := scalarParam("x", 1.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{})

	x.Backward()
	require.True(t, x.HasGrad())
	optimizer.ZeroGrad()
	assert.False(t, x.HasGrad())
}

func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
}

// TestSGD_StateDict tests that velocities round-trip through StateDict.
func TestSGD_StateDict(t *testing.T) {
	x := scalarParam("x", 1.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	x.Backward()
	optimizer.Step()

	state := optimizer.StateDict()
	require.Contains(t, state, "velocity.0")
	assert.Equal(t, []float64{1}, tensor.Values(state["velocity.0"]))

	y := scalarParam("y", 0.9)
	restored := optim.NewSGD([]*autodiff.Variable{y}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	require.NoError(t, restored.LoadStateDict(state))
	y.Backward()
	restored.Step()
	assert.InDelta(t, 0.71, value(y), 1e-12)

	bad := map[string]*tensor.Dense{"velocity.0": tensor.Zeros(2)}
	assert.Error(t, restored.LoadStateDict(bad))

	plain := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{})
	assert.Empty(t, plain.StateDict())
}

// TestAdam_SimpleUpdate tests that the first Adam step moves by about lr.
func TestAdam_SimpleUpdate(t *testing.T) {
	x := scalarParam("x", 1.0)
	optimizer := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})

	ops.MulScalar(x, 2).Backward()
	optimizer.Step()

	// m_hat = g, v_hat = g², so the step is lr * g / |g|.
	assert.InDelta(t, 0.9, value(x), 1e-6)
	assert.Equal(t, 1, optimizer.GetTimestep())
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())
	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

// TestConvergence_SimpleQuadratic tests that Adam minimizes (x - 3)².
func TestConvergence_SimpleQuadratic(t *testing.T) {
	x := scalarParam("x", 0.0)
	optimizer := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})

	for range 500 {
		optimizer.ZeroGrad()
		ops.Square(ops.SubScalar(x, 3)).Backward()
		optimizer.Step()
	}
	assert.InDelta(t, 3.0, value(x), 1e-2)
}

// TestConvergence_Rosenbrock tests that plain gradient descent walks the
// Rosenbrock valley towards its minimum at (1, 1).
func TestConvergence_Rosenbrock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long convergence test")
	}
	x0 := scalarParam("x0", 0.0)
	x1 := scalarParam("x1", 2.0)
	optimizer := optim.NewSGD([]*autodiff.Variable{x0, x1}, optim.SGDConfig{LR: 0.001})

	for range 10000 {
		optimizer.ZeroGrad()
		y := ops.Add(
			ops.MulScalar(ops.Square(ops.Sub(x1, ops.Square(x0))), 100),
			ops.Square(ops.RSubScalar(1, x0)),
		)
		y.Backward()
		optimizer.Step()
	}
	assert.InDelta(t, 1.0, value(x0), 0.02)
	assert.InDelta(t, 1.0, value(x1), 0.02)
}

// TestAdam_StateDict tests that a restored Adam continues exactly like the original.
func TestAdam_StateDict(t *testing.T) {
	step := func(optimizer *optim.Adam, x *autodiff.Variable) {
		optimizer.ZeroGrad()
		ops.Square(ops.SubScalar(x, 3)).Backward()
		optimizer.Step()
	}

	x := scalarParam("x", 0.0)
	original := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})
	for range 5 {
		step(original, x)
	}
	state := original.StateDict()
	require.Contains(t, state, "m.0")
	require.Contains(t, state, "v.0")
	assert.Equal(t, 5.0, tensor.Item(state["step"]))

	y := scalarParam("y", value(x))
	restored := optim.NewAdam([]*autodiff.Variable{y}, optim.AdamConfig{LR: 0.1})
	require.NoError(t, restored.LoadStateDict(state))
	assert.Equal(t, 5, restored.GetTimestep())

	step(original, x)
	step(restored, y)
	assert.InDelta(t, value(x), value(y), 1e-12)

	bad := map[string]*tensor.Dense{"m.0": tensor.Zeros(2)}
	assert.Error(t, restored.LoadStateDict(bad))
	assert.Equal(t, 6, restored.GetTimestep())
}
