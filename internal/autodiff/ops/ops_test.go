package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/autodiff/ops"
	"github.com/born-ml/deepzero/internal/tensor"
)

const (
	epsilonGrad = 1e-6
	tolerance   = 1e-5
)

// numericalGradient computes d(sum(fn(inputs)))/d(inputs[which]) with central differences.
func numericalGradient(fn func(xs ...*tensor.Dense) *tensor.Dense, inputs []*tensor.Dense, which int) *tensor.Dense {
	grad := tensor.ZerosLike(inputs[which])
	gradData := grad.Float64s()

	for i := range gradData {
		plus := cloneAll(inputs)
		plus[which].Float64s()[i] += epsilonGrad
		minus := cloneAll(inputs)
		minus[which].Float64s()[i] -= epsilonGrad

		gradData[i] = (tensor.Sum(fn(plus...)) - tensor.Sum(fn(minus...))) / (2 * epsilonGrad)
	}
	return grad
}

func cloneAll(xs []*tensor.Dense) []*tensor.Dense {
	out := make([]*tensor.Dense, len(xs))
	for i, x := range xs {
		out[i] = tensor.Clone(x)
	}
	return out
}

// checkGradients compares the gradients from Backward against finite differences.
func checkGradients(t *testing.T, f autodiff.Function, inputs ...*tensor.Dense) {
	t.Helper()
	forward := func(xs ...*tensor.Dense) *tensor.Dense { return f.Forward(xs)[0] }

	vars := make([]*autodiff.Variable, len(inputs))
	for i, x := range inputs {
		vars[i] = autodiff.NewVariable(tensor.Clone(x))
	}
	autodiff.Call1(f, vars...).Backward()

	for i := range inputs {
		expected := numericalGradient(forward, inputs, i)
		actual := vars[i].Grad()
		require.NotNil(t, actual, "input #%d has no gradient", i)
		assert.True(t, tensor.AllClose(expected, actual, tolerance),
			"input #%d: numerical %v, autodiff %v", i, tensor.Values(expected), tensor.Values(actual))
	}
}

func TestNumericalGradients(t *testing.T) {
	x := tensor.MustFromSlice([]float64{0.3, -1.2, 2.5, 0.9, -0.4, 1.7}, 2, 3)
	positive := tensor.MustFromSlice([]float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}, 2, 3)

	t.Run("Square", func(t *testing.T) { checkGradients(t, ops.SquareOp{}, x) })
	t.Run("Pow", func(t *testing.T) { checkGradients(t, ops.PowOp{Exponent: 3}, x) })
	t.Run("PowFractional", func(t *testing.T) { checkGradients(t, ops.PowOp{Exponent: 0.5}, positive) })
	t.Run("Exp", func(t *testing.T) { checkGradients(t, ops.ExpOp{}, x) })
	t.Run("Log", func(t *testing.T) { checkGradients(t, ops.LogOp{}, positive) })
	t.Run("Sin", func(t *testing.T) { checkGradients(t, ops.SinOp{}, x) })
	t.Run("Cos", func(t *testing.T) { checkGradients(t, ops.CosOp{}, x) })
	t.Run("Tanh", func(t *testing.T) { checkGradients(t, ops.TanhOp{}, x) })
	t.Run("Neg", func(t *testing.T) { checkGradients(t, ops.NegOp{}, x) })
	t.Run("Add", func(t *testing.T) { checkGradients(t, ops.AddOp{}, x, positive) })
	t.Run("Sub", func(t *testing.T) { checkGradients(t, ops.SubOp{}, x, positive) })
	t.Run("Mul", func(t *testing.T) { checkGradients(t, ops.MulOp{}, x, positive) })
	t.Run("Div", func(t *testing.T) { checkGradients(t, ops.DivOp{}, x, positive) })
}

// TestAddOp_Backward tests that addition passes the upstream gradient to both inputs.
func TestAddOp_Backward(t *testing.T) {
	a := tensor.MustFromSlice([]float64{1, 2, 3}, 3)
	b := tensor.MustFromSlice([]float64{4, 5, 6}, 3)
	gy := tensor.MustFromSlice([]float64{1, 2, 3}, 3)

	grads := ops.AddOp{}.Backward([]*tensor.Dense{a, b}, []*tensor.Dense{gy})
	require.Len(t, grads, 2)
	assert.Equal(t, []float64{1, 2, 3}, tensor.Values(grads[0]))
	assert.Equal(t, []float64{1, 2, 3}, tensor.Values(grads[1]))
}

// TestDivOp_Backward tests d(a/b)/da = 1/b and d(a/b)/db = -a/b².
func TestDivOp_Backward(t *testing.T) {
	a := tensor.MustFromSlice([]float64{6}, 1)
	b := tensor.MustFromSlice([]float64{2}, 1)
	gy := tensor.Ones(1)

	grads := ops.DivOp{}.Backward([]*tensor.Dense{a, b}, []*tensor.Dense{gy})
	assert.InDelta(t, 0.5, tensor.Item(grads[0]), 1e-12)
	assert.InDelta(t, -1.5, tensor.Item(grads[1]), 1e-12)
}

// TestForward_WrongArity tests that Functions reject the wrong number of inputs.
func TestForward_WrongArity(t *testing.T) {
	x := tensor.Ones(2)
	assert.Panics(t, func() { ops.SquareOp{}.Forward([]*tensor.Dense{x, x}) })
	assert.Panics(t, func() { ops.AddOp{}.Forward([]*tensor.Dense{x}) })
}

func TestScalarHelpers(t *testing.T) {
	a := autodiff.NewVariable(tensor.MustFromSlice([]float64{3, 2, 5}, 3))

	c := ops.RDivScalar(2, a)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 1, 0.4}, tensor.Values(c.Data()), 1e-12)
	c.Backward()
	assert.InDeltaSlice(t, []float64{-2.0 / 9, -0.5, -2.0 / 25}, tensor.Values(a.Grad()), 1e-12)

	x := autodiff.NewVariable(tensor.MustFromSlice([]float64{1, 2}, 2))
	assert.Equal(t, []float64{4, 5}, tensor.Values(ops.AddScalar(x, 3).Data()))
	assert.Equal(t, []float64{-2, -1}, tensor.Values(ops.SubScalar(x, 3).Data()))
	assert.Equal(t, []float64{2, 1}, tensor.Values(ops.RSubScalar(3, x).Data()))
	assert.Equal(t, []float64{3, 6}, tensor.Values(ops.MulScalar(x, 3).Data()))
	assert.Equal(t, []float64{0.5, 1}, tensor.Values(ops.DivScalar(x, 2).Data()))
	assert.InDeltaSlice(t, []float64{1, 8}, tensor.Values(ops.Pow(x, 3).Data()), 1e-12)
}

// TestRosenbrock tests the gradient of y = 100(x1 - x0²)² + (1 - x0)² at (0, 2).
func TestRosenbrock(t *testing.T) {
	x0 := autodiff.NewVariable(tensor.Scalar(0))
	x1 := autodiff.NewVariable(tensor.Scalar(2))

	y := ops.Add(
		ops.MulScalar(ops.Square(ops.Sub(x1, ops.Square(x0))), 100),
		ops.Square(ops.RSubScalar(1, x0)),
	)
	y.Backward()

	assert.InDelta(t, 401.0, tensor.Item(y.Data()), 1e-12)
	assert.InDelta(t, -2.0, tensor.Item(x0.Grad()), 1e-12)
	assert.InDelta(t, 400.0, tensor.Item(x1.Grad()), 1e-12)
}

// TestTanh_HigherValues tests tanh against math.Tanh away from zero.
func TestTanh_HigherValues(t *testing.T) {
	x := autodiff.NewVariable(tensor.MustFromSlice([]float64{-3, 3}, 2))
	y := ops.Tanh(x)
	assert.InDeltaSlice(t, []float64{math.Tanh(-3), math.Tanh(3)}, tensor.Values(y.Data()), 1e-12)
	y.Backward()
	d := 1 - math.Tanh(3)*math.Tanh(3)
	assert.InDeltaSlice(t, []float64{d, d}, tensor.Values(x.Grad()), 1e-12)
}
