package main

import (
	"fmt"
	"io"

	"github.com/born-ml/deepzero/autodiff"
	"github.com/born-ml/deepzero/tensor"
)

// rosenbrock returns 100(x1 - x0²)² + (1 - x0)².
func rosenbrock(x0, x1 *autodiff.Variable) *autodiff.Variable {
	return autodiff.Add(
		autodiff.MulScalar(autodiff.Square(autodiff.Sub(x1, autodiff.Square(x0))), 100),
		autodiff.Square(autodiff.RSubScalar(1, x0)),
	)
}

// runDemo differentiates the sample expressions and prints values and gradients.
func runDemo(w io.Writer) error {
	a := autodiff.NewVariable(tensor.MustFromSlice([]float64{3, 2, 5}, 3)).SetName("a")
	c := autodiff.RDivScalar(2, a)
	c.Backward()
	if _, err := fmt.Fprintf(w, "c = 2 / a at a=[3 2 5]: c=%v dc/da=%v\n",
		tensor.Values(c.Data()), tensor.Values(a.Grad())); err != nil {
		return err
	}

	x := autodiff.NewVariable(tensor.Scalar(0.5)).SetName("x")
	y := autodiff.Square(autodiff.Exp(autodiff.Square(x)))
	y.Backward()
	if _, err := fmt.Fprintf(w, "y = (exp(x²))² at x=0.5: y=%v dy/dx=%v\n",
		tensor.Item(y.Data()), tensor.Item(x.Grad())); err != nil {
		return err
	}

	x = autodiff.NewVariable(tensor.Scalar(3)).SetName("x")
	a = autodiff.Square(x)
	y = autodiff.Add(autodiff.Square(a), autodiff.Square(a))
	y.Backward()
	if _, err := fmt.Fprintf(w, "y = a² + a², a = x² at x=3: y=%v dy/dx=%v\n",
		tensor.Item(y.Data()), tensor.Item(x.Grad())); err != nil {
		return err
	}

	x0 := autodiff.NewVariable(tensor.Scalar(0)).SetName("x0")
	x1 := autodiff.NewVariable(tensor.Scalar(2)).SetName("x1")
	y = rosenbrock(x0, x1)
	y.Backward()
	_, err := fmt.Fprintf(w, "rosenbrock at (0, 2): y=%v dy/dx0=%v dy/dx1=%v\n",
		tensor.Item(y.Data()), tensor.Item(x0.Grad()), tensor.Item(x1.Grad()))
	return err
}
