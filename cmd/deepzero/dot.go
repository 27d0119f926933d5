package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/born-ml/deepzero/autodiff"
	"github.com/born-ml/deepzero/tensor"
)

// runDOT prints the computation graph of the Rosenbrock function.
func runDOT(w io.Writer) error {
	x0 := autodiff.NewVariable(tensor.Scalar(0)).SetName("x0")
	x1 := autodiff.NewVariable(tensor.Scalar(2)).SetName("x1")
	y := rosenbrock(x0, x1).SetName("y")

	out, err := autodiff.DOT(y)
	if err != nil {
		return errors.WithMessage(err, "failed to render graph")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
