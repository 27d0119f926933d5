package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/deepzero/autodiff"
	"github.com/born-ml/deepzero/optim"
	"github.com/born-ml/deepzero/tensor"
)

type optimizeConfig struct {
	Optimizer string
	LR        float64
	Momentum  float64
	Iters     int
	Progress  bool

	// Checkpoint, if set, is restored before and saved after optimizing.
	Checkpoint string
}

func newOptimizer(params []*autodiff.Variable, cfg optimizeConfig) (optim.Optimizer, error) {
	switch cfg.Optimizer {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR}), nil
	default:
		return nil, errors.Errorf("unknown optimizer %q, valid values are \"sgd\" and \"adam\"", cfg.Optimizer)
	}
}

// runOptimize minimizes the Rosenbrock function starting from (0, 2).
func runOptimize(w io.Writer, cfg optimizeConfig) error {
	if cfg.Iters <= 0 {
		return errors.Errorf("-iters must be positive, got %d", cfg.Iters)
	}
	x0 := autodiff.NewVariable(tensor.Scalar(0)).SetName("x0")
	x1 := autodiff.NewVariable(tensor.Scalar(2)).SetName("x1")
	params := []*autodiff.Variable{x0, x1}
	optimizer, err := newOptimizer(params, cfg)
	if err != nil {
		return err
	}
	if cfg.Checkpoint != "" {
		restored, err := restoreCheckpoint(cfg.Checkpoint, params, optimizer)
		if err != nil {
			return err
		}
		if restored {
			if _, err := fmt.Fprintf(w, "resuming from %s: x0=%.6f x1=%.6f\n",
				cfg.Checkpoint, tensor.Item(x0.Data()), tensor.Item(x1.Data())); err != nil {
				return err
			}
		}
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.NewOptions(cfg.Iters,
			progressbar.OptionSetDescription(cfg.Optimizer),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("steps"),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionSetWriter(w),
		)
	}

	var loss float64
	for step := range cfg.Iters {
		optimizer.ZeroGrad()
		y := rosenbrock(x0, x1)
		y.Backward()
		optimizer.Step()

		loss = tensor.Item(y.Data())
		if klog.V(1).Enabled() && step%1000 == 0 {
			klog.Infof("step %d: loss=%g", step, loss)
		}
		if bar != nil {
			if err := bar.Add(1); err != nil {
				return errors.Wrap(err, "failed to update progress bar")
			}
		}
	}
	if bar != nil {
		if err := bar.Finish(); err != nil {
			return errors.Wrap(err, "failed to finish progress bar")
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if cfg.Checkpoint != "" {
		metadata := map[string]string{"optimizer": cfg.Optimizer, "steps": strconv.Itoa(cfg.Iters)}
		if err := saveCheckpoint(cfg.Checkpoint, params, optimizer, metadata); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "%s after %s steps: x0=%.6f x1=%.6f loss=%.3g\n",
		cfg.Optimizer, humanize.Comma(int64(cfg.Iters)),
		tensor.Item(x0.Data()), tensor.Item(x1.Data()), loss)
	return err
}
