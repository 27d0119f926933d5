package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/deepzero/autodiff"
	"github.com/born-ml/deepzero/internal/serialization"
	"github.com/born-ml/deepzero/tensor"
)

// optimizerStatePrefix namespaces optimizer state inside a checkpoint.
const optimizerStatePrefix = "optim."

// statefulOptimizer is implemented by optimizers that can save their state.
type statefulOptimizer interface {
	StateDict() map[string]*tensor.Dense
	LoadStateDict(map[string]*tensor.Dense) error
}

// restoreCheckpoint loads params and optimizer state from path. A missing
// file is not an error: it reports false and leaves everything unchanged.
func restoreCheckpoint(path string, params []*autodiff.Variable, optimizer any) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	state, _, err := serialization.LoadFile(path)
	if err != nil {
		return false, err
	}
	if err := serialization.LoadVariables(params, state); err != nil {
		return false, errors.WithMessagef(err, "restoring %q", path)
	}
	if stateful, ok := optimizer.(statefulOptimizer); ok {
		optimState := make(map[string]*tensor.Dense)
		for key, value := range state {
			if name, found := strings.CutPrefix(key, optimizerStatePrefix); found {
				optimState[name] = value
			}
		}
		if err := stateful.LoadStateDict(optimState); err != nil {
			return false, errors.WithMessagef(err, "restoring optimizer state from %q", path)
		}
	}
	klog.V(1).Infof("restored checkpoint %q", path)
	return true, nil
}

// saveCheckpoint writes params and optimizer state to path.
func saveCheckpoint(path string, params []*autodiff.Variable, optimizer any, metadata map[string]string) error {
	state, err := serialization.VariablesStateDict(params)
	if err != nil {
		return err
	}
	if stateful, ok := optimizer.(statefulOptimizer); ok {
		for key, value := range stateful.StateDict() {
			state[optimizerStatePrefix+key] = value
		}
	}
	return serialization.SaveFile(path, state, metadata)
}
