package serialization

import (
	"github.com/pkg/errors"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

// VariablesStateDict maps each Variable's name to a copy of its data.
// Every Variable must have a unique, non-empty name.
func VariablesStateDict(vars []*autodiff.Variable) (map[string]*tensor.Dense, error) {
	state := make(map[string]*tensor.Dense, len(vars))
	for i, v := range vars {
		name := v.Name()
		if err := ValidateTensorName(name); err != nil {
			return nil, errors.WithMessagef(err, "variable #%d", i)
		}
		if _, found := state[name]; found {
			return nil, errors.Errorf("duplicate variable name %q", name)
		}
		state[name] = v.Data()
	}
	return state, nil
}

// LoadVariables sets the data of each Variable from the entry with its name.
// It fails without modifying anything if an entry is missing or has the wrong shape.
func LoadVariables(vars []*autodiff.Variable, state map[string]*tensor.Dense) error {
	for _, v := range vars {
		data, found := state[v.Name()]
		if !found {
			return errors.Errorf("no entry for variable %q", v.Name())
		}
		if !tensor.EqualShapes(data.Shape(), v.Shape()) {
			return errors.Errorf("variable %q has shape %v, entry has shape %v", v.Name(), v.Shape(), data.Shape())
		}
	}
	for _, v := range vars {
		v.SetData(tensor.Clone(state[v.Name()]))
	}
	return nil
}
