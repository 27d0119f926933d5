package autodiff

import (
	"fmt"

	"github.com/gomlx/exceptions"

	"github.com/born-ml/deepzero/internal/tensor"
)

// Variable is a tensor-valued vertex of the computation graph.
//
// Variables are shared by pointer: the same Variable may be held by user code
// and by the Creators of every operation that consumed it.
type Variable struct {
	data       *tensor.Dense
	grad       *tensor.Dense // nil until the first gradient is accumulated
	generation int
	creator    *Creator
	name       string
}

// NewVariable creates a leaf Variable: generation 0, no gradient, no creator.
// The Variable takes ownership of data.
func NewVariable(data *tensor.Dense) *Variable {
	if data == nil {
		exceptions.Panicf("NewVariable: nil data")
	}
	return &Variable{data: data}
}

// SetName sets a label used by String and by graph exports.
// Returns the Variable itself for chaining.
func (v *Variable) SetName(name string) *Variable {
	v.name = name
	return v
}

// Name returns the label set with SetName, or "".
func (v *Variable) Name() string {
	return v.name
}

// Data returns a copy of the Variable's data.
func (v *Variable) Data() *tensor.Dense {
	return tensor.Clone(v.data)
}

// SetData replaces the Variable's data. The new array must have the same
// shape as the current one, so an accumulated gradient stays consistent.
func (v *Variable) SetData(data *tensor.Dense) {
	if data == nil {
		exceptions.Panicf("SetData(%s): nil data", v)
	}
	tensor.MustSameShape("SetData", v.data, data)
	v.data = data
}

// Grad returns a copy of the accumulated gradient, or nil if none was accumulated.
func (v *Variable) Grad() *tensor.Dense {
	if v.grad == nil {
		return nil
	}
	return tensor.Clone(v.grad)
}

// HasGrad reports whether a gradient has been accumulated.
func (v *Variable) HasGrad() bool {
	return v.grad != nil
}

// ClearGrad drops the accumulated gradient of v only.
//
// Backward also leaves gradients on every intermediate Variable, and a later
// Backward through the same graph adds to them. Use ClearGrads to reset the
// whole graph before running Backward on it again.
func (v *Variable) ClearGrad() {
	v.grad = nil
}

// ClearGrads drops the gradient of v and of every Variable in the graph that
// produced it: the inputs and live outputs of each reachable Creator.
func (v *Variable) ClearGrads() {
	v.grad = nil
	if v.creator == nil {
		return
	}
	seen := map[*Creator]struct{}{v.creator: {}}
	pending := []*Creator{v.creator}
	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, output := range c.Outputs() {
			if output != nil {
				output.grad = nil
			}
		}
		for _, input := range c.inputs {
			input.grad = nil
			if input.creator == nil {
				continue
			}
			if _, found := seen[input.creator]; !found {
				seen[input.creator] = struct{}{}
				pending = append(pending, input.creator)
			}
		}
	}
}

// Generation is 0 for leaves and 1 + the max generation of the inputs otherwise.
// It is fixed when the Variable is created.
func (v *Variable) Generation() int {
	return v.generation
}

// Creator returns the call record that produced this Variable, or nil for leaves.
func (v *Variable) Creator() *Creator {
	return v.creator
}

// Shape returns a copy of the data's shape.
func (v *Variable) Shape() tensor.Shape {
	return tensor.ShapeOf(v.data)
}

// NumElements returns the number of elements in the data.
func (v *Variable) NumElements() int {
	return v.data.Size()
}

// String returns a human-readable representation of the Variable.
func (v *Variable) String() string {
	if v.name != "" {
		return fmt.Sprintf("variable(%s, %v)", v.name, v.data.Shape())
	}
	return fmt.Sprintf("variable(%v)", v.data.Shape())
}

// accumulateGrad adds gx to the gradient, or stores a private copy of it when
// no gradient exists yet. gx may be shared: AddOp returns gy for both inputs.
func (v *Variable) accumulateGrad(gx *tensor.Dense) {
	if v.grad == nil {
		v.grad = tensor.Clone(gx)
		return
	}
	tensor.AddInPlace(v.grad, gx)
}
