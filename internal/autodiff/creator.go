package autodiff

import (
	"fmt"
	"reflect"
	"weak"

	"github.com/born-ml/deepzero/internal/tensor"
)

// Creator is the record of one Call: the Function applied, the Variables it
// consumed and the Variables it produced.
//
// A Creator holds strong references to its inputs, which keeps every ancestor
// alive while a descendant exists. Outputs are held through weak pointers,
// since each output already points back at its Creator.
type Creator struct {
	function     Function
	inputs       []*Variable
	outputs      []weak.Pointer[Variable]
	outputShapes []tensor.Shape
	generation   int
}

// Function returns the Function that produced this record. Every output of a
// multi-output call shares it.
func (c *Creator) Function() Function {
	return c.function
}

// Generation returns the max generation of the inputs.
func (c *Creator) Generation() int {
	return c.generation
}

// Inputs returns the Variables consumed by the call.
func (c *Creator) Inputs() []*Variable {
	return append([]*Variable(nil), c.inputs...)
}

// NumOutputs returns how many outputs the call produced, live or not.
func (c *Creator) NumOutputs() int {
	return len(c.outputs)
}

// Outputs returns the Variables produced by the call. Outputs that have been
// garbage collected are returned as nil.
func (c *Creator) Outputs() []*Variable {
	outputs := make([]*Variable, len(c.outputs))
	for i, output := range c.outputs {
		outputs[i] = output.Value()
	}
	return outputs
}

// String returns the Function name and the generation.
func (c *Creator) String() string {
	return fmt.Sprintf("%s(gen=%d)", functionName(c.function), c.generation)
}

// inputData returns the original input arrays, in order.
func (c *Creator) inputData() []*tensor.Dense {
	xs := make([]*tensor.Dense, len(c.inputs))
	for i, input := range c.inputs {
		xs[i] = input.data
	}
	return xs
}

// outputGrads collects one upstream gradient per output.
//
// A live output without a gradient acts as its own objective and contributes
// ones. A collected output contributes zeros: its value was never used after
// the graph was built.
func (c *Creator) outputGrads() []*tensor.Dense {
	gys := make([]*tensor.Dense, len(c.outputs))
	for i, ref := range c.outputs {
		output := ref.Value()
		switch {
		case output == nil:
			gys[i] = tensor.Zeros(c.outputShapes[i]...)
		case output.grad == nil:
			gys[i] = tensor.OnesLike(output.data)
		default:
			gys[i] = output.grad
		}
	}
	return gys
}

// functionName returns the Function's String() when it has one, or its type name.
func functionName(f Function) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	t := reflect.TypeOf(f)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
