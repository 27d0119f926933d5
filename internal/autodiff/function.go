package autodiff

import (
	"weak"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/deepzero/internal/tensor"
)

// Function is a differentiable mapping from N input arrays to M output arrays.
//
// Implementations must not mutate their arguments, and must be deterministic
// given their inputs and any parameters bound into the Function value.
//
// Example (y = x²):
//
//	type Square struct{}
//
//	func (Square) Forward(xs []*tensor.Dense) []*tensor.Dense {
//		return []*tensor.Dense{tensor.Mul(xs[0], xs[0])}
//	}
//
//	func (Square) Backward(xs, gys []*tensor.Dense) []*tensor.Dense {
//		return []*tensor.Dense{tensor.Mul(tensor.MulScalar(xs[0], 2), gys[0])}
//	}
type Function interface {
	// Forward computes the outputs. It has no graph side effects.
	Forward(xs []*tensor.Dense) []*tensor.Dense

	// Backward computes one gradient per input, given the original inputs and
	// one upstream gradient per output. Gradient i must have the shape of xs[i].
	Backward(xs, gys []*tensor.Dense) []*tensor.Dense
}

// Call applies f to the inputs and records the call in the graph.
//
// It is the only entry point that mutates graph state: it runs Forward, wraps
// each result in a new Variable, and links all of them to one shared Creator
// that owns the inputs. Output generations are 1 + the max input generation.
//
// Arity violations (no inputs, no outputs, nil arrays) panic before any
// output is wired.
func Call(f Function, inputs ...*Variable) []*Variable {
	if f == nil {
		exceptions.Panicf("Call: nil Function")
	}
	if len(inputs) == 0 {
		exceptions.Panicf("Call(%s): requires at least one input", functionName(f))
	}
	xs := make([]*tensor.Dense, len(inputs))
	generation := 0
	for i, input := range inputs {
		if input == nil {
			exceptions.Panicf("Call(%s): input #%d is nil", functionName(f), i)
		}
		xs[i] = input.data
		generation = max(generation, input.generation)
	}

	ys := f.Forward(xs)
	if len(ys) == 0 {
		exceptions.Panicf("Call(%s): Forward returned no outputs", functionName(f))
	}
	for i, y := range ys {
		if y == nil {
			exceptions.Panicf("Call(%s): Forward output #%d is nil", functionName(f), i)
		}
	}

	outputs := make([]*Variable, len(ys))
	for i, y := range ys {
		outputs[i] = &Variable{data: y}
	}
	if !gradEnabled {
		return outputs
	}

	creator := &Creator{
		function:     f,
		inputs:       append([]*Variable(nil), inputs...),
		outputs:      make([]weak.Pointer[Variable], len(outputs)),
		outputShapes: make([]tensor.Shape, len(outputs)),
		generation:   generation,
	}
	for i, output := range outputs {
		output.creator = creator
		output.generation = creator.generation + 1
		creator.outputs[i] = weak.Make(output)
		creator.outputShapes[i] = tensor.ShapeOf(output.data)
	}
	return outputs
}

// Call1 is Call for Functions with exactly one output.
func Call1(f Function, inputs ...*Variable) *Variable {
	outputs := Call(f, inputs...)
	if len(outputs) != 1 {
		exceptions.Panicf("Call1(%s): Function returned %d outputs, expected 1", functionName(f), len(outputs))
	}
	return outputs[0]
}

// TryCall is Call that reports arity and shape violations as an error instead of panicking.
func TryCall(f Function, inputs ...*Variable) (outputs []*Variable, err error) {
	err = exceptions.TryCatch[error](func() {
		outputs = Call(f, inputs...)
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "TryCall(%s)", functionName(f))
	}
	return outputs, nil
}
