package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/deepzero/internal/tensor"
)

// Backward propagates gradients from v to every Variable it depends on.
//
// If v has no gradient yet it is seeded with ones shaped like its data, and
// that seed is kept. On a leaf nothing else happens.
//
// Algorithm:
//  1. Put v's Creator on a worklist ordered by generation, and mark it seen.
//  2. Pop the Creator with the largest generation and call its Function's
//     Backward with the original inputs and the outputs' gradients.
//  3. Add each returned gradient to the matching input's gradient.
//  4. Queue the inputs' Creators not seen yet, and repeat until empty.
//
// Processing from the highest generation down means a Variable's gradient is
// complete before its Creator is popped: every consumer of a Variable has a
// strictly larger generation than the Variable's own Creator.
//
// Gradients accumulate across calls, on intermediate Variables too; use
// ClearGrads to start over.
// Backward panics if a Function returns the wrong number of gradients or a
// gradient whose shape differs from its input.
func (v *Variable) Backward() {
	if v.grad == nil {
		v.grad = tensor.OnesLike(v.data)
	}
	if v.creator == nil {
		return
	}

	queue := &creatorQueue{}
	seen := map[*Creator]struct{}{v.creator: {}}
	queue.push(v.creator)

	processed := 0
	for queue.Len() > 0 {
		c := queue.pop()
		gxs := c.backward()
		for i, input := range c.inputs {
			input.accumulateGrad(gxs[i])
			if input.creator == nil {
				continue
			}
			if _, found := seen[input.creator]; !found {
				seen[input.creator] = struct{}{}
				queue.push(input.creator)
			}
		}
		processed++
	}
	klog.V(2).Infof("Backward(%s): processed %d creators", v, processed)
}

// TryBackward is Backward that reports Function contract violations as an error.
// Gradients accumulated before the violation are left in place.
func (v *Variable) TryBackward() error {
	err := exceptions.TryCatch[error](v.Backward)
	if err != nil {
		return errors.WithMessagef(err, "Backward(%s)", v)
	}
	return nil
}

// backward runs the Function's Backward and checks its result against the
// inputs before anything is accumulated.
func (c *Creator) backward() []*tensor.Dense {
	xs := c.inputData()
	gys := c.outputGrads()
	klog.V(3).Infof("backward through %s: %d inputs, %d outputs", c, len(xs), len(gys))

	gxs := c.function.Backward(xs, gys)
	if len(gxs) != len(xs) {
		exceptions.Panicf("%s: Backward returned %d gradients for %d inputs", c, len(gxs), len(xs))
	}
	for i, gx := range gxs {
		if gx == nil {
			exceptions.Panicf("%s: Backward gradient #%d is nil", c, i)
		}
		if !tensor.SameShape(gx, xs[i]) {
			exceptions.Panicf("%s: gradient #%d has shape %v, input has shape %v",
				c, i, gx.Shape(), xs[i].Shape())
		}
	}
	return gxs
}
