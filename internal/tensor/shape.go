package tensor

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// NumElements returns the total number of elements described by shape.
func NumElements(shape Shape) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// ValidateShape checks that every dimension is strictly positive.
func ValidateShape(shape Shape) error {
	for i, dim := range shape {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// EqualShapes reports whether two shapes are identical, dimension by dimension.
//
// Unlike gorgonia's Shape.Eq, vectors of shape (n), (1, n) and (n, 1) are
// all different here: a gradient must match its data exactly.
func EqualShapes(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether a and b have identical shapes.
func SameShape(a, b *Dense) bool {
	return EqualShapes(a.Shape(), b.Shape())
}

// MustSameShape panics if a and b differ in shape. op names the caller in the panic message.
func MustSameShape(op string, a, b *Dense) {
	if !SameShape(a, b) {
		exceptions.Panicf("%s: shape mismatch %s vs %s", op, Describe(a), Describe(b))
	}
}

// ShapeOf returns a copy of the shape of a.
func ShapeOf(a *Dense) Shape {
	return a.Shape().Clone()
}
