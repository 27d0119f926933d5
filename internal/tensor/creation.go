package tensor

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	gorgonia "gorgonia.org/tensor"
)

// FromSlice creates an array from a Go slice.
// The slice is copied, so later changes to data do not affect the array.
//
// Scalars are represented with shape (1): an empty shape is rejected.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, errors.New("FromSlice: empty shape, use shape (1) for scalars")
	}
	if err := ValidateShape(shape); err != nil {
		return nil, errors.WithMessage(err, "FromSlice")
	}
	if n := NumElements(shape); n != len(data) {
		return nil, errors.Errorf("FromSlice: shape %v requires %d elements, but got %d", shape, n, len(data))
	}
	backing := make([]float64, len(data))
	copy(backing, data)
	return gorgonia.New(gorgonia.WithShape(shape...), gorgonia.WithBacking(backing)), nil
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice(data []float64, shape ...int) *Dense {
	a, err := FromSlice(data, shape...)
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return a
}

// Scalar creates a one-element array of shape (1).
func Scalar(value float64) *Dense {
	return Full(value, 1)
}

// Full creates an array filled with value.
//
// Example:
//
//	a := tensor.Full(3.14, 3, 3)
func Full(value float64, shape ...int) *Dense {
	if len(shape) == 0 {
		shape = []int{1}
	}
	if err := ValidateShape(shape); err != nil {
		exceptions.Panicf("Full: %v", err)
	}
	backing := make([]float64, NumElements(shape))
	if value != 0 {
		for i := range backing {
			backing[i] = value
		}
	}
	return gorgonia.New(gorgonia.WithShape(shape...), gorgonia.WithBacking(backing))
}

// Zeros creates an array filled with zeros.
func Zeros(shape ...int) *Dense {
	return Full(0, shape...)
}

// Ones creates an array filled with ones.
func Ones(shape ...int) *Dense {
	return Full(1, shape...)
}

// FullLike creates an array shaped like a, filled with value.
func FullLike(a *Dense, value float64) *Dense {
	return Full(value, a.Shape()...)
}

// OnesLike creates an array of ones shaped like a.
func OnesLike(a *Dense) *Dense {
	return FullLike(a, 1)
}

// ZerosLike creates an array of zeros shaped like a.
func ZerosLike(a *Dense) *Dense {
	return FullLike(a, 0)
}
