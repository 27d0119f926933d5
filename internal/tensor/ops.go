package tensor

import (
	"math"
	"strings"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
	gorgonia "gorgonia.org/tensor"
)

// check turns an error from the array library into a panic.
// Errors here come from shape disagreements, which are programming errors.
func check(op string, err error, operands ...*Dense) {
	if err == nil {
		return
	}
	described := make([]string, len(operands))
	for i, a := range operands {
		described[i] = Describe(a)
	}
	exceptions.Panicf("tensor.%s(%s): %v", op, strings.Join(described, ", "), err)
}

// asDense unwraps the Tensor interface returned by gorgonia's package-level functions.
func asDense(op string, t gorgonia.Tensor, err error, operands ...*Dense) *Dense {
	check(op, err, operands...)
	d, ok := t.(*Dense)
	if !ok {
		exceptions.Panicf("tensor.%s: unexpected result type %T", op, t)
	}
	return d
}

// binary requires equal shapes: broadcasting is left to callers, which lift
// scalars with FullLike before calling.
func binary(op string, fn func(*Dense, ...gorgonia.FuncOpt) (*Dense, error), a, b *Dense) *Dense {
	MustSameShape("tensor."+op, a, b)
	out, err := fn(b)
	check(op, err, a, b)
	return out
}

// Add returns a + b.
func Add(a, b *Dense) *Dense { return binary("Add", a.Add, a, b) }

// Sub returns a - b.
func Sub(a, b *Dense) *Dense { return binary("Sub", a.Sub, a, b) }

// Mul returns a * b elementwise.
func Mul(a, b *Dense) *Dense { return binary("Mul", a.Mul, a, b) }

// Div returns a / b elementwise.
func Div(a, b *Dense) *Dense { return binary("Div", a.Div, a, b) }

// AddScalar returns a + c.
func AddScalar(a *Dense, c float64) *Dense {
	out, err := a.AddScalar(c, true)
	check("AddScalar", err, a)
	return out
}

// MulScalar returns a * c.
func MulScalar(a *Dense, c float64) *Dense {
	out, err := a.MulScalar(c, true)
	check("MulScalar", err, a)
	return out
}

// PowScalar returns a ** c elementwise.
func PowScalar(a *Dense, c float64) *Dense {
	out, err := a.PowScalar(c, true)
	check("PowScalar", err, a)
	return out
}

// Neg returns -a.
func Neg(a *Dense) *Dense {
	t, err := gorgonia.Neg(a)
	return asDense("Neg", t, err, a)
}

// Exp returns e ** a elementwise.
func Exp(a *Dense) *Dense {
	t, err := gorgonia.Exp(a)
	return asDense("Exp", t, err, a)
}

// Log returns the natural logarithm of a elementwise.
func Log(a *Dense) *Dense {
	t, err := gorgonia.Log(a)
	return asDense("Log", t, err, a)
}

// Tanh returns the hyperbolic tangent of a elementwise.
func Tanh(a *Dense) *Dense {
	t, err := gorgonia.Tanh(a)
	return asDense("Tanh", t, err, a)
}

// Map applies fn to every element of a and returns the result as a new array.
func Map(a *Dense, fn func(float64) float64) *Dense {
	t, err := a.Apply(fn)
	return asDense("Map", t, err, a)
}

// Sin returns the sine of a elementwise.
func Sin(a *Dense) *Dense { return Map(a, math.Sin) }

// Cos returns the cosine of a elementwise.
func Cos(a *Dense) *Dense { return Map(a, math.Cos) }

// AddInPlace accumulates src into dst and returns dst.
// dst must not be shared with anything that expects it to stay unchanged.
func AddInPlace(dst, src *Dense) *Dense {
	MustSameShape("tensor.AddInPlace", dst, src)
	_, err := dst.Add(src, gorgonia.UseUnsafe())
	check("AddInPlace", err, dst, src)
	return dst
}

// Sum returns the sum of all elements of a.
func Sum(a *Dense) float64 {
	return floats.Sum(a.Float64s())
}

// AllClose reports whether a and b have the same shape and all elements
// within tol of each other.
func AllClose(a, b *Dense, tol float64) bool {
	if !SameShape(a, b) {
		return false
	}
	return floats.EqualApprox(a.Float64s(), b.Float64s(), tol)
}
