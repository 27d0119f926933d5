// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import "github.com/born-ml/deepzero/internal/autodiff/ops"

// Built-in Functions.
type (
	SquareOp = ops.SquareOp
	PowOp    = ops.PowOp
	ExpOp    = ops.ExpOp
	LogOp    = ops.LogOp
	SinOp    = ops.SinOp
	CosOp    = ops.CosOp
	TanhOp   = ops.TanhOp
	NegOp    = ops.NegOp
	AddOp    = ops.AddOp
	SubOp    = ops.SubOp
	MulOp    = ops.MulOp
	DivOp    = ops.DivOp
)

// Square returns x².
func Square(x *Variable) *Variable { return ops.Square(x) }

// Pow returns x^c.
func Pow(x *Variable, c float64) *Variable { return ops.Pow(x, c) }

// Exp returns e^x.
func Exp(x *Variable) *Variable { return ops.Exp(x) }

// Log returns the natural logarithm of x.
func Log(x *Variable) *Variable { return ops.Log(x) }

// Sin returns sin(x).
func Sin(x *Variable) *Variable { return ops.Sin(x) }

// Cos returns cos(x).
func Cos(x *Variable) *Variable { return ops.Cos(x) }

// Tanh returns tanh(x).
func Tanh(x *Variable) *Variable { return ops.Tanh(x) }

// Neg returns -x.
func Neg(x *Variable) *Variable { return ops.Neg(x) }

// Add returns a + b.
func Add(a, b *Variable) *Variable { return ops.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Variable) *Variable { return ops.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Variable) *Variable { return ops.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Variable) *Variable { return ops.Div(a, b) }

// AddScalar returns x + c.
func AddScalar(x *Variable, c float64) *Variable { return ops.AddScalar(x, c) }

// SubScalar returns x - c.
func SubScalar(x *Variable, c float64) *Variable { return ops.SubScalar(x, c) }

// RSubScalar returns c - x.
func RSubScalar(c float64, x *Variable) *Variable { return ops.RSubScalar(c, x) }

// MulScalar returns x * c.
func MulScalar(x *Variable, c float64) *Variable { return ops.MulScalar(x, c) }

// DivScalar returns x / c.
func DivScalar(x *Variable, c float64) *Variable { return ops.DivScalar(x, c) }

// RDivScalar returns c / x.
func RDivScalar(c float64, x *Variable) *Variable { return ops.RDivScalar(c, x) }
