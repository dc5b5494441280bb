// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"

	"github.com/ericlagergren/decimal"
	dmath "github.com/ericlagergren/decimal/math"
)

// Real is the Field of real numbers represented as *decimal.Big.
type Real struct {
	ctx *Context
}

// NewReal binds a real field to ctx.
func NewReal(ctx *Context) Real { return Real{ctx: ctx} }

// Context implements Field.
func (r Real) Context() *Context { return r.ctx }

func (r Real) Zero() *decimal.Big { return r.ctx.New() }

func (r Real) One() *decimal.Big { return r.FromInt(1) }

func (r Real) FromInt(n int64) *decimal.Big { return r.ctx.New().Set(decimal.New(n, 0)) }

// FromDecimal copies x, rounding it to the current precision.
func (r Real) FromDecimal(x *decimal.Big) *decimal.Big { return r.ctx.New().Set(x) }

// FromBigInt converts an arbitrary integer, rounding to the current precision.
func (r Real) FromBigInt(n *big.Int) *decimal.Big {
	z, _ := r.ctx.New().SetString(n.String())
	return r.Round(z)
}

// FromRat converts a rational number to the nearest decimal at the current precision.
func (r Real) FromRat(q *big.Rat) *decimal.Big {
	num := r.FromBigInt(q.Num())
	den := r.FromBigInt(q.Denom())

	return r.Quo(num, den)
}

// Parse reads a decimal literal ("1e-30", "-2.5").
func (r Real) Parse(s string) (*decimal.Big, bool) {
	z, ok := new(decimal.Big).SetString(s)
	if !ok {
		return nil, false
	}

	return r.Round(z), true
}

func (r Real) Add(x, y *decimal.Big) *decimal.Big { return r.ctx.New().Add(x, y) }

func (r Real) Sub(x, y *decimal.Big) *decimal.Big { return r.ctx.New().Sub(x, y) }

func (r Real) Mul(x, y *decimal.Big) *decimal.Big { return r.ctx.New().Mul(x, y) }

func (r Real) Quo(x, y *decimal.Big) *decimal.Big { return r.ctx.New().Quo(x, y) }

func (r Real) Neg(x *decimal.Big) *decimal.Big { return r.ctx.New().Neg(x) }

func (r Real) Abs(x *decimal.Big) *decimal.Big { return r.ctx.New().Abs(x) }

func (r Real) IsZero(x *decimal.Big) bool { return x.Sign() == 0 }

func (r Real) Sign(x *decimal.Big) *decimal.Big { return r.FromInt(int64(x.Sign())) }

func (r Real) Equal(x, y *decimal.Big) bool { return x.Cmp(y) == 0 }

func (r Real) Exp(x *decimal.Big) *decimal.Big { return dmath.Exp(r.ctx.New(), x) }

func (r Real) Log(x *decimal.Big) *decimal.Big { return dmath.Log(r.ctx.New(), x) }

func (r Real) Round(x *decimal.Big) *decimal.Big { return r.ctx.New().Set(x) }

func (r Real) String(x *decimal.Big) string { return x.String() }

// Sqrt returns √x.
func (r Real) Sqrt(x *decimal.Big) *decimal.Big { return dmath.Sqrt(r.ctx.New(), x) }

// Pi returns π at the current precision.
func (r Real) Pi() *decimal.Big { return dmath.Pi(r.ctx.New()) }

// Sin returns sin(x).
func (r Real) Sin(x *decimal.Big) *decimal.Big { return dmath.Sin(r.ctx.New(), x) }

// Cos returns cos(x).
func (r Real) Cos(x *decimal.Big) *decimal.Big { return dmath.Cos(r.ctx.New(), x) }

// atanGuardDigits are carried while the quadrant is reconstructed.
const atanGuardDigits = 3

// Atan2 returns the angle of the point (x, y) in (−π, π]; Atan2(0, 0) is 0.
//
// The angle is built from dmath.Atan on the first octant, |t| ≤ 1, and then
// reflected into the quadrant given by the signs of x and y.
func (r Real) Atan2(y, x *decimal.Big) *decimal.Big {
	if x.Sign() == 0 && y.Sign() == 0 {
		return r.Zero()
	}
	a := r.octantAngle(y, x)
	if y.Sign() < 0 {
		a = r.Neg(a)
	}

	return r.Round(a)
}

// octantAngle returns atan2(|y|, x) at atanGuardDigits extra digits.
func (r Real) octantAngle(y, x *decimal.Big) *decimal.Big {
	defer r.ctx.Elevate(atanGuardDigits)()
	ay, ax := r.Abs(y), r.Abs(x)

	var a *decimal.Big
	switch {
	case ax.Sign() == 0:
		a = r.Quo(r.Pi(), r.FromInt(2))
	case ay.Cmp(ax) <= 0:
		a = dmath.Atan(r.ctx.New(), r.Quo(ay, ax))
	default:
		a = r.Sub(r.Quo(r.Pi(), r.FromInt(2)), dmath.Atan(r.ctx.New(), r.Quo(ax, ay)))
	}
	if x.Sign() < 0 {
		a = r.Sub(r.Pi(), a)
	}

	return a
}

// PowInt returns x^n for n ≥ 0 by repeated squaring; 0^0 == 1.
func (r Real) PowInt(x *decimal.Big, n int) *decimal.Big {
	out := r.One()
	base := r.FromDecimal(x)
	for n > 0 {
		if n&1 == 1 {
			out = r.Mul(out, base)
		}
		n >>= 1
		if n > 0 {
			base = r.Mul(base, base)
		}
	}

	return out
}

// Less reports x < y.
func Less(x, y *decimal.Big) bool { return x.Cmp(y) < 0 }

// LessEq reports x ≤ y.
func LessEq(x, y *decimal.Big) bool { return x.Cmp(y) <= 0 }

// Max returns the larger of x and y (x on ties).
func Max(x, y *decimal.Big) *decimal.Big {
	if x.Cmp(y) < 0 {
		return y
	}

	return x
}

// Float64 converts x for logging and loop bounds; NaN-free inputs only.
func Float64(x *decimal.Big) float64 {
	f, _ := x.Float64()
	return f
}
