// SPDX-License-Identifier: MIT

package numeric

import (
	"github.com/ericlagergren/decimal"
)

// Complex is an arbitrary-precision complex number. Both parts are always non-nil
// when produced by ComplexField.
type Complex struct {
	Re, Im *decimal.Big
}

// ComplexField is the Field of Complex numbers. It delegates the real parts
// to Real so both fields round identically.
type ComplexField struct {
	r Real
}

// NewComplexField binds a complex field to ctx.
func NewComplexField(ctx *Context) ComplexField { return ComplexField{r: NewReal(ctx)} }

// Context implements Field.
func (c ComplexField) Context() *Context { return c.r.ctx }

// Real returns the underlying real field.
func (c ComplexField) Real() Real { return c.r }

// New builds re + im·i rounded to the current precision.
func (c ComplexField) New(re, im *decimal.Big) Complex {
	return Complex{Re: c.r.FromDecimal(re), Im: c.r.FromDecimal(im)}
}

func (c ComplexField) Zero() Complex { return Complex{Re: c.r.Zero(), Im: c.r.Zero()} }

func (c ComplexField) One() Complex { return Complex{Re: c.r.One(), Im: c.r.Zero()} }

func (c ComplexField) FromInt(n int64) Complex { return Complex{Re: c.r.FromInt(n), Im: c.r.Zero()} }

func (c ComplexField) FromDecimal(x *decimal.Big) Complex {
	return Complex{Re: c.r.FromDecimal(x), Im: c.r.Zero()}
}

func (c ComplexField) Add(x, y Complex) Complex {
	return Complex{Re: c.r.Add(x.Re, y.Re), Im: c.r.Add(x.Im, y.Im)}
}

func (c ComplexField) Sub(x, y Complex) Complex {
	return Complex{Re: c.r.Sub(x.Re, y.Re), Im: c.r.Sub(x.Im, y.Im)}
}

// Mul: (a+bi)(p+qi) = (ap−bq) + (aq+bp)i.
func (c ComplexField) Mul(x, y Complex) Complex {
	re := c.r.Sub(c.r.Mul(x.Re, y.Re), c.r.Mul(x.Im, y.Im))
	im := c.r.Add(c.r.Mul(x.Re, y.Im), c.r.Mul(x.Im, y.Re))

	return Complex{Re: re, Im: im}
}

// Quo: (a+bi)/(p+qi) = [(ap+bq) + (bp−aq)i] / (p²+q²).
func (c ComplexField) Quo(x, y Complex) Complex {
	den := c.r.Add(c.r.Mul(y.Re, y.Re), c.r.Mul(y.Im, y.Im))
	re := c.r.Add(c.r.Mul(x.Re, y.Re), c.r.Mul(x.Im, y.Im))
	im := c.r.Sub(c.r.Mul(x.Im, y.Re), c.r.Mul(x.Re, y.Im))

	return Complex{Re: c.r.Quo(re, den), Im: c.r.Quo(im, den)}
}

func (c ComplexField) Neg(x Complex) Complex {
	return Complex{Re: c.r.Neg(x.Re), Im: c.r.Neg(x.Im)}
}

func (c ComplexField) Abs(x Complex) *decimal.Big {
	if x.Im.Sign() == 0 {
		return c.r.Abs(x.Re)
	}
	if x.Re.Sign() == 0 {
		return c.r.Abs(x.Im)
	}

	return c.r.Sqrt(c.r.Add(c.r.Mul(x.Re, x.Re), c.r.Mul(x.Im, x.Im)))
}

func (c ComplexField) IsZero(x Complex) bool { return x.Re.Sign() == 0 && x.Im.Sign() == 0 }

func (c ComplexField) Sign(x Complex) Complex {
	if c.IsZero(x) {
		return c.Zero()
	}
	m := c.Abs(x)

	return Complex{Re: c.r.Quo(x.Re, m), Im: c.r.Quo(x.Im, m)}
}

func (c ComplexField) Equal(x, y Complex) bool {
	return x.Re.Cmp(y.Re) == 0 && x.Im.Cmp(y.Im) == 0
}

// Exp: e^(a+bi) = e^a·(cos b + i sin b).
func (c ComplexField) Exp(x Complex) Complex {
	m := c.r.Exp(x.Re)
	if x.Im.Sign() == 0 {
		return Complex{Re: m, Im: c.r.Zero()}
	}

	return Complex{Re: c.r.Mul(m, c.r.Cos(x.Im)), Im: c.r.Mul(m, c.r.Sin(x.Im))}
}

// Log is the principal branch: ln|z| + i·arg z, arg ∈ (−π, π].
func (c ComplexField) Log(x Complex) Complex {
	if x.Im.Sign() == 0 && x.Re.Sign() > 0 {
		return Complex{Re: c.r.Log(x.Re), Im: c.r.Zero()}
	}

	return Complex{Re: c.r.Log(c.Abs(x)), Im: c.r.Atan2(x.Im, x.Re)}
}

func (c ComplexField) Round(x Complex) Complex {
	return Complex{Re: c.r.Round(x.Re), Im: c.r.Round(x.Im)}
}

func (c ComplexField) String(x Complex) string {
	if x.Im.Sign() < 0 {
		return "(" + x.Re.String() + " - " + c.r.Abs(x.Im).String() + "i)"
	}

	return "(" + x.Re.String() + " + " + x.Im.String() + "i)"
}
