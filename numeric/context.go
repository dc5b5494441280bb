// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/ericlagergren/decimal"
)

// DefaultDigits is the precision of a Context built with NewContext(0).
const DefaultDigits = 15

// panic messages (programmer errors only).
const (
	panicDigitsInvalid = "numeric: precision must be at least 1 digit"
	panicFactorInvalid = "numeric: precision factor must be at least 1"
)

// Context is the working-precision register, measured in significant decimal
// digits. The zero value is not usable; build one with NewContext.
//
// Elevation is scoped: SetDigits, Elevate and Scale return a function that
// puts the previous value back. Nesting composes because each scope restores
// exactly what it saw on entry.
type Context struct {
	digits int
}

// NewContext returns a register holding the given number of digits.
// digits==0 selects DefaultDigits; negative values panic.
func NewContext(digits int) *Context {
	if digits == 0 {
		digits = DefaultDigits
	}
	if digits < 1 {
		panic(panicDigitsInvalid)
	}

	return &Context{digits: digits}
}

// Digits reports the current working precision.
func (c *Context) Digits() int { return c.digits }

// SetDigits sets the working precision and returns the function that restores
// the previous value.
func (c *Context) SetDigits(digits int) (restore func()) {
	if digits < 1 {
		panic(panicDigitsInvalid)
	}
	prev := c.digits
	c.digits = digits

	return func() { c.digits = prev }
}

// Elevate adds extra guard digits for the duration of a scope.
func (c *Context) Elevate(extra int) (restore func()) {
	return c.SetDigits(c.digits + extra)
}

// Scale multiplies the working precision by factor for the duration of a scope.
func (c *Context) Scale(factor int) (restore func()) {
	if factor < 1 {
		panic(panicFactorInvalid)
	}

	return c.SetDigits(c.digits * factor)
}

// Eps returns the machine epsilon at the current precision, 10^(1-digits).
func (c *Context) Eps() *decimal.Big {
	return decimal.New(1, c.digits-1)
}

// New allocates a zero decimal carrying the current precision.
func (c *Context) New() *decimal.Big {
	return decimal.WithPrecision(c.digits)
}

// String implements fmt.Stringer.
func (c *Context) String() string {
	return fmt.Sprintf("numeric.Context{digits: %d}", c.digits)
}
