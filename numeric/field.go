// SPDX-License-Identifier: MIT

package numeric

import "github.com/ericlagergren/decimal"

// Field is the arithmetic the acceleration algorithms are generic over.
// Implementations read the precision of Context() at every call and always
// return freshly allocated values; operands are never mutated.
type Field[T any] interface {
	// Context returns the precision register this field reads.
	Context() *Context

	Zero() T
	One() T
	FromInt(n int64) T
	FromDecimal(x *decimal.Big) T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	// Quo divides x by y. Callers guard y==0 themselves.
	Quo(x, y T) T
	Neg(x T) T

	// Abs returns |x| as a real number.
	Abs(x T) *decimal.Big
	IsZero(x T) bool
	// Sign returns x/|x| (−1, 0, +1 for reals).
	Sign(x T) T
	Equal(x, y T) bool

	Exp(x T) T
	// Log is the principal natural logarithm.
	Log(x T) T

	// Round returns x rounded to the current precision.
	Round(x T) T
	String(x T) string
}
