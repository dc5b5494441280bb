// SPDX-License-Identifier: MIT

package nsum

import (
	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/extrap"
	"github.com/katalvlaran/accel/numeric"
)

// Term is a summand, factor or function evaluated at k.
type Term[T any] func(k T) T

// Sum returns Σ f(k) over the integers of iv, from its first to its last point.
//
// Reduction to one forward sequence g(0), g(1), …:
//
//	[a, +∞)      g(k) = f(a+k)
//	(−∞, b]      g(k) = f(b−k)
//	(−∞, +∞)     g(0) = f(0), g(k) = f(k) + f(−k)
//	[a, b]       no acceleration: FiniteSumRange
//
// Euler–Maclaurin tails are taken on g over [n, +∞) at the caller's
// precision plus a few guard digits.
//
// Errors: numeric.ErrIntervalArity / numeric.ErrBadInterval for a malformed
// interval, numeric.ErrNotInteger for a fractional finite bound, and any
// error from Adaptive.
func Sum[T any](F numeric.Field[T], f Term[T], iv numeric.Interval, opts ...Option) (Result[T], error) {
	if err := iv.Validate(); err != nil {
		return Result[T]{}, nsumErrorf("sum", err)
	}
	lo, hi := iv.Lo(), iv.Hi()
	a, b, err := integerBounds(lo, hi)
	if err != nil {
		return Result[T]{}, nsumErrorf("sum", err)
	}
	if !lo.IsInf() && !hi.IsInf() {
		return Result[T]{
			Value:     FiniteSumRange(F, f, a, b),
			Error:     F.Context().New(),
			Method:    Direct,
			Terms:     rangeLen(a, b),
			Converged: true,
		}, nil
	}

	g := forward(F, f, lo, hi, a, b)
	update := func(seq []T, from, to int) []T {
		s := F.Zero()
		if len(seq) > 0 {
			s = seq[len(seq)-1]
		}
		for k := from; k < to; k++ {
			s = F.Add(s, g(F.FromInt(int64(k))))
			seq = append(seq, s)
		}
		return seq
	}

	callerDigits := F.Context().Digits()
	tail := func(from int, tol *decimal.Big) (T, *decimal.Big, error) {
		defer F.Context().SetDigits(callerDigits + tailGuardDigits)()
		em := extrap.DefaultEulerMaclaurinOptions[T]()
		em.Tol = tol
		rest := numeric.Interval{numeric.AtInt(int64(from)), numeric.PosInf}
		return extrap.EulerMaclaurin(F, func(x T) T { return g(x) }, rest, em)
	}

	return Adaptive(F, update, tail, opts...)
}

// forward builds g. For the bi-infinite case g(0) is special-cased; the
// paired form is used for every other argument, including the non-integer
// arguments seen by quadrature and differentiation.
func forward[T any](F numeric.Field[T], f Term[T], lo, hi numeric.Point, a, b int64) Term[T] {
	switch {
	case lo.IsInf() && hi.IsInf():
		return func(k T) T {
			if F.IsZero(k) {
				return f(k)
			}
			return F.Add(f(k), f(F.Neg(k)))
		}
	case lo.IsInf():
		return func(k T) T { return f(F.Sub(F.FromInt(b), k)) }
	default:
		return func(k T) T { return f(F.Add(F.FromInt(a), k)) }
	}
}

// integerBounds extracts the finite bounds; infinite ones read as 0.
func integerBounds(lo, hi numeric.Point) (int64, int64, error) {
	var a, b int64
	var err error
	if !lo.IsInf() {
		if a, err = lo.Int64(); err != nil {
			return 0, 0, err
		}
	}
	if !hi.IsInf() {
		if b, err = hi.Int64(); err != nil {
			return 0, 0, err
		}
	}

	return a, b, nil
}
