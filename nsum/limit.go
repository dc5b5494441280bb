// SPDX-License-Identifier: MIT

package nsum

import (
	"github.com/katalvlaran/accel/numeric"
)

// Limit estimates lim f(t) as t → x.
//
// The sequence handed to Adaptive is f(x + d/n) for finite x, where d is the
// direction (default +1, see WithDirection), and f(±n) for x = ±∞. The sample
// index n runs 1, 2, 3, … or, with WithExponentialSampling, 2, 4, 8, …
// Euler–Maclaurin does not apply and is never run; the batch schedule
// defaults to a constant DefaultLimitStep.
//
// f must be defined along the whole approach path.
func Limit[T any](F numeric.Field[T], f Term[T], x numeric.Point, opts ...Option) (Result[T], error) {
	opts = append([]Option{WithSteps(DefaultLimitStep)}, opts...)
	o := gatherOptions(F.Context(), opts...)

	sample := func(k int) T {
		if o.expSampling {
			R := numeric.NewReal(F.Context())
			return F.FromDecimal(R.PowInt(R.FromInt(2), k+1))
		}
		return F.FromInt(int64(k + 1))
	}

	var g func(k int) T
	switch {
	case x.IsInf():
		sign := F.FromInt(int64(x.InfSign()))
		g = func(k int) T { return f(F.Mul(sign, sample(k))) }
	default:
		g = func(k int) T {
			return f(F.Add(F.FromDecimal(x.Value()), F.Quo(F.FromDecimal(o.direction), sample(k))))
		}
	}

	update := func(seq []T, from, to int) []T {
		for k := from; k < to; k++ {
			seq = append(seq, g(k))
		}
		return seq
	}

	return Adaptive(F, update, nil, opts...)
}
