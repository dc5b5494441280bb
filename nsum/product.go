// SPDX-License-Identifier: MIT

package nsum

import (
	"github.com/katalvlaran/accel/numeric"
)

// Product returns Π f(k) over the integers of iv as exp(Σ log f(k)).
// Intervals are reduced exactly as in Sum. f must stay away from zero and
// must not cross the branch cut of the logarithm along the way.
//
// The error estimate is |P|·(error of the logarithmic sum).
func Product[T any](F numeric.Field[T], f Term[T], iv numeric.Interval, opts ...Option) (Result[T], error) {
	if err := iv.Validate(); err != nil {
		return Result[T]{}, nsumErrorf("product", err)
	}
	lo, hi := iv.Lo(), iv.Hi()
	if !lo.IsInf() && !hi.IsInf() {
		a, b, err := integerBounds(lo, hi)
		if err != nil {
			return Result[T]{}, nsumErrorf("product", err)
		}
		return Result[T]{
			Value:     FiniteProductRange(F, f, a, b),
			Error:     F.Context().New(),
			Method:    Direct,
			Terms:     rangeLen(a, b),
			Converged: true,
		}, nil
	}

	res, err := logProduct(F, f, iv, opts)
	if err != nil {
		return Result[T]{}, err
	}
	res.Value = F.Round(res.Value)
	res.Error = numeric.NewReal(F.Context()).Round(res.Error)

	return res, nil
}

func logProduct[T any](F numeric.Field[T], f Term[T], iv numeric.Interval, opts []Option) (Result[T], error) {
	defer F.Context().Elevate(finiteGuardDigits)()
	R := numeric.NewReal(F.Context())

	res, err := Sum(F, func(k T) T { return F.Log(f(k)) }, iv, opts...)
	if err != nil {
		return Result[T]{}, err
	}
	p := F.Exp(res.Value)
	res.Error = R.Mul(F.Abs(p), res.Error)
	res.Value = p

	return res, nil
}
