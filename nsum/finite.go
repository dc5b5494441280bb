// SPDX-License-Identifier: MIT

package nsum

import "github.com/katalvlaran/accel/numeric"

// FiniteSum adds values at finiteGuardDigits extra digits and rounds the total
// to the caller's precision.
func FiniteSum[T any](F numeric.Field[T], values []T) T {
	s := accumulate(F, F.Zero(), len(values), func(i int, acc T) T { return F.Add(acc, values[i]) })
	return F.Round(s)
}

// FiniteProduct multiplies values at finiteGuardDigits extra digits.
func FiniteProduct[T any](F numeric.Field[T], values []T) T {
	p := accumulate(F, F.One(), len(values), func(i int, acc T) T { return F.Mul(acc, values[i]) })
	return F.Round(p)
}

// FiniteSumRange returns Σ_{k=a}^{b} f(k); the sum is empty (zero) when b < a.
func FiniteSumRange[T any](F numeric.Field[T], f Term[T], a, b int64) T {
	s := accumulate(F, F.Zero(), rangeLen(a, b), func(i int, acc T) T {
		return F.Add(acc, f(F.FromInt(a+int64(i))))
	})
	return F.Round(s)
}

// FiniteProductRange returns Π_{k=a}^{b} f(k); the product is empty (one) when b < a.
func FiniteProductRange[T any](F numeric.Field[T], f Term[T], a, b int64) T {
	p := accumulate(F, F.One(), rangeLen(a, b), func(i int, acc T) T {
		return F.Mul(acc, f(F.FromInt(a+int64(i))))
	})
	return F.Round(p)
}

func accumulate[T any](F numeric.Field[T], acc T, n int, step func(i int, acc T) T) T {
	defer F.Context().Elevate(finiteGuardDigits)()
	for i := 0; i < n; i++ {
		acc = step(i, acc)
	}

	return acc
}

func rangeLen(a, b int64) int {
	if b < a {
		return 0
	}

	return int(b - a + 1)
}
