// SPDX-License-Identifier: MIT

package extrap

import (
	"math/big"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
)

// Richardson extrapolates the limit of seq (at least three terms) assuming an
// error expansion in powers of 1/k.
//
// Implementation:
//   - Stage 1: if the last two differences change sign the sequence is
//     treated as alternating and only the even-indexed terms are used.
//   - Stage 2: with N = len/2 − 1 the weights start at
//     c_N = (−1)^N N^N / N! and follow
//     c ← c·(k−N)(k+N+1)^N / [(k+1)(k+N)^N], so no factorial is recomputed.
//     Each ratio is formed exactly in big.Int before rounding.
//   - Stage 3: the estimate is Σ_k c_k·seq[N+k]; maxc is max(1, |c_k|).
//
// Complexity: O(N) field operations plus O(N²·log N) bit work for the exact ratios.
//
// Errors: ErrTooFewTerms if len(seq) < 3.
func Richardson[T any](F numeric.Field[T], seq []T) (T, *decimal.Big, error) {
	var zero T
	if len(seq) < 3 {
		return zero, nil, extrapErrorf("richardson", ErrTooFewTerms, "got %d, need 3", len(seq))
	}

	n := len(seq)
	d1 := F.Sign(F.Sub(seq[n-1], seq[n-2]))
	d2 := F.Sign(F.Sub(seq[n-2], seq[n-3]))
	if !F.Equal(d1, d2) {
		even := make([]T, 0, (n+1)/2)
		for i := 0; i < n; i += 2 {
			even = append(even, seq[i])
		}
		seq = even
	}

	R := numeric.NewReal(F.Context())
	N := len(seq)/2 - 1
	bigN := big.NewInt(int64(N))

	// c_N = (−1)^N N^N / N!; 0^0 == 1.
	num := new(big.Int).Exp(bigN, bigN, nil)
	den := new(big.Int).MulRange(1, int64(N))
	if N&1 == 1 {
		num.Neg(num)
	}
	c := R.FromRat(new(big.Rat).SetFrac(num, den))

	s := F.Zero()
	maxc := R.One()
	for k := 0; k <= N; k++ {
		s = F.Add(s, F.Mul(F.FromDecimal(c), seq[N+k]))
		maxc = numeric.Max(maxc, R.Abs(c))
		if k == N {
			break
		}
		c = R.Mul(c, R.FromRat(richardsonRatio(k, N)))
	}

	return s, maxc, nil
}

// richardsonRatio returns (k−N)(k+N+1)^N / ((k+1)(k+N)^N).
func richardsonRatio(k, N int) *big.Rat {
	bN := big.NewInt(int64(N))
	num := new(big.Int).Exp(big.NewInt(int64(k+N+1)), bN, nil)
	num.Mul(num, big.NewInt(int64(k-N)))
	den := new(big.Int).Exp(big.NewInt(int64(k+N)), bN, nil)
	den.Mul(den, big.NewInt(int64(k+1)))

	return new(big.Rat).SetFrac(num, den)
}
