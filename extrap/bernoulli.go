// SPDX-License-Identifier: MIT

package extrap

import (
	"math/big"
	"sync"
)

// BernoulliTable grows the sequence b_m = B_m/m! on demand using
//
//	b_0 = 1,   b_m = −Σ_{k<m} b_k / (m+1−k)!
//
// which follows from Σ_{k≤m} C(m+1, k)·B_k = 0 divided by (m+1)!.
// All values are exact rationals. B_1 = −1/2.
//
// A BernoulliTable is not safe for concurrent use; the package-level
// Bernoulli and BernoulliOverFactorial share one table behind a mutex.
type BernoulliTable struct {
	b    []*big.Rat // b[m] = B_m/m!
	invF []*big.Rat // invF[j] = 1/j!
}

// NewBernoulliTable returns an empty table.
func NewBernoulliTable() *BernoulliTable {
	return &BernoulliTable{
		b:    []*big.Rat{big.NewRat(1, 1)},
		invF: []*big.Rat{big.NewRat(1, 1), big.NewRat(1, 1)},
	}
}

// OverFactorial returns B_n/n!. The result must not be modified.
func (t *BernoulliTable) OverFactorial(n int) *big.Rat {
	for len(t.b) <= n {
		t.grow()
	}

	return t.b[n]
}

// Number returns B_n as a fresh value.
func (t *BernoulliTable) Number(n int) *big.Rat {
	f := new(big.Int).MulRange(1, int64(n))

	return new(big.Rat).Mul(t.OverFactorial(n), new(big.Rat).SetInt(f))
}

func (t *BernoulliTable) grow() {
	m := len(t.b)
	for len(t.invF) <= m+1 {
		j := int64(len(t.invF))
		t.invF = append(t.invF, new(big.Rat).Quo(t.invF[j-1], big.NewRat(j, 1)))
	}
	if m > 1 && m&1 == 1 {
		t.b = append(t.b, new(big.Rat))
		return
	}
	var sum, term big.Rat
	for k := 0; k < m; k++ {
		if t.b[k].Sign() == 0 {
			continue
		}
		sum.Add(&sum, term.Mul(t.b[k], t.invF[m+1-k]))
	}
	t.b = append(t.b, new(big.Rat).Neg(&sum))
}

var (
	sharedMu        sync.Mutex
	sharedBernoulli = NewBernoulliTable()
)

// Bernoulli returns the n-th Bernoulli number B_n (B_1 = −1/2).
func Bernoulli(n int) *big.Rat {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	return sharedBernoulli.Number(n)
}

// BernoulliOverFactorial returns B_n/n! as a fresh value.
func BernoulliOverFactorial(n int) *big.Rat {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	return new(big.Rat).Set(sharedBernoulli.OverFactorial(n))
}
