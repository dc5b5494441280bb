// SPDX-License-Identifier: MIT

package extrap

import (
	"math/rand"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
)

// ShanksOptions configures the handling of zero denominators.
//
// Fields:
//   - Randomized: replace a zero denominator by r·eps with r ∈ [1, 1023]
//     instead of stopping. Lets exactly geometric sequences keep extending.
//   - Seed: parent seed of the perturbation PRNG; 0 selects a fixed default.
type ShanksOptions struct {
	Randomized bool
	Seed       int64
}

// DefaultShanksOptions returns deterministic (non-randomized) options.
func DefaultShanksOptions() ShanksOptions {
	return ShanksOptions{}
}

// Table is a Wynn epsilon table. Row i has i+1 entries; entries in even
// columns are auxiliary and entries in odd columns are Shanks estimates.
//
// A Table is immutable once returned. Shanks shares the rows of the table it
// extends, so one handle may feed any number of later extensions, but callers
// must not write into the slices returned by Row.
type Table[T any] struct {
	rows [][]T
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// Row returns row i. The slice is shared and must be treated as read-only.
func (t *Table[T]) Row(i int) []T { return t.rows[i] }

// Estimate is what the last row of a table says about the limit.
type Estimate[T any] struct {
	// Value is the last entry of the last row.
	Value T
	// Error is |last − third-from-last|, zero when the row has only two entries.
	Error *decimal.Big
	// Cancellation is |second-from-last|; eps·Cancellation approximates the
	// rounding error carried into Value.
	Cancellation *decimal.Big
}

// Read evaluates the last row.
//
// Errors: ErrEmptyTable if the table has no row with at least two entries.
func (t *Table[T]) Read(F numeric.Field[T]) (Estimate[T], error) {
	if t.Len() == 0 || len(t.rows[len(t.rows)-1]) < 2 {
		return Estimate[T]{}, extrapErrorf("shanks", ErrEmptyTable, "%d row(s)", t.Len())
	}
	row := t.rows[len(t.rows)-1]
	n := len(row)
	if n == 2 {
		R := numeric.NewReal(F.Context())
		return Estimate[T]{Value: row[1], Error: R.Zero(), Cancellation: F.Abs(row[0])}, nil
	}

	return Estimate[T]{
		Value:        row[n-1],
		Error:        F.Abs(F.Sub(row[n-1], row[n-3])),
		Cancellation: F.Abs(row[n-2]),
	}, nil
}

// Shanks builds or extends the Wynn epsilon table of seq.
//
// Implementation:
//   - Stage 1: rows already present in prev are kept (shared, not copied);
//     new rows run from len(prev) up to the largest even bound ≤ len(seq)−1,
//     so the last row ends in an estimate column.
//   - Stage 2: entry (i, j) = a + 1/b with
//     j = 0: a = 0,            b = seq[i+1] − seq[i]
//     j = 1: a = seq[i],       b = row[0] − T[i−1][0]
//     j > 1: a = T[i−1][j−2],  b = row[j−1] − T[i−1][j−1]
//   - Stage 3: a zero b means the transformation has become exact. In
//     deterministic mode the rows finished so far are returned, dropping the
//     last one when it ends in an auxiliary column. In randomized mode b is
//     replaced by r·eps, with r drawn from a PRNG seeded by (opts.Seed, len(prev)).
//
// Extending prev with a longer sequence yields exactly the rows a fresh call
// on the full sequence would yield, as long as the shared prefix of seq is
// unchanged.
//
// Errors: ErrTooFewTerms if len(seq) < 2.
func Shanks[T any](F numeric.Field[T], seq []T, prev *Table[T], opts ShanksOptions) (*Table[T], error) {
	if len(seq) < 2 {
		return nil, extrapErrorf("shanks", ErrTooFewTerms, "got %d, need 2", len(seq))
	}

	start := prev.Len()
	rows := make([][]T, start, max(start, len(seq)))
	if start > 0 {
		copy(rows, prev.rows)
	}
	stop := len(seq) - 1
	if stop&1 == 1 {
		stop--
	}

	var rng *rand.Rand
	if opts.Randomized {
		rng = rngFromSeed(deriveSeed(opts.Seed, uint64(start)))
	}
	one := F.One()

	for i := start; i < stop; i++ {
		row := make([]T, 0, i+1)
		for j := 0; j <= i; j++ {
			var a, b T
			switch j {
			case 0:
				a, b = F.Zero(), F.Sub(seq[i+1], seq[i])
			case 1:
				a, b = seq[i], F.Sub(row[0], rows[i-1][0])
			default:
				a, b = rows[i-1][j-2], F.Sub(row[j-1], rows[i-1][j-1])
			}
			if F.IsZero(b) {
				if rng == nil {
					if i&1 == 1 {
						rows = rows[:len(rows)-1]
					}
					return &Table[T]{rows: rows}, nil
				}
				ctx := F.Context()
				b = F.FromDecimal(ctx.New().Mul(decimal.New(perturbation(rng), 0), ctx.Eps()))
			}
			row = append(row, F.Add(a, F.Quo(one, b)))
		}
		rows = append(rows, row)
	}

	return &Table[T]{rows: rows}, nil
}
