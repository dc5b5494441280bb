// SPDX-License-Identifier: MIT

package nsum

import (
	"fmt"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/extrap"
	"github.com/katalvlaran/accel/numeric"
	"go.uber.org/zap"
)

// alternatingTolerance bounds |sign(t1) + sign(t2)| for two terms to count as
// alternating. The check is a heuristic, not a classifier.
var alternatingTolerance = decimal.New(1, 3)

// Update appends the sequence elements for indices [from, to) to seq and
// returns the extended slice. For series the elements are partial sums.
type Update[T any] func(seq []T, from, to int) []T

// Tail estimates the remainder of a series from index from onwards, with an
// error bound. It runs at whatever precision it chooses and must restore it.
type Tail[T any] func(from int, tol *decimal.Big) (T, *decimal.Big, error)

// Result is the outcome of an acceleration run.
type Result[T any] struct {
	// Value is the estimate, rounded to the caller's precision.
	Value T
	// Error is the error estimate of the method that produced Value.
	Error *decimal.Big
	// Method is the single method that produced Value.
	Method Methods
	// Terms is the number of sequence elements evaluated.
	Terms int
	// Converged is false when the budget ran out; Value is then provisional.
	Converged bool
}

// Adaptive drives update until the sequence, or one of its extrapolations,
// is within tolerance. tail may be nil, which disables Euler–Maclaurin.
//
// Implementation:
//   - Stage 1: options are resolved at the caller's precision, then the
//     precision is raised (×4 with extrapolation, +10 digits without) until return.
//   - Stage 2: per batch, after the skip offset:
//     direct error |s_n − s_{n−1}|, then Richardson (change since the last
//     Richardson value), then Shanks (randomized table extension, last-row
//     error), then Euler–Maclaurin (tail + s_n, skipped for alternating
//     terms). The first error within tolerance returns.
//   - Stage 3: a method whose cancellation proxy times eps exceeds the
//     tolerance is disabled for the rest of the run.
//   - Stage 4: when the budget is spent the smallest-error estimate seen in
//     any batch is returned with Converged=false.
//
// Errors:
//   - tail failures, wrapped in ErrTermFailed;
//   - errors from extrap.Richardson or extrap.Shanks, wrapped with the
//     method name. Both are only called once the sequence is long enough,
//     so with the current extrapolators this return is not taken.
func Adaptive[T any](F numeric.Field[T], update Update[T], tail Tail[T], opts ...Option) (Result[T], error) {
	o := gatherOptions(F.Context(), opts...)
	res, err := adaptive(F, update, tail, &o)
	if err != nil {
		return Result[T]{}, err
	}
	res.Value = F.Round(res.Value)
	res.Error = numeric.NewReal(F.Context()).Round(res.Error)

	return res, nil
}

func adaptive[T any](F numeric.Field[T], update Update[T], tail Tail[T], o *Options) (Result[T], error) {
	ctx := F.Context()
	R := numeric.NewReal(ctx)
	log := o.logger
	tol := o.tol

	methods := o.methods
	if tail == nil {
		methods &^= EulerMaclaurin
	}
	if methods.accelerates() {
		defer ctx.Scale(accelPrecisionFactor)()
	} else {
		defer ctx.Elevate(directGuardDigits)()
	}
	log.Debug("nsum: start",
		zap.Stringer("methods", methods),
		zap.Stringer("tolerance", tol),
		zap.Int("max_terms", o.maxTerms),
		zap.Int("working_digits", ctx.Digits()))

	var (
		seq      []T
		table    *extrap.Table[T]
		lastRich = F.Zero()
		best     = Result[T]{Value: F.Zero()}
		index    int
		shanks   = extrap.ShanksOptions{Randomized: true, Seed: o.shanksSeed}
	)
	consider := func(v T, e *decimal.Big, m Methods) {
		if best.Error == nil || e.Cmp(best.Error) < 0 {
			best = Result[T]{Value: v, Error: e, Method: m}
		}
	}
	done := func(v T, e *decimal.Big, m Methods) (Result[T], error) {
		log.Debug("nsum: converged", zap.Stringer("method", m), zap.Int("terms", index), zap.Stringer("error", e))
		return Result[T]{Value: v, Error: e, Method: m, Terms: index, Converged: true}, nil
	}

	for batch := 0; index < o.maxTerms; batch++ {
		step := max(o.schedule(batch), 1)
		seq = update(seq, index, index+step)
		index += step
		if len(seq) < 2 || index < o.skip {
			continue
		}

		n := len(seq)
		cur := seq[n-1]
		directErr := F.Abs(F.Sub(cur, seq[n-2]))
		log.Debug("nsum: batch", zap.Int("terms", index), zap.Stringer("direct_error", directErr))
		if numeric.LessEq(directErr, tol) {
			return done(cur, directErr, Direct)
		}
		consider(cur, directErr, Direct)
		eps := ctx.Eps()

		if methods.Has(Richardson) && n >= 3 {
			v, maxc, err := extrap.Richardson(F, seq)
			if err != nil {
				return Result[T]{}, nsumErrorf("richardson", err)
			}
			e := F.Abs(F.Sub(v, lastRich))
			log.Debug("nsum: richardson", zap.Stringer("error", e), zap.Stringer("maxc", maxc))
			if numeric.LessEq(e, tol) {
				return done(v, e, Richardson)
			}
			lastRich = v
			if R.Mul(eps, maxc).Cmp(tol) > 0 {
				log.Debug("nsum: richardson disabled, precision exhausted")
				methods &^= Richardson
			}
			consider(v, e, Richardson)
		}

		if methods.Has(Shanks) {
			var err error
			table, err = extrap.Shanks(F, seq, table, shanks)
			if err != nil {
				return Result[T]{}, nsumErrorf("shanks", err)
			}
			if est, err := table.Read(F); err == nil {
				log.Debug("nsum: shanks", zap.Stringer("error", est.Error), zap.Stringer("cancellation", est.Cancellation))
				if numeric.LessEq(est.Error, tol) {
					return done(est.Value, est.Error, Shanks)
				}
				if R.Mul(eps, est.Cancellation).Cmp(tol) > 0 {
					log.Debug("nsum: shanks disabled, precision exhausted")
					methods &^= Shanks
				}
				consider(est.Value, est.Error, Shanks)
			}
		}

		if methods.Has(EulerMaclaurin) && n >= 3 {
			if alternating(F, F.Sub(cur, seq[n-2]), F.Sub(seq[n-2], seq[n-3])) {
				log.Debug("nsum: euler-maclaurin disabled, terms alternate")
				methods &^= EulerMaclaurin
			} else {
				v, e, err := tail(index, tol)
				if err != nil {
					return Result[T]{}, nsumErrorf("euler-maclaurin", fmt.Errorf("%w: %w", ErrTermFailed, err))
				}
				v = F.Add(v, cur)
				log.Debug("nsum: euler-maclaurin", zap.Stringer("error", e))
				if numeric.LessEq(e, tol) {
					return done(v, e, EulerMaclaurin)
				}
				consider(v, e, EulerMaclaurin)
			}
		}
	}

	best.Terms = index
	if best.Error == nil {
		best.Error = R.Zero()
	}
	log.Debug("nsum: failed to converge", zap.Int("terms", index), zap.Stringer("best_error", best.Error))

	return best, nil
}

// alternating reports whether sign(t1) ≈ −sign(t2).
func alternating[T any](F numeric.Field[T], t1, t2 T) bool {
	return numeric.Less(F.Abs(F.Add(F.Sign(t1), F.Sign(t2))), alternatingTolerance)
}
