// SPDX-License-Identifier: MIT

package extrap

import (
	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/calculus"
	"github.com/katalvlaran/accel/numeric"
	"github.com/katalvlaran/accel/stream"
)

// Euler–Maclaurin defaults.
const (
	// DefaultReject is the smallest accepted ratio |previous term| / |term|
	// of the correction series; below it the series is declared divergent.
	DefaultReject = 10

	// emGuardDigits are added to the working precision while accumulating.
	emGuardDigits = 3

	// emMinOrder is the derivative order after which truncation is allowed.
	emMinOrder = 4

	// infiniteEndpointTerms is the length of the zero derivative stream used
	// for an infinite endpoint; it also caps the correction series.
	infiniteEndpointTerms = 10000
)

// EulerMaclaurinOptions configures EulerMaclaurin. The zero value is valid.
//
// Fields:
//   - Tol: truncation threshold on a single correction term; nil means eps.
//   - Reject: divergence ratio (see DefaultReject); nil means DefaultReject.
//   - Integral: known value of ∫_a^b f; skips quadrature when non-nil.
//   - ADiffs, BDiffs: known derivative streams f, f', f'', … at a and b.
//     They are restarted before use, so the same stream may be passed again.
//   - Integrator, Differentiator: collaborators used for whatever was not
//     supplied; nil selects calculus.TanhSinh and calculus.StepDifferentiator.
type EulerMaclaurinOptions[T any] struct {
	Tol            *decimal.Big
	Reject         *decimal.Big
	Integral       *T
	ADiffs         stream.Stream[T]
	BDiffs         stream.Stream[T]
	Integrator     calculus.Integrator[T]
	Differentiator calculus.Differentiator[T]
}

// DefaultEulerMaclaurinOptions returns options that compute everything numerically.
func DefaultEulerMaclaurinOptions[T any]() EulerMaclaurinOptions[T] {
	return EulerMaclaurinOptions[T]{}
}

// EulerMaclaurin approximates Σ_{k=a}^{b} f(k) over the first and last points
// of iv (either may be infinite) by
//
//	∫_a^b f + (f(a)+f(b))/2 + Σ_{j≥1} B_{2j}/(2j)! · (f^{(2j−1)}(b) − f^{(2j−1)}(a)).
//
// Implementation:
//   - Stage 1: the derivative streams at both endpoints are walked in lock
//     step; an infinite endpoint contributes a stream of zeros.
//   - Stage 2: every odd order k adds (f^{(k)}(b) − f^{(k)}(a))·B_{k+1}/(k+1)!.
//     Past order 4 the series stops when a term is below Tol (accepted) or
//     when |previous|/|term| < Reject (the asymptotic series has started to
//     diverge; |term| is added to the error bound).
//   - Stage 3: finite endpoints add f(a)/2 and f(b)/2; the integral is added
//     from Integral or from the Integrator, whose error joins the bound.
//
// The sum is exact for polynomials once the derivatives vanish.
//
// Errors: numeric.ErrIntervalArity / numeric.ErrBadInterval for a malformed
// interval, ErrBadReject for Reject ≤ 0, and whatever the Integrator returns.
func EulerMaclaurin[T any](F numeric.Field[T], f calculus.Func[T], iv numeric.Interval, opts EulerMaclaurinOptions[T]) (T, *decimal.Big, error) {
	var zero T
	if err := iv.Validate(); err != nil {
		return zero, nil, extrapErrorf("euler-maclaurin", err, "%d point(s)", len(iv))
	}
	if opts.Reject != nil && opts.Reject.Sign() <= 0 {
		return zero, nil, extrapErrorf("euler-maclaurin", ErrBadReject, "%s", opts.Reject)
	}

	R := numeric.NewReal(F.Context())
	if opts.Tol == nil {
		opts.Tol = F.Context().Eps()
	}
	if opts.Reject == nil {
		opts.Reject = decimal.New(DefaultReject, 0)
	}
	if opts.Integrator == nil {
		opts.Integrator = calculus.NewTanhSinh(F)
	}
	if opts.Differentiator == nil {
		opts.Differentiator = calculus.NewStepDifferentiator(F)
	}

	s, e, err := eulerMaclaurin(F, f, iv, &opts)
	if err != nil {
		return zero, nil, err
	}

	return F.Round(s), R.Round(e), nil
}

func eulerMaclaurin[T any](F numeric.Field[T], f calculus.Func[T], iv numeric.Interval, opts *EulerMaclaurinOptions[T]) (T, *decimal.Big, error) {
	var zero T
	ctx := F.Context()
	defer ctx.Elevate(emGuardDigits)()
	R := numeric.NewReal(ctx)

	a, b := iv.Lo(), iv.Hi()
	as := endpointDiffs(F, f, a, opts.ADiffs, opts.Differentiator)
	bs := endpointDiffs(F, f, b, opts.BDiffs, opts.Differentiator)

	s, errBound := F.Zero(), R.Zero()
	var prev *decimal.Big
	for k := 0; ; k++ {
		da, okA := as.Next()
		db, okB := bs.Next()
		if !okA || !okB {
			break
		}
		if k&1 == 0 {
			continue
		}
		w := R.FromRat(BernoulliOverFactorial(k + 1))
		term := F.Mul(F.Sub(db, da), F.FromDecimal(w))
		mag := F.Abs(term)
		if k > emMinOrder {
			if mag.Cmp(opts.Tol) < 0 || mag.Sign() == 0 {
				s = F.Add(s, term)
				break
			}
			if prev != nil && R.Quo(prev, mag).Cmp(opts.Reject) < 0 {
				errBound = R.Add(errBound, mag)
				break
			}
		}
		s = F.Add(s, term)
		prev = mag
	}

	half := F.Quo(F.One(), F.FromInt(2))
	if !a.IsInf() {
		s = F.Add(s, F.Mul(f(F.FromDecimal(a.Value())), half))
	}
	if !b.IsInf() {
		s = F.Add(s, F.Mul(f(F.FromDecimal(b.Value())), half))
	}

	if opts.Integral != nil {
		return F.Add(s, *opts.Integral), errBound, nil
	}
	integral, ierr, err := opts.Integrator.Integrate(f, iv)
	if err != nil {
		return zero, nil, extrapErrorf("euler-maclaurin", err, "integral over [%s, %s]", a, b)
	}

	return F.Add(s, integral), R.Add(errBound, ierr), nil
}

// endpointDiffs picks the derivative stream for one endpoint.
func endpointDiffs[T any](F numeric.Field[T], f calculus.Func[T], p numeric.Point, given stream.Stream[T], d calculus.Differentiator[T]) stream.Stream[T] {
	switch {
	case p.IsInf():
		return stream.Repeat(F.Zero(), infiniteEndpointTerms)
	case given != nil:
		return given.Restart()
	default:
		return d.Derivatives(f, F.FromDecimal(p.Value()))
	}
}
