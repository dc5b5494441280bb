// SPDX-License-Identifier: MIT

package calculus

import (
	"math"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
)

// Quadrature defaults.
const (
	// DefaultMaxLevel bounds the node refinement: level m uses step 2^-m.
	DefaultMaxLevel = 8

	// minLevel is the first level at which convergence is tested.
	minLevel = 3

	// quadGuardDigits are added to the working precision while summing nodes.
	quadGuardDigits = 5
)

// TanhSinh is a double-exponential quadrature rule.
//
// Implementation:
//   - Stage 1: each subinterval is mapped onto the whole t-line.
//     Finite [a,b] uses the tanh-sinh map, [a,+∞) and (−∞,b] the exp-sinh map,
//     and (−∞,+∞) the sinh-sinh map. Nodes that round onto a finite endpoint
//     are dropped, so integrable endpoint singularities are never evaluated.
//   - Stage 2: trapezoidal sums over t = k·2^-m are refined level by level,
//     reusing every previous node: S_m = S_{m-1}/2 + 2^-m·Σ_{k odd} w_k f(x_k).
//   - Stage 3: the error at level m is extrapolated from the last three
//     levels (digits roughly double per level) and the loop stops once it
//     falls under Tol·max(1, |S|).
type TanhSinh[T any] struct {
	F numeric.Field[T]
	// MaxLevel caps the refinement; 0 means DefaultMaxLevel.
	MaxLevel int
	// Tol is the relative target; nil means the machine epsilon at call time.
	Tol *decimal.Big
}

// NewTanhSinh returns the rule with default settings.
func NewTanhSinh[T any](F numeric.Field[T]) *TanhSinh[T] {
	return &TanhSinh[T]{F: F}
}

// segment kinds
const (
	kindFinite = iota
	kindUpper  // [a, +∞)
	kindLower  // (−∞, b]
	kindWhole  // (−∞, +∞)
)

// Integrate implements Integrator.
//
// Errors: numeric.ErrIntervalArity or numeric.ErrBadInterval for a malformed interval.
func (q *TanhSinh[T]) Integrate(f Func[T], iv numeric.Interval) (T, *decimal.Big, error) {
	var zero T
	if err := iv.Validate(); err != nil {
		return zero, nil, calculusErrorf("integrate", err)
	}

	R := numeric.NewReal(q.F.Context())
	tol := q.Tol
	if tol == nil {
		tol = q.F.Context().Eps()
	}
	v, e := q.integrate(f, iv, tol)

	return q.F.Round(v), R.Round(e), nil
}

func (q *TanhSinh[T]) integrate(f Func[T], iv numeric.Interval, tol *decimal.Big) (T, *decimal.Big) {
	ctx := q.F.Context()
	defer ctx.Elevate(quadGuardDigits)()

	R := numeric.NewReal(ctx)
	total, errSum := q.F.Zero(), R.Zero()
	for i := 0; i+1 < len(iv); i++ {
		v, e := q.segment(f, iv[i], iv[i+1], tol)
		total = q.F.Add(total, v)
		errSum = R.Add(errSum, e)
	}

	return total, errSum
}

func (q *TanhSinh[T]) segment(f Func[T], a, b numeric.Point, tol *decimal.Big) (T, *decimal.Big) {
	R := numeric.NewReal(q.F.Context())
	if !a.IsInf() && !b.IsInf() {
		switch c := a.Value().Cmp(b.Value()); {
		case c == 0:
			return q.F.Zero(), R.Zero()
		case c > 0:
			v, e := q.segment(f, b, a, tol)
			return q.F.Neg(v), e
		}
	}

	m := &mapping{R: R}
	switch {
	case a.IsInf() && b.IsInf():
		m.kind = kindWhole
	case a.IsInf():
		m.kind, m.b = kindLower, b.Value()
	case b.IsInf():
		m.kind, m.a = kindUpper, a.Value()
	default:
		m.kind, m.a, m.b = kindFinite, a.Value(), b.Value()
		m.d = R.Quo(R.Sub(m.b, m.a), R.FromInt(2))
	}
	m.halfPi = R.Quo(R.Pi(), R.FromInt(2))

	return q.refine(f, m, tol)
}

// refine runs the level loop of Stage 2 and Stage 3.
func (q *TanhSinh[T]) refine(f Func[T], m *mapping, tol *decimal.Big) (T, *decimal.Big) {
	F, R := q.F, m.R
	maxLevel := q.MaxLevel
	if maxLevel <= 0 {
		maxLevel = DefaultMaxLevel
	}
	tmax := m.tRange(F.Context().Digits())

	levels := make([]T, 0, maxLevel+1)
	errEst := R.Zero()
	for level := 0; level <= maxLevel; level++ {
		steps := int64(1) << level
		kmax := int64(math.Floor(tmax * float64(steps)))
		stride, start := int64(2), -kmax
		if level == 0 {
			stride = 1
		} else if start%2 == 0 {
			start++
		}

		sum := F.Zero()
		for k := start; k <= kmax; k += stride {
			t := R.Quo(R.FromInt(k), R.FromInt(steps))
			x, w, ok := m.node(t)
			if !ok {
				continue
			}
			sum = F.Add(sum, F.Mul(f(F.FromDecimal(x)), F.FromDecimal(w)))
		}
		s := F.Quo(sum, F.FromInt(steps))
		if level > 0 {
			s = F.Add(F.Quo(levels[level-1], F.FromInt(2)), s)
		}
		levels = append(levels, s)

		errEst = q.estimate(levels)
		if level >= minLevel && numeric.LessEq(errEst, R.Mul(tol, numeric.Max(R.One(), F.Abs(s)))) {
			break
		}
	}

	return levels[len(levels)-1], errEst
}

// estimate extrapolates the error of the newest level from the last three.
func (q *TanhSinh[T]) estimate(levels []T) *decimal.Big {
	F := q.F
	n := len(levels)
	last := levels[n-1]
	if n < 2 {
		return F.Abs(last)
	}
	d1 := F.Abs(F.Sub(last, levels[n-2]))
	if n < 3 || d1.Sign() == 0 {
		return d1
	}
	d2 := F.Abs(F.Sub(last, levels[n-3]))
	if d2.Sign() == 0 {
		return d1
	}
	e1, e2 := decimalExponent(d1), decimalExponent(d2)
	if e2 >= 0 || e1 > e2 {
		return d1
	}
	// 10^(e1²/e2), rounded toward the less optimistic exponent.
	e := -(e1 * e1 / -e2)
	if e >= e1 {
		return d1
	}

	return decimal.New(1, -e)
}

// decimalExponent returns e with 10^(e-1) ≤ |x| < 10^e for x ≠ 0.
func decimalExponent(x *decimal.Big) int {
	return x.Precision() - x.Scale()
}

// mapping turns a node t into an abscissa and weight.
type mapping struct {
	R      numeric.Real
	kind   int
	a, b   *decimal.Big
	d      *decimal.Big // half width, finite segments only
	halfPi *decimal.Big
}

// tRange returns the half width of the t-window in which nodes still carry
// weight at the given precision.
func (m *mapping) tRange(digits int) float64 {
	u := float64(digits) * math.Ln10
	if m.kind == kindFinite {
		u = (u + math.Ln2) / 2
	}

	return math.Asinh(2 * u / math.Pi)
}

// node returns (x, w, ok); ok is false for nodes that vanish at this precision.
func (m *mapping) node(t *decimal.Big) (*decimal.Big, *decimal.Big, bool) {
	R := m.R
	two := R.FromInt(2)

	et := R.Exp(t)
	iet := R.Quo(R.One(), et)
	sinhT := R.Quo(R.Sub(et, iet), two)
	coshT := R.Quo(R.Add(et, iet), two)
	u := R.Mul(m.halfPi, sinhT)

	switch m.kind {
	case kindFinite:
		// Work with |u| so that δ = 2d/(E²+1) is the distance to the nearer endpoint.
		E := R.Exp(R.Abs(u))
		iE := R.Quo(R.One(), E)
		coshU := R.Quo(R.Add(E, iE), two)
		delta := R.Quo(R.Mul(two, m.d), R.Add(R.Mul(E, E), R.One()))
		var x *decimal.Big
		if u.Sign() >= 0 {
			x = R.Sub(m.b, delta)
			if x.Cmp(m.b) == 0 {
				return nil, nil, false
			}
		} else {
			x = R.Add(m.a, delta)
			if x.Cmp(m.a) == 0 {
				return nil, nil, false
			}
		}
		w := R.Quo(R.Mul(R.Mul(m.d, m.halfPi), coshT), R.Mul(coshU, coshU))
		return x, w, w.Sign() != 0

	case kindUpper, kindLower:
		E := R.Exp(u)
		w := R.Mul(R.Mul(m.halfPi, coshT), E)
		var x *decimal.Big
		if m.kind == kindUpper {
			x = R.Add(m.a, E)
			if x.Cmp(m.a) == 0 {
				return nil, nil, false
			}
		} else {
			x = R.Sub(m.b, E)
			if x.Cmp(m.b) == 0 {
				return nil, nil, false
			}
		}
		return x, w, w.Sign() != 0

	default:
		E := R.Exp(u)
		iE := R.Quo(R.One(), E)
		x := R.Quo(R.Sub(E, iE), two)
		w := R.Mul(R.Mul(m.halfPi, coshT), R.Quo(R.Add(E, iE), two))
		return x, w, true
	}
}
