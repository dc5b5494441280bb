// SPDX-License-Identifier: MIT

package calculus

import (
	"math/big"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
	"github.com/katalvlaran/accel/stream"
)

// Step differentiation constants. Each derivative batch of order m runs at
// (target+stepGuardDigits)·(m+1) digits with step scale·10^-(target+stepOffsetDigits).
const (
	stepGuardDigits  = 6
	stepOffsetDigits = 3
)

// DifferenceDelta returns the n-th forward difference of s,
//
//	Δⁿ = Σ_{k=0}^{n} (−1)^{n+k} C(n, k) s_k.
//
// Binomial weights are carried exactly in big.Int.
//
// Errors: ErrEmptyInput for an empty s, ErrNegativeOrder for n < 0,
// ErrShortSequence when len(s) < n+1.
func DifferenceDelta[T any](F numeric.Field[T], s []T, n int) (T, error) {
	var zero T
	switch {
	case len(s) == 0:
		return zero, calculusErrorf("difference", ErrEmptyInput)
	case n < 0:
		return zero, calculusErrorf("difference", ErrNegativeOrder)
	case len(s) < n+1:
		return zero, calculusErrorf("difference", ErrShortSequence)
	}

	d := F.Zero()
	b := big.NewInt(1)
	if n&1 == 1 {
		b.Neg(b)
	}
	var num big.Int
	for k := 0; k <= n; k++ {
		w := F.FromDecimal(new(decimal.Big).SetBigMantScale(b, 0))
		d = F.Add(d, F.Mul(w, s[k]))
		// b ← b·(k−n)/(k+1), exact at every step.
		num.Mul(b, big.NewInt(int64(k-n)))
		b = new(big.Int).Quo(&num, big.NewInt(int64(k+1)))
	}

	return d, nil
}

// StepDifferentiator computes derivatives by finite differences. Higher orders
// are produced in batches from a single stencil of function values, so the
// first k derivatives cost O(k) evaluations of f (at high precision).
//
// f must stay accurate when evaluated at the raised precision.
type StepDifferentiator[T any] struct {
	F numeric.Field[T]
	// Scale is the characteristic length of f; nil means 1.
	Scale *decimal.Big
	// Direction selects the stencil: 0 central, +1 right-sided, −1 left-sided.
	Direction int
}

// NewStepDifferentiator returns a central-difference differentiator with unit scale.
func NewStepDifferentiator[T any](F numeric.Field[T]) *StepDifferentiator[T] {
	return &StepDifferentiator[T]{F: F}
}

// Derivatives returns the unbounded stream f(x), f'(x), f''(x), …
// The precision in force at this call is the target precision of every element.
// Restarting the stream replays cached values instead of re-evaluating f.
func (d *StepDifferentiator[T]) Derivatives(f Func[T], x T) stream.Stream[T] {
	return stream.Cached[T](&stepStream[T]{
		d:      d,
		f:      f,
		x:      x,
		target: d.F.Context().Digits(),
	})
}

// stepStream is the uncached derivative generator.
type stepStream[T any] struct {
	d      *StepDifferentiator[T]
	f      Func[T]
	x      T
	target int

	started bool
	k       int // next order to emit
	a, b    int // current batch covers orders [a, b)
	y       []T
	hnorm   T
	work    int
}

func (s *stepStream[T]) Next() (T, bool) {
	F := s.d.F
	if !s.started {
		s.started = true
		s.a, s.b, s.k = 1, 2, 1
		return F.Round(s.f(s.x)), true
	}
	if s.k >= s.b || s.y == nil {
		if s.y != nil {
			s.a, s.b = s.b, max(s.b+1, int(float64(s.b)*1.4+1))
		}
		s.sample(s.b)
		s.k = s.a
	}

	v := s.derivative(s.k)
	s.k++

	return F.Round(v), true
}

func (s *stepStream[T]) Len() int { return stream.Unbounded }

func (s *stepStream[T]) Restart() stream.Stream[T] {
	return &stepStream[T]{d: s.d, f: s.f, x: s.x, target: s.target}
}

// sample evaluates the stencil of order m at raised precision.
func (s *stepStream[T]) sample(m int) {
	F := s.d.F
	ctx := F.Context()
	s.work = (s.target + stepGuardDigits) * (m + 1)
	defer ctx.SetDigits(s.work)()

	h := decimal.New(1, s.target+stepOffsetDigits)
	if s.d.Scale != nil {
		h = ctx.New().Mul(h, s.d.Scale)
	}
	hT := F.FromDecimal(h)

	s.y = s.y[:0]
	if s.d.Direction != 0 {
		if s.d.Direction < 0 {
			hT = F.Neg(hT)
		}
		for k := 0; k <= m; k++ {
			s.y = append(s.y, s.f(F.Add(s.x, F.Mul(hT, F.FromInt(int64(k))))))
		}
		s.hnorm = hT
		return
	}
	for k := -m; k <= m; k += 2 {
		s.y = append(s.y, s.f(F.Add(s.x, F.Mul(hT, F.FromInt(int64(k))))))
	}
	s.hnorm = F.Mul(F.FromInt(2), hT)
}

// derivative returns Δᵏy / hnormᵏ at the batch precision.
func (s *stepStream[T]) derivative(k int) T {
	F := s.d.F
	defer F.Context().SetDigits(s.work)()

	v, err := DifferenceDelta(F, s.y, k)
	if err != nil {
		// k < len(y) holds for every order of the batch.
		panic(err)
	}
	p := F.One()
	for i := 0; i < k; i++ {
		p = F.Mul(p, s.hnorm)
	}

	return F.Quo(v, p)
}
