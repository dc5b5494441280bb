// SPDX-License-Identifier: MIT

package calculus_test

import (
	"math"
	"testing"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/calculus"
	"github.com/katalvlaran/accel/numeric"
	"github.com/katalvlaran/accel/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(R numeric.Real, xs ...int64) []*decimal.Big {
	out := make([]*decimal.Big, len(xs))
	for i, x := range xs {
		out[i] = R.FromInt(x)
	}
	return out
}

func TestDifferenceDelta(t *testing.T) {
	R := numeric.NewReal(numeric.NewContext(20))
	squares := ints(R, 1, 4, 9, 16, 25)

	d2, err := calculus.DifferenceDelta[*decimal.Big](R, squares, 2)
	require.NoError(t, err)
	assert.True(t, R.Equal(d2, R.FromInt(2)), "Δ² of squares is 2, got %s", d2)

	d3, err := calculus.DifferenceDelta[*decimal.Big](R, squares, 3)
	require.NoError(t, err)
	assert.True(t, R.IsZero(d3))

	d0, err := calculus.DifferenceDelta[*decimal.Big](R, squares, 0)
	require.NoError(t, err)
	assert.True(t, R.Equal(d0, R.One()))
}

func TestDifferenceDelta_Errors(t *testing.T) {
	R := numeric.NewReal(numeric.NewContext(20))

	_, err := calculus.DifferenceDelta[*decimal.Big](R, nil, 1)
	assert.ErrorIs(t, err, calculus.ErrEmptyInput)
	_, err = calculus.DifferenceDelta[*decimal.Big](R, ints(R, 1, 2), -1)
	assert.ErrorIs(t, err, calculus.ErrNegativeOrder)
	_, err = calculus.DifferenceDelta[*decimal.Big](R, ints(R, 1, 2), 2)
	assert.ErrorIs(t, err, calculus.ErrShortSequence)
}

func TestStepDifferentiator_Exp(t *testing.T) {
	ctx := numeric.NewContext(20)
	R := numeric.NewReal(ctx)
	d := calculus.NewStepDifferentiator[*decimal.Big](R)

	ds := d.Derivatives(R.Exp, R.Zero())
	assert.Equal(t, stream.Unbounded, ds.Len())
	for i, v := range stream.Take(ds, 7) {
		assert.InDelta(t, 1.0, numeric.Float64(v), 1e-12, "order %d", i)
	}
	assert.Equal(t, 20, ctx.Digits(), "precision must be restored")
}

func TestStepDifferentiator_DirectedPolynomial(t *testing.T) {
	R := numeric.NewReal(numeric.NewContext(20))
	d := &calculus.StepDifferentiator[*decimal.Big]{F: R, Direction: 1}
	f := func(x *decimal.Big) *decimal.Big { return R.Add(R.Mul(x, x), x) }

	ds := d.Derivatives(f, R.One())
	want := []float64{2, 3, 2, 0, 0}
	got := stream.Take(ds, len(want))
	for i := range want {
		assert.InDelta(t, want[i], numeric.Float64(got[i]), 1e-10, "order %d", i)
	}

	// Restart replays the cached prefix.
	again := stream.Take(ds.Restart(), 3)
	for i := range again {
		assert.True(t, R.Equal(got[i], again[i]))
	}
}

func TestStepDifferentiator_Cos(t *testing.T) {
	R := numeric.NewReal(numeric.NewContext(20))
	d := calculus.NewStepDifferentiator[*decimal.Big](R)

	got := stream.Take(d.Derivatives(R.Cos, R.One()), 6)
	c, s := math.Cos(1), math.Sin(1)
	want := []float64{c, -s, -c, s, c, -s}
	for i := range want {
		assert.InDelta(t, want[i], numeric.Float64(got[i]), 1e-10, "order %d", i)
	}
}

func TestTanhSinh_Intervals(t *testing.T) {
	ctx := numeric.NewContext(20)
	R := numeric.NewReal(ctx)
	q := calculus.NewTanhSinh[*decimal.Big](R)

	square := func(x *decimal.Big) *decimal.Big { return R.Mul(x, x) }
	invSquare := func(x *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.Mul(x, x)) }
	lorentz := func(x *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.Add(R.One(), R.Mul(x, x))) }
	identity := func(x *decimal.Big) *decimal.Big { return x }

	tests := []struct {
		name string
		f    calculus.Func[*decimal.Big]
		iv   numeric.Interval
		want float64
	}{
		{"x^2 on [0,1]", square, numeric.MustInterval(numeric.AtInt(0), numeric.AtInt(1)), 1.0 / 3},
		{"x^2 on [1,0]", square, numeric.MustInterval(numeric.AtInt(1), numeric.AtInt(0)), -1.0 / 3},
		{"x on [0,1,2]", identity, numeric.MustInterval(numeric.AtInt(0), numeric.AtInt(1), numeric.AtInt(2)), 2},
		{"1/x^2 on [1,inf)", invSquare, numeric.MustInterval(numeric.AtInt(1), numeric.PosInf), 1},
		{"lorentz on [0,inf)", lorentz, numeric.MustInterval(numeric.AtInt(0), numeric.PosInf), math.Pi / 2},
		{"lorentz on (-inf,0]", lorentz, numeric.MustInterval(numeric.NegInf, numeric.AtInt(0)), math.Pi / 2},
		{"lorentz on R", lorentz, numeric.MustInterval(numeric.NegInf, numeric.PosInf), math.Pi},
		{"empty", square, numeric.MustInterval(numeric.AtInt(3), numeric.AtInt(3)), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, e, err := q.Integrate(tc.f, tc.iv)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, numeric.Float64(v), 1e-14)
			assert.Less(t, numeric.Float64(e), 1e-10)
			assert.Equal(t, 20, ctx.Digits())
		})
	}
}

func TestTanhSinh_Complex(t *testing.T) {
	C := numeric.NewComplexField(numeric.NewContext(20))
	R := C.Real()
	q := calculus.NewTanhSinh[numeric.Complex](C)
	onePlusI := C.New(R.One(), R.One())

	v, _, err := q.Integrate(func(z numeric.Complex) numeric.Complex { return C.Mul(z, onePlusI) },
		numeric.MustInterval(numeric.AtInt(0), numeric.AtInt(1)))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, numeric.Float64(v.Re), 1e-15)
	assert.InDelta(t, 0.5, numeric.Float64(v.Im), 1e-15)
}

func TestTanhSinh_BadInterval(t *testing.T) {
	R := numeric.NewReal(numeric.NewContext(15))
	q := calculus.NewTanhSinh[*decimal.Big](R)

	_, _, err := q.Integrate(R.Exp, numeric.Interval{numeric.AtInt(0)})
	assert.ErrorIs(t, err, numeric.ErrIntervalArity)
	_, _, err = q.Integrate(R.Exp, numeric.Interval{numeric.PosInf, numeric.AtInt(0)})
	assert.ErrorIs(t, err, numeric.ErrBadInterval)
}
