// SPDX-License-Identifier: MIT

package nsum_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
	"github.com/katalvlaran/accel/nsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func realField(digits int) (*numeric.Context, numeric.Real) {
	ctx := numeric.NewContext(digits)
	return ctx, numeric.NewReal(ctx)
}

func k64(k *decimal.Big) int64 {
	n, _ := k.Int64()
	return n
}

func from(n int64) numeric.Interval { return numeric.MustInterval(numeric.AtInt(n), numeric.PosInf) }

func invPow(R numeric.Real, p int) nsum.Term[*decimal.Big] {
	return func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.PowInt(k, p)) }
}

func TestSum_Zeta2(t *testing.T) {
	ctx, R := realField(15)

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), from(1))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, math.Pi*math.Pi/6, numeric.Float64(res.Value), 1e-13)
	assert.LessOrEqual(t, res.Terms, 150)
	assert.Equal(t, 15, ctx.Digits())
}

// TestSum_Log10Shanks sums Σ −(−9)^k/k, divergent as a series, whose Shanks
// limit is the analytic continuation log(1+9).
func TestSum_Log10Shanks(t *testing.T) {
	_, R := realField(15)
	f := func(k *decimal.Big) *decimal.Big {
		v := R.Quo(R.PowInt(R.FromInt(9), int(k64(k))), k)
		if k64(k)%2 == 0 {
			v = R.Neg(v)
		}
		return v
	}

	res, err := nsum.Sum[*decimal.Big](R, f, from(1), nsum.WithMethods(nsum.Shanks))
	require.NoError(t, err)
	assert.Equal(t, nsum.Shanks, res.Method)
	assert.InDelta(t, math.Log(10), numeric.Float64(res.Value), 1e-12)
}

func TestSum_BiInfinite(t *testing.T) {
	_, R := realField(15)
	f := func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.Add(R.One(), R.Mul(k, k))) }
	iv := numeric.MustInterval(numeric.NegInf, numeric.PosInf)

	res, err := nsum.Sum[*decimal.Big](R, f, iv)
	require.NoError(t, err)
	// π·coth(π)
	assert.InDelta(t, 3.15334809493716, numeric.Float64(res.Value), 1e-13)
}

func TestSum_LowerHalfLine(t *testing.T) {
	_, R := realField(15)
	iv := numeric.MustInterval(numeric.NegInf, numeric.AtInt(-1))

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), iv)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/6, numeric.Float64(res.Value), 1e-13)
}

func TestSum_Finite(t *testing.T) {
	_, R := realField(15)
	square := func(k *decimal.Big) *decimal.Big { return R.Mul(k, k) }

	res, err := nsum.Sum[*decimal.Big](R, square, numeric.MustInterval(numeric.AtInt(1), numeric.AtInt(100)))
	require.NoError(t, err)
	assert.True(t, R.Equal(res.Value, R.FromInt(338350)))
	assert.Equal(t, 100, res.Terms)
	assert.Equal(t, nsum.Direct, res.Method)

	res, err = nsum.Sum[*decimal.Big](R, square, numeric.MustInterval(numeric.AtInt(5), numeric.AtInt(4)))
	require.NoError(t, err)
	assert.True(t, R.IsZero(res.Value))
}

func TestSum_InvalidInterval(t *testing.T) {
	_, R := realField(15)

	_, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), numeric.Interval{numeric.AtInt(1)})
	assert.ErrorIs(t, err, numeric.ErrIntervalArity)

	half := numeric.At(decimal.New(5, 1))
	_, err = nsum.Sum[*decimal.Big](R, invPow(R, 2), numeric.MustInterval(half, numeric.PosInf))
	assert.ErrorIs(t, err, numeric.ErrNotInteger)
}

// TestSum_ExhaustedIsProvisional runs the harmonic series with direct
// summation only; the budget runs out and the best estimate comes back unconverged.
func TestSum_ExhaustedIsProvisional(t *testing.T) {
	ctx, R := realField(15)

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 1), from(1),
		nsum.WithMethods(nsum.Direct), nsum.WithMaxTerms(40))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, nsum.Direct, res.Method)
	assert.GreaterOrEqual(t, res.Terms, 40)
	assert.Greater(t, numeric.Float64(res.Error), 0.0)
	assert.Equal(t, 15, ctx.Digits())
}

func TestSum_Deterministic(t *testing.T) {
	_, R := realField(20)

	a, err := nsum.Sum[*decimal.Big](R, invPow(R, 3), from(1))
	require.NoError(t, err)
	b, err := nsum.Sum[*decimal.Big](R, invPow(R, 3), from(1))
	require.NoError(t, err)

	assert.Equal(t, 0, a.Value.Cmp(b.Value))
	assert.Equal(t, 0, a.Error.Cmp(b.Error))
	assert.Equal(t, a.Terms, b.Terms)
	assert.Equal(t, a.Method, b.Method)
	assert.InDelta(t, 1.2020569031595942, numeric.Float64(a.Value), 1e-15)
}

func TestSum_PrecisionRestoredOnPanic(t *testing.T) {
	ctx, R := realField(15)
	f := func(k *decimal.Big) *decimal.Big {
		if k64(k) >= 5 {
			panic("term evaluation failed")
		}
		return R.One()
	}

	assert.PanicsWithValue(t, "term evaluation failed", func() {
		_, _ = nsum.Sum[*decimal.Big](R, f, from(1))
	})
	assert.Equal(t, 15, ctx.Digits())
}

func TestSum_EulerMaclaurin(t *testing.T) {
	ctx, R := realField(15)

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), from(1), nsum.WithMethods(nsum.EulerMaclaurin))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*math.Pi/6, numeric.Float64(res.Value), 1e-12)
	assert.Equal(t, 15, ctx.Digits())
}

func TestSum_Skip(t *testing.T) {
	_, R := realField(15)

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), from(1), nsum.WithSkip(50))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Terms, 60)
	assert.InDelta(t, math.Pi*math.Pi/6, numeric.Float64(res.Value), 1e-13)
}

func TestSum_ComplexGeometric(t *testing.T) {
	C := numeric.NewComplexField(numeric.NewContext(15))
	R := C.Real()
	z := C.New(R.Quo(R.One(), R.FromInt(2)), R.Quo(R.One(), R.FromInt(4)))
	f := func(k numeric.Complex) numeric.Complex {
		p := C.One()
		for i := k64(k.Re); i > 0; i-- {
			p = C.Mul(p, z)
		}
		return p
	}

	res, err := nsum.Sum[numeric.Complex](C, f, from(0))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1.6, numeric.Float64(res.Value.Re), 1e-13)
	assert.InDelta(t, 0.8, numeric.Float64(res.Value.Im), 1e-13)
}

func TestSum_Diagnostics(t *testing.T) {
	_, R := realField(15)
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := nsum.Sum[*decimal.Big](R, invPow(R, 2), from(1), nsum.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Positive(t, logs.FilterMessage("nsum: batch").Len())
	assert.Equal(t, 1, logs.FilterMessage("nsum: converged").Len())
	assert.Equal(t, 1, logs.FilterMessage("nsum: start").Len())
}

func TestSum_EulerMaclaurinOffForAlternatingTerms(t *testing.T) {
	ctx, R := realField(15)
	core, logs := observer.New(zapcore.DebugLevel)
	leibniz := func(k *decimal.Big) *decimal.Big {
		v := R.Quo(R.FromInt(4), R.Add(R.Mul(R.FromInt(2), k), R.One()))
		if k64(k)%2 == 1 {
			v = R.Neg(v)
		}
		return v
	}

	res, err := nsum.Sum[*decimal.Big](R, leibniz, from(0),
		nsum.WithMethods(nsum.Richardson|nsum.EulerMaclaurin), nsum.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("nsum: euler-maclaurin disabled, terms alternate").Len())
	assert.Zero(t, logs.FilterMessage("nsum: euler-maclaurin").Len())
	assert.True(t, res.Converged)
	assert.Equal(t, nsum.Richardson, res.Method)
	assert.InDelta(t, math.Pi, numeric.Float64(res.Value), 1e-13)
	assert.Equal(t, 15, ctx.Digits())
}

// TestSum_RichardsonOffWhenPrecisionExhausted sums the harmonic series: the
// Richardson weights outgrow the working precision and the method is dropped.
func TestSum_RichardsonOffWhenPrecisionExhausted(t *testing.T) {
	_, R := realField(15)
	core, logs := observer.New(zapcore.DebugLevel)

	res, err := nsum.Sum[*decimal.Big](R, invPow(R, 1), from(1), nsum.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("nsum: richardson disabled, precision exhausted").Len())
	assert.False(t, res.Converged)
	assert.Equal(t, 1, logs.FilterMessage("nsum: failed to converge").Len())
}

func TestAdaptive_CustomSequence(t *testing.T) {
	_, R := realField(20)
	// s_k = 2 − 1/(k+1) − 1/(k+1)²
	update := func(seq []*decimal.Big, from, to int) []*decimal.Big {
		for k := from; k < to; k++ {
			inv := R.Quo(R.One(), R.FromInt(int64(k+1)))
			seq = append(seq, R.Sub(R.Sub(R.FromInt(2), inv), R.Mul(inv, inv)))
		}
		return seq
	}

	res, err := nsum.Adaptive[*decimal.Big](R, update, nil, nsum.WithMethods(nsum.Richardson))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, nsum.Richardson, res.Method)
	assert.InDelta(t, 2.0, numeric.Float64(res.Value), 1e-15)
}

func TestAdaptive_TailFailure(t *testing.T) {
	_, R := realField(15)
	update := func(seq []*decimal.Big, from, to int) []*decimal.Big {
		for k := from; k < to; k++ {
			seq = append(seq, R.FromInt(int64(k)))
		}
		return seq
	}
	boom := errors.New("integrand blew up")
	tail := func(int, *decimal.Big) (*decimal.Big, *decimal.Big, error) { return nil, nil, boom }

	_, err := nsum.Adaptive[*decimal.Big](R, update, tail, nsum.WithMethods(nsum.EulerMaclaurin))
	assert.ErrorIs(t, err, nsum.ErrTermFailed)
	assert.ErrorIs(t, err, boom)
}

func TestProduct_Infinite(t *testing.T) {
	ctx, R := realField(15)
	f := func(k *decimal.Big) *decimal.Big { return R.Sub(R.One(), R.Quo(R.One(), R.Mul(k, k))) }

	res, err := nsum.Product[*decimal.Big](R, f, from(2))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, numeric.Float64(res.Value), 1e-14)
	assert.Equal(t, 15, ctx.Digits())
}

// TestProduct_ComplexFactors checks that the logarithmic reduction keeps the
// argument of factors lying off the first and fourth octants.
func TestProduct_ComplexFactors(t *testing.T) {
	C := numeric.NewComplexField(numeric.NewContext(15))
	R := C.Real()
	f := func(k numeric.Complex) numeric.Complex {
		n := k64(k.Re)
		if n == 0 {
			return C.New(R.FromInt(-1), R.FromInt(2))
		}
		return C.New(R.One(), R.Quo(R.One(), R.PowInt(R.FromInt(2), int(n))))
	}

	res, err := nsum.Product[numeric.Complex](C, f, from(0))
	require.NoError(t, err)
	want := nsum.FiniteProductRange[numeric.Complex](C, f, 0, 80)

	assert.InDelta(t, numeric.Float64(want.Re), numeric.Float64(res.Value.Re), 1e-12)
	assert.InDelta(t, numeric.Float64(want.Im), numeric.Float64(res.Value.Im), 1e-12)
	assert.Negative(t, numeric.Float64(res.Value.Re))
}

func TestProduct_Finite(t *testing.T) {
	_, R := realField(15)
	identity := func(k *decimal.Big) *decimal.Big { return k }

	res, err := nsum.Product[*decimal.Big](R, identity, numeric.MustInterval(numeric.AtInt(1), numeric.AtInt(5)))
	require.NoError(t, err)
	assert.True(t, R.Equal(res.Value, R.FromInt(120)))
}

func TestFinite_Slices(t *testing.T) {
	_, R := realField(15)
	xs := []*decimal.Big{R.FromInt(2), R.FromInt(3), R.FromInt(4)}

	assert.True(t, R.Equal(nsum.FiniteSum[*decimal.Big](R, xs), R.FromInt(9)))
	assert.True(t, R.Equal(nsum.FiniteProduct[*decimal.Big](R, xs), R.FromInt(24)))
	assert.True(t, R.IsZero(nsum.FiniteSum[*decimal.Big](R, nil)))
	assert.True(t, R.Equal(nsum.FiniteProduct[*decimal.Big](R, nil), R.One()))
}

func TestLimit_Expm1OverX(t *testing.T) {
	ctx, R := realField(15)
	f := func(x *decimal.Big) *decimal.Big { return R.Quo(R.Sub(R.Exp(x), R.One()), x) }

	res, err := nsum.Limit[*decimal.Big](R, f, numeric.AtInt(0))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 1.0, numeric.Float64(res.Value), 1e-14)
	assert.Equal(t, 15, ctx.Digits())
}

func TestLimit_CompoundInterestExponential(t *testing.T) {
	_, R := realField(15)
	f := func(n *decimal.Big) *decimal.Big {
		return R.Exp(R.Mul(n, R.Log(R.Add(R.One(), R.Quo(R.One(), n)))))
	}

	res, err := nsum.Limit[*decimal.Big](R, f, numeric.PosInf, nsum.WithExponentialSampling())
	require.NoError(t, err)
	assert.InDelta(t, math.E, numeric.Float64(res.Value), 1e-13)
}

func TestLimit_Direction(t *testing.T) {
	_, R := realField(15)
	sign := func(x *decimal.Big) *decimal.Big { return R.Sign(x) }

	res, err := nsum.Limit[*decimal.Big](R, sign, numeric.AtInt(0), nsum.WithDirection(decimal.New(-1, 0)))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.True(t, R.Equal(res.Value, R.FromInt(-1)))

	res, err = nsum.Limit[*decimal.Big](R, sign, numeric.AtInt(0))
	require.NoError(t, err)
	assert.True(t, R.Equal(res.Value, R.One()))
}
