// SPDX-License-Identifier: MIT

package calculus

import (
	"github.com/ericlagergren/decimal"
	"github.com/katalvlaran/accel/numeric"
	"github.com/katalvlaran/accel/stream"
)

// Func is a function of one variable over the field T.
type Func[T any] func(x T) T

// Integrator computes a definite integral together with an error estimate.
// Interval endpoints may be infinite; multi-point intervals are integrated
// piecewise.
type Integrator[T any] interface {
	Integrate(f Func[T], iv numeric.Interval) (T, *decimal.Big, error)
}

// Differentiator returns the derivative sequence f(x), f'(x), f''(x), … as a
// restartable unbounded stream.
type Differentiator[T any] interface {
	Derivatives(f Func[T], x T) stream.Stream[T]
}
