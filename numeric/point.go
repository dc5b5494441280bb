// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/ericlagergren/decimal"
)

// Point is an interval endpoint: a finite real or ±∞.
type Point struct {
	value *decimal.Big
	inf   int
}

var (
	// PosInf is +∞.
	PosInf = Point{inf: 1}
	// NegInf is −∞.
	NegInf = Point{inf: -1}
)

// At returns the finite point x.
func At(x *decimal.Big) Point { return Point{value: new(decimal.Big).Copy(x)} }

// AtInt returns the finite integer point n.
func AtInt(n int64) Point { return Point{value: decimal.New(n, 0)} }

// IsInf reports whether p is ±∞.
func (p Point) IsInf() bool { return p.inf != 0 }

// InfSign returns +1 for +∞, −1 for −∞ and 0 for finite points.
func (p Point) InfSign() int { return p.inf }

// Value returns the finite coordinate, or nil for ±∞.
func (p Point) Value() *decimal.Big { return p.value }

// Int64 returns the point as an integer.
// Errors: ErrNotInteger for ±∞, fractional values or values beyond int64.
func (p Point) Int64() (int64, error) {
	if p.inf != 0 || !p.value.IsInt() {
		return 0, ErrNotInteger
	}
	n, ok := p.value.Int64()
	if !ok {
		return 0, ErrNotInteger
	}

	return n, nil
}

// String implements fmt.Stringer.
func (p Point) String() string {
	switch {
	case p.inf > 0:
		return "+inf"
	case p.inf < 0:
		return "-inf"
	default:
		return p.value.String()
	}
}

// Interval is an ordered list of at least two points. Sums and products use the
// first and last point; quadrature integrates each consecutive subinterval.
type Interval []Point

// NewInterval validates the point list.
//
// Errors:
//   - ErrIntervalArity if fewer than two points are given.
//   - ErrBadInterval if +∞ starts the interval, −∞ ends it, or an interior point is infinite.
func NewInterval(points ...Point) (Interval, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%d point(s): %w", len(points), ErrIntervalArity)
	}
	last := len(points) - 1
	if points[0].inf > 0 || points[last].inf < 0 {
		return nil, ErrBadInterval
	}
	for i := 1; i < last; i++ {
		if points[i].inf != 0 {
			return nil, ErrBadInterval
		}
	}
	iv := make(Interval, len(points))
	copy(iv, points)

	return iv, nil
}

// MustInterval is NewInterval that panics on error; intended for literals.
func MustInterval(points ...Point) Interval {
	iv, err := NewInterval(points...)
	if err != nil {
		panic(err)
	}

	return iv
}

// Lo returns the first point.
func (iv Interval) Lo() Point { return iv[0] }

// Hi returns the last point.
func (iv Interval) Hi() Point { return iv[len(iv)-1] }

// Validate re-checks an Interval built without NewInterval.
func (iv Interval) Validate() error {
	_, err := NewInterval(iv...)
	return err
}
