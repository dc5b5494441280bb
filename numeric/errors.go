// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrIntervalArity is returned when an interval is built from fewer than two points.
	ErrIntervalArity = errors.New("numeric: interval needs at least two points")

	// ErrBadInterval indicates an interval whose infinite endpoints are misplaced
	// (e.g., +∞ as the lower bound or an infinite interior point).
	ErrBadInterval = errors.New("numeric: malformed interval")

	// ErrNotInteger is returned when an integer point was required.
	ErrNotInteger = errors.New("numeric: point is not an integer")
)
