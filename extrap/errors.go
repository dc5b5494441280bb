// SPDX-License-Identifier: MIT

package extrap

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewTerms is returned when a sequence is shorter than the method's minimum
	// (three terms for Richardson, two for Shanks).
	ErrTooFewTerms = errors.New("extrap: too few terms")

	// ErrEmptyTable indicates a Wynn table whose last row holds no estimate.
	ErrEmptyTable = errors.New("extrap: table holds no estimate")

	// ErrBadReject is returned for a rejection ratio that is not positive.
	ErrBadReject = errors.New("extrap: rejection ratio must be positive")
)

// extrapErrorf wraps err with the operation name and a detail.
func extrapErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("extrap: %s: %w: "+format, append([]any{op, err}, args...)...)
}
