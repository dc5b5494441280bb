// SPDX-License-Identifier: MIT

package calculus

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for zero-length inputs.
	ErrEmptyInput = errors.New("calculus: empty input")

	// ErrShortSequence indicates fewer samples than the requested difference order needs.
	ErrShortSequence = errors.New("calculus: sequence too short for difference order")

	// ErrNegativeOrder is returned for a negative derivative or difference order.
	ErrNegativeOrder = errors.New("calculus: negative order")
)

// calculusErrorf wraps err with the operation name.
func calculusErrorf(op string, err error) error {
	return fmt.Errorf("calculus: %s: %w", op, err)
}
