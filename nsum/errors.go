// SPDX-License-Identifier: MIT

package nsum

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod is returned by ParseMethods for an unrecognized tag.
	ErrUnknownMethod = errors.New("nsum: unknown method")

	// ErrMethodConflict indicates "direct" combined with an acceleration method.
	ErrMethodConflict = errors.New("nsum: direct summation cannot be combined with other methods")

	// ErrTermFailed wraps a failure reported by an Euler–Maclaurin tail estimate.
	ErrTermFailed = errors.New("nsum: tail estimate failed")
)

// nsumErrorf wraps err with the operation name.
func nsumErrorf(op string, err error) error {
	return fmt.Errorf("nsum: %s: %w", op, err)
}
