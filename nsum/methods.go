// SPDX-License-Identifier: MIT

package nsum

import (
	"fmt"
	"strings"
)

// Methods is a set of acceleration methods.
type Methods uint8

const (
	// Direct uses the partial sums as they are.
	Direct Methods = 1 << iota
	// Richardson enables Richardson extrapolation.
	Richardson
	// Shanks enables the Shanks transformation (Wynn epsilon algorithm).
	Shanks
	// EulerMaclaurin enables Euler–Maclaurin tail estimates (sums only).
	EulerMaclaurin
)

// DefaultMethods is the set used when no method is configured.
const DefaultMethods = Richardson | Shanks

// accelerators are the methods that extrapolate.
const accelerators = Richardson | Shanks | EulerMaclaurin

// methodTags maps short and long tags to methods, in canonical order.
var methodTags = []struct {
	short, long string
	m           Methods
}{
	{"d", "direct", Direct},
	{"r", "richardson", Richardson},
	{"s", "shanks", Shanks},
	{"e", "euler-maclaurin", EulerMaclaurin},
}

// ParseMethods parses a '+'-separated list of tags such as "r+s" or
// "richardson+euler-maclaurin". Tags are case-insensitive.
//
// Errors: ErrUnknownMethod for an empty list or unknown tag,
// ErrMethodConflict when direct is combined with anything else.
func ParseMethods(s string) (Methods, error) {
	var m Methods
	for _, raw := range strings.Split(s, "+") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for _, t := range methodTags {
			if tag == t.short || tag == t.long {
				m |= t.m
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, raw)
		}
	}
	if m&Direct != 0 && m&accelerators != 0 {
		return 0, fmt.Errorf("%w: %q", ErrMethodConflict, s)
	}

	return m, nil
}

// Has reports whether every method in x is in m.
func (m Methods) Has(x Methods) bool { return m&x == x }

// accelerates reports whether any extrapolating method is enabled.
func (m Methods) accelerates() bool { return m&accelerators != 0 }

// String returns the long tags joined by '+', e.g. "richardson+shanks".
func (m Methods) String() string {
	var parts []string
	for _, t := range methodTags {
		if m&t.m != 0 {
			parts = append(parts, t.long)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "+")
}

// Set implements the flag value interface so a Methods can back a CLI flag.
func (m *Methods) Set(s string) error {
	v, err := ParseMethods(s)
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Type names the flag value type.
func (m *Methods) Type() string { return "methods" }
