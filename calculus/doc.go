// SPDX-License-Identifier: MIT

// Package calculus holds the numerical-analysis collaborators of the
// Euler–Maclaurin estimator: definite integration and lazy derivative
// sequences.
//
// Both are expressed as small interfaces so callers can inject closed forms
// when they know them:
//
//   - Integrator[T]: Integrate(f, interval) -> (value, error estimate).
//     The default is TanhSinh, a double-exponential rule that handles
//     finite, half-infinite and bi-infinite intervals.
//   - Differentiator[T]: Derivatives(f, x) -> restartable stream f, f', f'', …
//     The default is StepDifferentiator (finite differences at raised precision).
//
// All routines read the working precision from the field's Context at call
// time and put it back before returning.
package calculus
