// SPDX-License-Identifier: MIT

// Package numeric is the arbitrary-precision arithmetic layer used by the
// acceleration engine.
//
// What is inside:
//
//   - Context: the working-precision register (decimal digits). Every
//     elevation returns a restore function; callers defer it so the register
//     is reset on every exit path, including panics.
//   - Field[T]: the arithmetic surface the algorithms are written against.
//     Real works on *decimal.Big, ComplexField on Complex. Neither carries
//     its own precision: both read the Context at each operation, so raising
//     the register raises the precision of everything computed afterwards.
//   - Point and Interval: interval endpoints that may be ±∞.
//
// Usage:
//
//	ctx := numeric.NewContext(30)
//	R := numeric.NewReal(ctx)
//	restore := ctx.Scale(4) // 120 digits until restore()
//	defer restore()
//	x := R.Quo(R.FromInt(1), R.FromInt(3))
//
// A Context is not safe for use by two overlapping computations. Give each
// goroutine its own.
package numeric
