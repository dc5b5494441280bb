// SPDX-License-Identifier: MIT

// Package nsum evaluates infinite sums, infinite products and limits to a
// requested tolerance by accelerating the convergence of the underlying
// sequence.
//
// What:
//
//   - Adaptive: the orchestrator. It pulls terms in batches, raises the
//     working precision, runs the enabled extrapolators (Richardson, Shanks,
//     Euler–Maclaurin) after every batch and returns as soon as one of them,
//     or the plain partial sum, is within tolerance.
//   - Sum, Product, Limit: reduce their problem to one forward sequence and
//     call Adaptive. Finite ranges bypass the engine (FiniteSumRange,
//     FiniteProductRange).
//
// Methods:
//
//	Direct          plain partial sums, no extrapolation
//	Richardson      good for series whose terms behave like rational functions
//	Shanks          good for alternating, geometric and some divergent series
//	EulerMaclaurin  tail = integral + derivative corrections, for smooth
//	                non-alternating terms
//
// The default is Richardson|Shanks, parsed from strings like "r+s+e" with
// ParseMethods.
//
// Precision:
//
//	With any extrapolator enabled the working precision is four times the
//	caller's for the duration of the call; direct summation adds 10 digits.
//	The register is restored on every exit path, including panics raised by
//	the term function. Results are rounded to the caller's precision.
//
// Results:
//
//	Result.Converged is false when the term budget ran out. Value then holds
//	the estimate with the smallest error seen and must be treated as
//	provisional.
package nsum
