// SPDX-License-Identifier: MIT

// Package extrap implements sequence extrapolation for slowly convergent and
// divergent sequences.
//
// What:
//
//   - Richardson: closed-form weighted combination of a prefix, exact when the
//     error is a polynomial in 1/k. Returns the estimate and maxc, the largest
//     weight magnitude (≈ 10^digits lost to cancellation).
//   - Shanks: iterated Shanks transformation computed with Wynn's epsilon
//     algorithm. The triangular Table can be extended with a longer sequence;
//     extension is pure and shares the old rows.
//   - EulerMaclaurin: integral + endpoint values + Bernoulli-weighted
//     derivative corrections. Exact for polynomials, and the engine behind
//     tail estimates of smooth series.
//
// Precision:
//
//	Extrapolation amplifies rounding error. Feed these routines sequences
//	computed well beyond the target accuracy (the nsum orchestrator runs at
//	four times the caller's digits) and compare eps·maxc (or eps·|cancellation|)
//	against the tolerance before trusting a result.
//
// Determinism:
//
//	Randomized Shanks draws its perturbations from a PRNG seeded by the
//	caller's seed and the first new row index, so equal inputs give equal tables.
package extrap
