// SPDX-License-Identifier: MIT

// Package accel evaluates slowly convergent (and some divergent) infinite
// sums, infinite products and limits to a requested precision by
// accelerating the convergence of the underlying sequence.
//
// Everything is organized under subpackages:
//
//	numeric/     precision register (Context), the Field abstraction with
//	             arbitrary-precision Real and Complex implementations,
//	             extended-real Points and summation Intervals
//	stream/      restartable lazy sequences, finite or unbounded
//	calculus/    tanh-sinh quadrature, step-method derivatives and
//	             forward differences feeding the Euler–Maclaurin tails
//	extrap/      Richardson extrapolation, the Shanks transformation
//	             (Wynn epsilon table), Euler–Maclaurin summation and
//	             Bernoulli numbers
//	nsum/        the adaptive orchestrator, Sum, Product and Limit
//	cmd/nsum/    command-line front end over a catalogue of classic problems
//
// Quick start:
//
//	R := numeric.NewReal(numeric.NewContext(30))
//	f := func(k *decimal.Big) *decimal.Big { return R.Quo(R.One(), R.Mul(k, k)) }
//	res, err := nsum.Sum[*decimal.Big](R, f,
//		numeric.MustInterval(numeric.AtInt(1), numeric.PosInf))
//	// res.Value ≈ π²/6, res.Converged reports whether the tolerance was met.
//
// Precision is a single scoped register: every engine entry point raises it
// while working and restores it on return, so results carry the caller's
// precision.
package accel
