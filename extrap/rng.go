// SPDX-License-Identifier: MIT

package extrap

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// perturbRange bounds the multiplier of eps used to replace a zero Wynn
// denominator: r ∈ [1, perturbRange].
const perturbRange = 1023

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer),
// so tables extended from different row offsets draw independent perturbations.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// perturbation draws the next multiplier in [1, perturbRange]. Zero is never
// drawn, so the substituted denominator is never zero itself.
func perturbation(rng *rand.Rand) int64 {
	return 1 + rng.Int63n(perturbRange)
}
