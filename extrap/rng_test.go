// SPDX-License-Identifier: MIT

package extrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPerturbation_Range draws many multipliers and checks they stay in [1, 1023].
func TestPerturbation_Range(t *testing.T) {
	rng := rngFromSeed(0)
	for i := 0; i < 10000; i++ {
		r := perturbation(rng)
		assert.GreaterOrEqual(t, r, int64(1))
		assert.LessOrEqual(t, r, int64(perturbRange))
	}
}

// TestDeriveSeed_Streams checks that row offsets decorrelate and equal inputs repeat.
func TestDeriveSeed_Streams(t *testing.T) {
	assert.Equal(t, deriveSeed(7, 3), deriveSeed(7, 3))
	assert.NotEqual(t, deriveSeed(7, 3), deriveSeed(7, 4))
	assert.NotEqual(t, deriveSeed(7, 3), deriveSeed(8, 3))

	a, b := rngFromSeed(deriveSeed(1, 0)), rngFromSeed(deriveSeed(1, 0))
	for i := 0; i < 16; i++ {
		assert.Equal(t, perturbation(a), perturbation(b))
	}
}
