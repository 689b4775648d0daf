// SPDX-License-Identifier: MIT

// Package selection - deterministic RNG streams for TieRandom.
//
// math/rand.Rand is not goroutine-safe, so every concurrently ranked row owns
// its stream, derived from (seed, row). The same seed therefore yields the
// same mask whatever the worker count.

package selection

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed 0 maps to defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the RNG owned by stream (a row index) under seed.
func streamRNG(seed int64, stream int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rngFromSeed(deriveSeed(seed, uint64(stream)))
}
