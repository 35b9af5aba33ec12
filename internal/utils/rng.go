package utils

import (
	"math/rand"
	"time"
)

// RandomSource supplies the randomness used for shuffles and sampling.
// It is always passed in explicitly, never a hidden global, so tests can
// seed deterministic sequences.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// NewTimeSource returns a source seeded from the wall clock.
func NewTimeSource() RandomSource {
	return NewSeededSource(time.Now().UnixNano())
}
