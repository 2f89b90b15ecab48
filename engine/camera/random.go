package camera

import "math/rand/v2"

// RandomSource yields uniform samples in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float32() float32
}

// globalSource draws from the math/rand/v2 top-level generator, which is seeded randomly
// at startup and safe for concurrent use.
type globalSource struct{}

func (globalSource) Float32() float32 {
	return rand.Float32()
}

// NewSeededSource returns a deterministic RandomSource for replays and tests.
// The returned source is not safe for concurrent use.
//
// Parameters:
//   - seed1, seed2: PCG seed words
//
// Returns:
//   - RandomSource: the seeded source
func NewSeededSource(seed1, seed2 uint64) RandomSource {
	return rand.New(rand.NewPCG(seed1, seed2))
}
