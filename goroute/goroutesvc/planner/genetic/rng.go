package genetic

import "math/rand"

// deriveSeed mixes the base seed with a stream index through the SplitMix64
// finalizer so every chromosome slot gets its own reproducible stream,
// independent of how slots are scheduled across workers.
func deriveSeed(seed int64, stream uint64) int64 {
	z := uint64(seed) + 0x9e3779b97f4a7c15*(stream+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

func deriveRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
