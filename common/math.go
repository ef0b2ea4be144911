package common

import "math/rand"

const (
	// TileSize is the edge of one map cell in world units (pixels at zoom 1).
	TileSize = 32.0

	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RandRange draws uniformly from [lo, hi). A collapsed range returns lo.
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
