package common

import "math"

const (
	TileSize     = 64
	WindowWidth  = 1280
	WindowHeight = 720

	// AnimationSpeed is the default frame advance rate in frames per second.
	AnimationSpeed = 8.0
)

// Z layers, drawn back to front.
const (
	LayerClouds = 1
	LayerOcean  = 2
	LayerBG     = 3
	LayerWater  = 4
	LayerMain   = 5
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Round rounds half to even (banker's rounding).
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
