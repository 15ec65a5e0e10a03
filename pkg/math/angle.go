package math

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle maps an angle in radians into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod can return exactly 2π after the negative correction for tiny inputs.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDelta returns the signed shortest difference b - a in (-π, π].
func AngleDelta(a, b float64) float64 {
	d := WrapAngle(b - a)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}
