package common

import "math"

const (
	PiDiv180   = math.Pi / 180
	OneHalf    = 1.0 / 2.0  // 0.5
	OneFifth   = 1.0 / 5.0  // 0.2
	Deg90      = 90.0       // quarter turn in degrees
	Deg360     = 360.0      // full turn in degrees
	ArcStepDeg = 2.0        // flattening step for arcs and circles
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * PiDiv180
}

// NormalizeDeg folds an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, Deg360)
	if deg < 0 {
		deg += Deg360
	}
	return deg
}
