package vmath

import (
	"cmp"
	"math"
)

// Clamp limits val to the closed range [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math.Pi)
}

// WrapAngle maps rad into [0, 2π).
func WrapAngle(rad float32) float32 {
	const twoPi = 2 * math.Pi
	w := float32(math.Mod(math.Mod(float64(rad), twoPi)+twoPi, twoPi))
	if w >= twoPi {
		return 0
	}
	return w
}
