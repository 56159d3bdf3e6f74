// Package vmath provides the small amount of 2D vector algebra the raycaster needs.
// World space is x-right, y-down, one tile per unit.
package vmath

import "math"

// normalizeEpsilon is the length below which a vector is treated as zero.
const normalizeEpsilon = 1e-6

// Vec2 is a 2D vector with value semantics.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns v scaled to unit length, or the zero vector when v is
// shorter than 1e-6.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < normalizeEpsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Rotate returns v rotated by angle radians. With y pointing down a positive
// angle turns clockwise on screen.
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	x, y := float64(v.X), float64(v.Y)
	return Vec2{
		X: float32(x*cos - y*sin),
		Y: float32(x*sin + y*cos),
	}
}

// RotateInPlace rotates v by angle radians.
func (v *Vec2) RotateInPlace(angle float32) {
	*v = v.Rotate(angle)
}
