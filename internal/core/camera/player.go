// Package camera models the first-person viewpoint: a position, a unit forward
// direction and a camera plane perpendicular to it whose length sets the field of view.
package camera

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/vmath"
)

// DefaultPlaneLength gives a horizontal FOV of 2*atan(0.66), about 66 degrees.
const DefaultPlaneLength = 0.66

// Player is the camera.
type Player struct {
	Pos   vmath.Vec2
	Dir   vmath.Vec2
	Plane vmath.Vec2
}

// New places a player at (x, y) facing north (0, -1).
func New(x, y float32) *Player {
	return &Player{
		Pos:   vmath.V(x, y),
		Dir:   vmath.V(0, -1),
		Plane: vmath.V(DefaultPlaneLength, 0),
	}
}

// Rotate turns the view by angle radians, clockwise on a y-down map.
// Dir and Plane are rotated together so they stay perpendicular.
func (p *Player) Rotate(angle float32) {
	p.Dir.RotateInPlace(angle)
	p.Plane.RotateInPlace(angle)
}

// SetFOV rescales the camera plane to give the requested horizontal field of
// view in degrees. Values outside (0, 180) are ignored.
func (p *Player) SetFOV(degrees float32) {
	if degrees <= 0 || degrees >= 180 {
		return
	}
	length := p.Dir.Length() * float32(math.Tan(float64(vmath.DegToRad(degrees))/2))
	p.Plane = p.Plane.Normalize().Scale(length)
}

// FOV returns the horizontal field of view in degrees.
func (p *Player) FOV() float32 {
	d := p.Dir.Length()
	if d == 0 {
		return 0
	}
	return vmath.RadToDeg(2 * float32(math.Atan(float64(p.Plane.Length()/d))))
}
