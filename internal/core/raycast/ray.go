// Package raycast implements the grid DDA traversal: a ray walks tile by tile
// from the camera until it enters a solid tile or leaves the map.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/world"
)

// Sentinel replaces the delta distance of an axis the ray never moves along,
// so that axis never wins the next-crossing comparison.
const Sentinel float32 = 1e30

// CastResult describes the first wall a ray hit.
type CastResult struct {
	// Distance is perpendicular to the camera plane, not Euclidean.
	Distance float32
	// WallValue is the non-zero tile value that was hit.
	WallValue uint8
	// HitVertical is true when the last step crossed a vertical grid line (an x step),
	// i.e. the wall face points east or west.
	HitVertical bool
}

// Ray is the traversal state of one column's ray. It is used once and discarded.
type Ray struct {
	// Dir need not be unit length.
	Dir vmath.Vec2

	// DeltaDist is the ray length between consecutive x (resp. y) grid lines.
	DeltaDist vmath.Vec2

	// SideDist is the ray length from the origin to the next x (resp. y) grid line.
	SideDist vmath.Vec2

	StepX, StepY int
	MapX, MapY   int

	steps int
}

// New sets up a ray from pos along dir.
func New(pos, dir vmath.Vec2) Ray {
	deltaX, deltaY := Sentinel, Sentinel
	if dir.X != 0 {
		deltaX = float32(math.Abs(float64(1 / dir.X)))
	}
	if dir.Y != 0 {
		deltaY = float32(math.Abs(float64(1 / dir.Y)))
	}

	mapX := int(math.Floor(float64(pos.X)))
	mapY := int(math.Floor(float64(pos.Y)))

	r := Ray{
		Dir:       dir,
		DeltaDist: vmath.V(deltaX, deltaY),
		MapX:      mapX,
		MapY:      mapY,
	}

	if dir.X < 0 {
		r.StepX = -1
		r.SideDist.X = (pos.X - float32(mapX)) * deltaX
	} else {
		r.StepX = 1
		r.SideDist.X = (float32(mapX) + 1 - pos.X) * deltaX
	}

	if dir.Y < 0 {
		r.StepY = -1
		r.SideDist.Y = (pos.Y - float32(mapY)) * deltaY
	} else {
		r.StepY = 1
		r.SideDist.Y = (float32(mapY) + 1 - pos.Y) * deltaY
	}

	return r
}

// Cast advances the ray until it enters a non-empty tile. ok is false when the
// ray leaves the map first. The starting tile itself is never tested.
func (r *Ray) Cast(m *world.Map) (res CastResult, ok bool) {
	var hitVertical bool

	for {
		// Ties go to the x axis.
		if r.SideDist.X <= r.SideDist.Y {
			r.SideDist.X += r.DeltaDist.X
			r.MapX += r.StepX
			hitVertical = true
		} else {
			r.SideDist.Y += r.DeltaDist.Y
			r.MapY += r.StepY
			hitVertical = false
		}
		r.steps++

		if r.MapX < 0 || r.MapY < 0 {
			return CastResult{}, false
		}

		tile, inside := m.Tile(r.MapX, r.MapY)
		if !inside {
			return CastResult{}, false
		}
		if tile == world.Empty {
			continue
		}

		dist := r.SideDist.Y - r.DeltaDist.Y
		if hitVertical {
			dist = r.SideDist.X - r.DeltaDist.X
		}
		return CastResult{
			Distance:    dist,
			WallValue:   tile,
			HitVertical: hitVertical,
		}, true
	}
}
