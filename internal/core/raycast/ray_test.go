package raycast

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/world"
)

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func TestRayInitializationEast(t *testing.T) {
	ray := New(vmath.V(0.5, 0.5), vmath.V(1, 0))

	if ray.MapX != 0 || ray.MapY != 0 {
		t.Errorf("Expected map (0, 0), got (%d, %d)", ray.MapX, ray.MapY)
	}
	if ray.StepX != 1 {
		t.Errorf("Expected step_x 1, got %d", ray.StepX)
	}
	// Half a tile to the x=1 grid line at one unit of ray per unit of x.
	if abs32(ray.SideDist.X-0.5) > 1e-6 {
		t.Errorf("Expected side_dist.x 0.5, got %f", ray.SideDist.X)
	}
	if ray.DeltaDist.Y < 1e30 {
		t.Errorf("Expected sentinel delta_dist.y, got %g", ray.DeltaDist.Y)
	}
}

func TestRayInitializationWest(t *testing.T) {
	ray := New(vmath.V(0.2, 0.5), vmath.V(-1, 0))

	if ray.StepX != -1 {
		t.Errorf("Expected step_x -1, got %d", ray.StepX)
	}
	if abs32(ray.SideDist.X-0.2) > 1e-6 {
		t.Errorf("Expected side_dist.x 0.2, got %f", ray.SideDist.X)
	}
}

func TestRayInitializationNegativePosition(t *testing.T) {
	ray := New(vmath.V(-0.5, 1.5), vmath.V(1, 0))

	if ray.MapX != -1 {
		t.Errorf("Expected floor(-0.5) = -1, got %d", ray.MapX)
	}
	if abs32(ray.SideDist.X-0.5) > 1e-6 {
		t.Errorf("Expected side_dist.x 0.5, got %f", ray.SideDist.X)
	}
}

func TestRayDiagonal(t *testing.T) {
	ray := New(vmath.V(0.5, 0.5), vmath.V(1, 1))

	if ray.StepX != 1 || ray.StepY != 1 {
		t.Errorf("Expected steps (1, 1), got (%d, %d)", ray.StepX, ray.StepY)
	}
	if abs32(ray.SideDist.X-0.5) > 1e-6 || abs32(ray.SideDist.Y-0.5) > 1e-6 {
		t.Errorf("Expected side_dist (0.5, 0.5), got %v", ray.SideDist)
	}

	// Equal side distances break toward x, so (1, 0) is entered first.
	m := world.NewMap(3, 3)
	m.SetTile(1, 0, 2)
	m.SetTile(0, 1, 3)
	m.SetTile(1, 1, 4)

	res, ok := ray.Cast(m)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if res.WallValue != 2 {
		t.Errorf("Expected tile (1, 0) with value 2, got %d", res.WallValue)
	}
	if !res.HitVertical {
		t.Error("Expected an x step to report HitVertical")
	}
	if abs32(res.Distance-0.5) > 1e-6 {
		t.Errorf("Expected distance 0.5, got %f", res.Distance)
	}
}

func TestCastEastToWall(t *testing.T) {
	m, err := world.NewMapFromGrid(3, 1, []uint8{0, 0, 9})
	if err != nil {
		t.Fatalf("NewMapFromGrid failed: %v", err)
	}

	ray := New(vmath.V(0.5, 0.5), vmath.V(1, 0))
	res, ok := ray.Cast(m)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if res.Distance != 1.5 {
		t.Errorf("Expected distance 1.5, got %f", res.Distance)
	}
	if res.WallValue != 9 {
		t.Errorf("Expected wall value 9, got %d", res.WallValue)
	}
	if !res.HitVertical {
		t.Error("Expected HitVertical for an eastward hit")
	}
}

func TestCastHorizontalHit(t *testing.T) {
	m := world.NewMap(1, 4)
	m.SetTile(0, 0, 5)

	ray := New(vmath.V(0.5, 3.5), vmath.V(0, -1))
	res, ok := ray.Cast(m)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if res.HitVertical {
		t.Error("A y step must not report HitVertical")
	}
	if abs32(res.Distance-2.5) > 1e-6 {
		t.Errorf("Expected distance 2.5, got %f", res.Distance)
	}
}

func TestCastLeavesMap(t *testing.T) {
	m := world.NewMap(2, 2)

	tests := []struct {
		name string
		pos  vmath.Vec2
		dir  vmath.Vec2
	}{
		{"east", vmath.V(0.5, 0.5), vmath.V(1, 0)},
		{"west", vmath.V(0.5, 0.5), vmath.V(-1, 0)},
		{"north", vmath.V(1.5, 0.5), vmath.V(0, -1)},
		{"south", vmath.V(1.5, 1.5), vmath.V(0, 1)},
		{"diagonal", vmath.V(0.2, 0.7), vmath.V(0.3, 1)},
		{"zero direction", vmath.V(1.5, 1.5), vmath.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := New(tt.pos, tt.dir)
			if res, ok := ray.Cast(m); ok {
				t.Errorf("Expected no hit in an empty map, got %+v", res)
			}
		})
	}
}

func TestCastCenterRayEmptyMapFacingEast(t *testing.T) {
	m := world.NewMap(2, 2)
	p := camera.New(0.5, 0.5)
	p.Rotate(math.Pi / 2)

	ray := New(p.Pos, p.Dir)
	if _, ok := ray.Cast(m); ok {
		t.Error("Expected the center ray to leave the empty map")
	}
}

func TestCastFromInsideWall(t *testing.T) {
	m := world.NewMap(3, 1)
	m.SetTile(0, 0, 1)
	m.SetTile(1, 0, 1)

	// The starting tile is skipped; the first tested tile is adjacent.
	ray := New(vmath.V(0.999, 0.5), vmath.V(1, 0))
	res, ok := ray.Cast(m)
	if !ok {
		t.Fatal("Expected a hit on the neighbouring wall")
	}
	if res.Distance < 0 || res.Distance > 0.01 {
		t.Errorf("Expected a tiny distance, got %f", res.Distance)
	}
}

func TestCastTermination(t *testing.T) {
	const w, h = 9, 7
	m := world.NewMap(w, h)
	m.SetTile(4, 3, 1)
	m.SetTile(6, 1, 2)
	m.SetTile(2, 5, 3)

	bound := float32(max(w, h))*math.Sqrt2 + 1e-3
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		pos := vmath.V(rng.Float32()*w, rng.Float32()*h)
		angle := rng.Float64() * 2 * math.Pi
		dir := vmath.V(float32(math.Cos(angle)), float32(math.Sin(angle)))

		ray := New(pos, dir)
		res, ok := ray.Cast(m)
		if ray.steps > w+h+2 {
			t.Fatalf("Cast from %v along %v took %d steps", pos, dir, ray.steps)
		}
		if ok && (res.Distance < 0 || res.Distance > bound) {
			t.Fatalf("Cast from %v along %v returned distance %f", pos, dir, res.Distance)
		}
	}
}

func TestPerpendicularDistanceMonotonic(t *testing.T) {
	m := world.NewMap(6, 3)
	for y := 0; y < 3; y++ {
		m.SetTile(5, y, 1)
	}

	p := camera.New(2.5, 1.5)
	p.Rotate(math.Pi / 2)

	base := New(p.Pos, p.Dir)
	baseRes, ok := base.Cast(m)
	if !ok {
		t.Fatal("Expected the center ray to hit the east wall")
	}

	for _, delta := range []float32{0.1, 0.2, 0.3, 0.45} {
		back := p.Pos.Sub(p.Dir.Scale(delta))
		ray := New(back, p.Dir)
		res, ok := ray.Cast(m)
		if !ok {
			t.Fatalf("Expected a hit after moving back %f", delta)
		}
		if got := res.Distance - baseRes.Distance; abs32(got-delta) > 1e-4 {
			t.Errorf("Moving back %f changed distance by %f", delta, got)
		}
	}
}

func TestPerpendicularDistanceIsNotEuclidean(t *testing.T) {
	m := world.NewMap(6, 6)
	for y := 0; y < 6; y++ {
		m.SetTile(5, y, 1)
	}

	// Off-axis ray: dir (1, 0) plus half the plane (0, 0.66).
	ray := New(vmath.V(1.5, 2.5), vmath.V(1, 0.33))
	res, ok := ray.Cast(m)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if abs32(res.Distance-3.5) > 1e-5 {
		t.Errorf("Expected perpendicular distance 3.5, got %f", res.Distance)
	}
}
