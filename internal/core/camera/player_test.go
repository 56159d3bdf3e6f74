package camera

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/vmath"
)

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func TestNewPlayerDefaults(t *testing.T) {
	p := New(2.5, 3.5)

	if p.Pos != vmath.V(2.5, 3.5) {
		t.Errorf("Expected pos (2.5, 3.5), got %v", p.Pos)
	}
	if p.Dir != vmath.V(0, -1) {
		t.Errorf("Expected dir (0, -1), got %v", p.Dir)
	}
	if p.Plane != vmath.V(0.66, 0) {
		t.Errorf("Expected plane (0.66, 0), got %v", p.Plane)
	}
	if fov := p.FOV(); abs32(fov-66.86) > 0.1 {
		t.Errorf("Expected default FOV near 66 degrees, got %f", fov)
	}
}

func TestPlayerRotationIntegrity(t *testing.T) {
	p := New(0, 0)
	p.Rotate(vmath.DegToRad(45))

	if dot := p.Dir.Dot(p.Plane); abs32(dot) > 1e-6 {
		t.Errorf("Expected dir and plane to stay perpendicular, dot = %g", dot)
	}
}

func TestPlayerRotateFacesEast(t *testing.T) {
	p := New(0.5, 0.5)
	p.Rotate(math.Pi / 2)

	if abs32(p.Dir.X-1) > 1e-6 || abs32(p.Dir.Y) > 1e-6 {
		t.Errorf("Expected dir (1, 0), got %v", p.Dir)
	}
	if abs32(p.Plane.X) > 1e-6 || abs32(p.Plane.Y-0.66) > 1e-6 {
		t.Errorf("Expected plane (0, 0.66), got %v", p.Plane)
	}
}

func TestPlayerRotationSequencePreservesFrame(t *testing.T) {
	p := New(1, 1)
	angles := []float32{0.1, -0.37, 1.2, 3.0, -2.2, 0.05, 0.05, 0.05, 0.7, -1.9}

	for i := 0; i < 5; i++ {
		for _, a := range angles {
			p.Rotate(a)
		}
	}

	if dot := p.Dir.Dot(p.Plane); abs32(dot) >= 1e-5 {
		t.Errorf("dir . plane drifted to %g", dot)
	}
	if l := p.Dir.Length(); abs32(l-1) >= 1e-5 {
		t.Errorf("|dir| drifted to %f", l)
	}
	if l := p.Plane.Length(); abs32(l-0.66) >= 1e-5 {
		t.Errorf("|plane| drifted to %f", l)
	}
}

func TestPlayerSetFOV(t *testing.T) {
	p := New(0, 0)
	p.Rotate(0.4)
	p.SetFOV(90)

	if l := p.Plane.Length(); abs32(l-1) > 1e-5 {
		t.Errorf("Expected plane length 1 for 90 degrees, got %f", l)
	}
	if fov := p.FOV(); abs32(fov-90) > 1e-3 {
		t.Errorf("Expected FOV 90, got %f", fov)
	}
	if dot := p.Dir.Dot(p.Plane); abs32(dot) > 1e-6 {
		t.Errorf("SetFOV broke perpendicularity, dot = %g", dot)
	}

	before := p.Plane
	p.SetFOV(0)
	p.SetFOV(200)
	if p.Plane != before {
		t.Errorf("Out of range FOV should be ignored, plane changed to %v", p.Plane)
	}
}
