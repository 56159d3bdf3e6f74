package world

import "testing"

func TestMapIndexing(t *testing.T) {
	// 1 1 1
	// 1 0 1
	m, err := NewMapFromGrid(3, 2, []uint8{
		1, 1, 1,
		1, 0, 1,
	})
	if err != nil {
		t.Fatalf("NewMapFromGrid failed: %v", err)
	}

	if v, ok := m.Tile(1, 1); !ok || v != 0 {
		t.Errorf("Expected empty center (0, true), got (%d, %v)", v, ok)
	}
	if v, ok := m.Tile(2, 0); !ok || v != 1 {
		t.Errorf("Expected top-right wall (1, true), got (%d, %v)", v, ok)
	}
}

func TestMapBounds(t *testing.T) {
	m := NewMap(2, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 1, 2, true},
		{"x at width", 2, 0, false},
		{"y at height", 0, 3, false},
		{"far away", 10, 10, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"large negative", -1 << 30, -1 << 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := m.Tile(tt.x, tt.y); ok != tt.want {
				t.Errorf("Tile(%d, %d) present = %v, want %v", tt.x, tt.y, ok, tt.want)
			}
		})
	}
}

func TestMapSetTile(t *testing.T) {
	m := NewMap(3, 3)
	m.SetTile(1, 2, 7)

	if v, _ := m.Tile(1, 2); v != 7 {
		t.Errorf("Expected 7 at (1, 2), got %d", v)
	}

	// Out of bounds writes are ignored rather than wrapping into another row.
	m.SetTile(3, 0, 9)
	m.SetTile(-1, 1, 9)
	m.SetTile(0, 3, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if v, _ := m.Tile(x, y); v == 9 {
				t.Errorf("Out of bounds write leaked into (%d, %d)", x, y)
			}
		}
	}
}

func TestMapIsSolid(t *testing.T) {
	m := NewMap(2, 1)
	m.SetTile(1, 0, 4)

	if m.IsSolid(0, 0) {
		t.Error("Expected (0, 0) to be passable")
	}
	if !m.IsSolid(1, 0) {
		t.Error("Expected (1, 0) to be solid")
	}
	if !m.IsSolid(2, 0) || !m.IsSolid(-1, 0) {
		t.Error("Expected cells outside the map to be solid")
	}
}

func TestNewMapFromGridValidation(t *testing.T) {
	if _, err := NewMapFromGrid(0, 2, nil); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewMapFromGrid(2, 2, []uint8{0, 0, 0}); err == nil {
		t.Error("Expected error for short grid")
	}
}
