// Package world holds the tile grid the raycaster walks.
package world

import "fmt"

// Empty is the tile value for passable cells. Any other value is a wall.
const Empty uint8 = 0

// Map is a rectangular row-major tile grid. Row y starts at offset y*width.
type Map struct {
	width  int
	height int
	grid   []uint8
}

// NewMap creates a width x height map with every tile empty.
func NewMap(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		grid:   make([]uint8, width*height),
	}
}

// NewMapFromGrid wraps an existing row-major grid. The grid is used as is, not copied.
func NewMapFromGrid(width, height int, grid []uint8) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", width, height)
	}
	if len(grid) != width*height {
		return nil, fmt.Errorf("grid length mismatch: expected %d, got %d", width*height, len(grid))
	}
	return &Map{width: width, height: height, grid: grid}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) addresses a tile of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Tile returns the tile value at (x, y). ok is false outside the map.
func (m *Map) Tile(x, y int) (v uint8, ok bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.grid[y*m.width+x], true
}

// SetTile writes v at (x, y). Writes outside the map are ignored.
func (m *Map) SetTile(x, y int, v uint8) {
	if !m.InBounds(x, y) {
		return
	}
	m.grid[y*m.width+x] = v
}

// IsSolid reports whether (x, y) blocks movement. Cells outside the map are solid.
func (m *Map) IsSolid(x, y int) bool {
	v, ok := m.Tile(x, y)
	return !ok || v != Empty
}
