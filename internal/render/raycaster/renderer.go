// Package raycaster turns a camera and a tile map into a first-person frame:
// a flat ceiling, a flat floor, and one vertical wall slice per column.
package raycaster

import (
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/render/color"
	"chosenoffset.com/raycaster/internal/world"
)

// Palette holds the framebuffer words used for each surface.
type Palette struct {
	Ceiling uint32
	Floor   uint32
	// Wall is used for north/south faces, WallSide for east/west faces.
	Wall     uint32
	WallSide uint32
}

// DefaultPalette is dark gray ceiling, near black floor and red walls.
var DefaultPalette = Palette{
	Ceiling:  0xFF333333,
	Floor:    0xFF111111,
	Wall:     0xFFCC0000,
	WallSide: 0xFF880000,
}

// NewPalette builds a palette from colors. The side shade is the wall color at
// the given brightness factor.
func NewPalette(ceiling, floor, wall color.Color, sideFactor float32) Palette {
	return Palette{
		Ceiling:  ceiling.Packed(),
		Floor:    floor.Packed(),
		Wall:     wall.Packed(),
		WallSide: wall.Darkened(sideFactor).Packed(),
	}
}

// Renderer draws frames with a fixed palette.
type Renderer struct {
	Palette Palette
	// Workers > 1 splits the columns into that many strips rendered concurrently.
	// Output is identical to the serial path.
	Workers int
}

// New returns a serial renderer using DefaultPalette.
func New() *Renderer {
	return &Renderer{Palette: DefaultPalette, Workers: 1}
}

// Render draws one frame with DefaultPalette into buf, which must hold
// width*height words.
func Render(p *camera.Player, m *world.Map, buf []uint32, width, height int) {
	r := Renderer{Palette: DefaultPalette}
	r.Render(p, m, buf, width, height)
}

// Render draws one frame into buf. p and m are only read.
func (r *Renderer) Render(p *camera.Player, m *world.Map, buf []uint32, width, height int) {
	if width <= 0 || height <= 0 || len(buf) < width*height {
		panic("raycaster: framebuffer does not match its dimensions")
	}

	half := width * height / 2
	fill(buf[:half], r.Palette.Ceiling)
	fill(buf[half:width*height], r.Palette.Floor)

	if r.Workers <= 1 || width < 2 {
		r.drawColumns(p, m, buf, width, height, 0, width)
		return
	}

	workers := min(r.Workers, width)
	strip := (width + workers - 1) / workers

	// Strips write disjoint columns and cannot fail; Wait only joins them.
	var g errgroup.Group
	for x0 := 0; x0 < width; x0 += strip {
		x1 := min(x0+strip, width)
		g.Go(func() error {
			r.drawColumns(p, m, buf, width, height, x0, x1)
			return nil
		})
	}
	_ = g.Wait()
}

// RenderFrame draws into a Framebuffer.
func (r *Renderer) RenderFrame(p *camera.Player, m *world.Map, fb *Framebuffer) {
	r.Render(p, m, fb.Pix, fb.Width, fb.Height)
}

// drawColumns casts and draws the columns in [x0, x1).
func (r *Renderer) drawColumns(p *camera.Player, m *world.Map, buf []uint32, width, height, x0, x1 int) {
	for x := x0; x < x1; x++ {
		cameraX := 2*float32(x)/float32(width) - 1
		rayDir := p.Dir.Add(p.Plane.Scale(cameraX))

		ray := raycast.New(p.Pos, rayDir)
		res, ok := ray.Cast(m)
		if !ok {
			continue
		}

		startY, endY := wallSpan(res.Distance, height)

		c := r.Palette.Wall
		if res.HitVertical {
			c = r.Palette.WallSide
		}
		for y := startY; y < endY; y++ {
			buf[y*width+x] = c
		}
	}
}

// wallSpan returns the half-open row range [start, end) of a wall slice at
// perpendicular distance d on a screen of the given height.
func wallSpan(d float32, height int) (start, end int) {
	// Anything taller than twice the screen is clipped the same way. Both checks
	// run before the int conversion so NaN and infinities never reach it.
	maxLine := float32(2 * height)
	lh := float32(height) / d
	if lh < 0 {
		lh = 0
	}
	if !(lh <= maxLine) {
		lh = maxLine
	}
	lineHeight := int(lh)

	half := height / 2
	start = vmath.Clamp(half-lineHeight/2, 0, height-1)
	end = vmath.Clamp(half+lineHeight/2, 0, height-1)
	return start, end
}

func fill(buf []uint32, v uint32) {
	for i := range buf {
		buf[i] = v
	}
}
