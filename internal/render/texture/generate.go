package texture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"chosenoffset.com/raycaster/internal/render/color"
)

// Size is the edge length of generated textures.
const Size = 32

// Pattern selects the overlay drawn by Patterned.
type Pattern string

const (
	PatternGrid     Pattern = "grid"
	PatternDots     Pattern = "dots"
	PatternCross    Pattern = "cross"
	PatternDiagonal Pattern = "diagonal"
	PatternBrick    Pattern = "brick"
)

// Patterns lists every pattern Patterned understands.
var Patterns = []Pattern{PatternGrid, PatternDots, PatternCross, PatternDiagonal, PatternBrick}

// Solid creates a Size x Size texture of one color.
func Solid(c color.Color) *Texture {
	t := &Texture{Width: Size, Height: Size, Pixels: make([]byte, Size*Size*4)}
	px := c.ToArray()
	for i := 0; i < len(t.Pixels); i += 4 {
		copy(t.Pixels[i:i+4], px[:])
	}
	return t
}

// Bordered creates a solid texture framed by a border of the given width.
func Bordered(fill, border color.Color, width int) *Texture {
	t := Solid(fill)
	for i := 0; i < width; i++ {
		for x := 0; x < Size; x++ {
			t.set(x, i, border)
			t.set(x, Size-1-i, border)
		}
		for y := 0; y < Size; y++ {
			t.set(i, y, border)
			t.set(Size-1-i, y, border)
		}
	}
	return t
}

// Patterned creates a solid texture with a pattern drawn over it.
func Patterned(base, line color.Color, pattern Pattern) (*Texture, error) {
	t := Solid(base)

	switch pattern {
	case PatternGrid:
		for i := 0; i < Size; i += 4 {
			for x := 0; x < Size; x++ {
				t.set(x, i, line)
				t.set(i, x, line)
			}
		}
	case PatternDots:
		quarter, threeQuarter := Size/4, 3*Size/4
		for _, p := range []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}} {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					t.set(p.X+dx, p.Y+dy, line)
				}
			}
		}
	case PatternCross:
		mid := Size / 2
		for i := 2; i < Size-2; i++ {
			t.set(mid, i, line)
			t.set(i, mid, line)
		}
	case PatternDiagonal:
		for i := 0; i < Size; i++ {
			t.set(i, i, line)
			t.set(i, Size-1-i, line)
		}
	case PatternBrick:
		// Courses of 8 rows; alternate courses shift the joints by half a brick.
		for y := 0; y < Size; y++ {
			course := y / 8
			if y%8 == 0 {
				for x := 0; x < Size; x++ {
					t.set(x, y, line)
				}
				continue
			}
			offset := 0
			if course%2 == 1 {
				offset = 8
			}
			for x := offset; x < Size; x += 16 {
				t.set(x, y, line)
			}
		}
	default:
		return nil, fmt.Errorf("unknown texture pattern %q", pattern)
	}

	return t, nil
}

func (t *Texture) set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	px := c.ToArray()
	i := (y*t.Width + x) * 4
	copy(t.Pixels[i:i+4], px[:])
}

// Image returns the texture as an image sharing its pixels.
func (t *Texture) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    t.Pixels,
		Stride: t.Width * 4,
		Rect:   image.Rect(0, 0, t.Width, t.Height),
	}
}

// SavePNG writes the texture to a PNG file.
func (t *Texture) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create texture %s: %w", path, err)
	}
	if err := png.Encode(f, t.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode texture %s: %w", path, err)
	}
	return f.Close()
}
