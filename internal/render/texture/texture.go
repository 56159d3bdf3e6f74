// Package texture holds RGBA8 textures and point sampling.
//
// Walls are flat shaded; textures are generated, loaded and sampled but the column
// renderer does not consume them.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Texture is a row-major grid of R, G, B, A bytes.
type Texture struct {
	Width  int
	Height int
	Pixels []byte
}

// New wraps raw RGBA bytes. len(pixels) must be 4*width*height.
func New(width, height int, pixels []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture dimensions: %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data length mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	return &Texture{Width: width, Height: height, Pixels: pixels}, nil
}

// FromImage converts any image into a texture.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{Width: b.Dx(), Height: b.Dy(), Pixels: rgba.Pix}
}

// Load decodes a PNG or BMP file into a texture.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return FromImage(img), nil
}

// Pixel returns the RGBA bytes at (x, y). ok is false outside the texture.
func (t *Texture) Pixel(x, y int) (px [4]uint8, ok bool) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return px, false
	}
	i := (y*t.Width + x) * 4
	copy(px[:], t.Pixels[i:i+4])
	return px, true
}
