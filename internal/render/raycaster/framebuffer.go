package raycaster

import (
	"encoding/binary"
	"image"
)

// Framebuffer is a row-major, top-row-first grid of 0xAARRGGBB words.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer allocates a width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// At returns the word at (x, y).
func (f *Framebuffer) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// CopyRGBA writes the framebuffer into dst as R, G, B, A bytes, the layout
// image.RGBA and most GPU upload paths expect. dst must hold 4*Width*Height bytes.
func (f *Framebuffer) CopyRGBA(dst []byte) {
	for i, word := range f.Pix {
		o := i * 4
		dst[o] = byte(word >> 16)
		dst[o+1] = byte(word >> 8)
		dst[o+2] = byte(word)
		dst[o+3] = byte(word >> 24)
	}
}

// CopyARGB writes the framebuffer into rows of pitch bytes as little-endian
// words, matching ARGB8888 surfaces.
func (f *Framebuffer) CopyARGB(dst []byte, pitch int) {
	for y := 0; y < f.Height; y++ {
		row := dst[y*pitch:]
		src := f.Pix[y*f.Width : (y+1)*f.Width]
		for x, word := range src {
			binary.LittleEndian.PutUint32(row[x*4:], word)
		}
	}
}

// RGBA returns a copy of the framebuffer as an image.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	f.CopyRGBA(img.Pix)
	return img
}
