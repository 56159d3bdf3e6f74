// Package color is the 8-bit RGBA color type used by the renderer.
//
// Framebuffer words are packed as 0xAARRGGBB. On a little-endian host that is
// the byte sequence B, G, R, A in memory.
package color

import (
	"fmt"
	imagecolor "image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

// New creates a color from its channels.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromHex creates an opaque color from 0xRRGGBB.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// FromHexAlpha creates a color from 0xRRGGBBAA.
func FromHexAlpha(hex uint32) Color {
	return Color{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}

// ParseHex parses "RRGGBB" or "RRGGBBAA", with an optional leading '#' or "0x".
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(digits) {
	case 6:
		return FromHex(uint32(v)), nil
	case 8:
		return FromHexAlpha(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
}

// Unpack decodes a 0xAARRGGBB framebuffer word.
func Unpack(word uint32) Color {
	return Color{
		A: uint8(word >> 24),
		R: uint8(word >> 16),
		G: uint8(word >> 8),
		B: uint8(word),
	}
}

// Packed returns the color as a 0xAARRGGBB framebuffer word.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToArray returns the channels in R, G, B, A order.
func (c Color) ToArray() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// RGBA converts to the standard library color type.
func (c Color) RGBA() imagecolor.RGBA {
	return imagecolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Darkened scales the RGB channels by factor, rounding half away from zero.
// Alpha is kept.
func (c Color) Darkened(factor float32) Color {
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: c.A,
	}
}

func scaleChannel(v uint8, factor float32) uint8 {
	s := math.Round(float64(v) * float64(factor))
	if s <= 0 || math.IsNaN(s) {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
