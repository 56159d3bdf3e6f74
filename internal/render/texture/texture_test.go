package texture

import (
	"image"
	imagecolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func checker() []byte {
	return []byte{
		255, 0, 0, 255, // (0,0) red
		0, 255, 0, 255, // (1,0) green
		0, 0, 255, 255, // (0,1) blue
		255, 255, 255, 255, // (1,1) white
	}
}

func TestPixel(t *testing.T) {
	tex, err := New(2, 2, checker())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		x, y int
		want [4]uint8
	}{
		{0, 0, [4]uint8{255, 0, 0, 255}},
		{1, 0, [4]uint8{0, 255, 0, 255}},
		{0, 1, [4]uint8{0, 0, 255, 255}},
		{1, 1, [4]uint8{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got, ok := tex.Pixel(tt.x, tt.y)
		if !ok || got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, %v; want %v", tt.x, tt.y, got, ok, tt.want)
		}
	}

	for _, pt := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		if _, ok := tex.Pixel(pt[0], pt[1]); ok {
			t.Errorf("Expected Pixel(%d, %d) to be out of bounds", pt[0], pt[1])
		}
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(2, 2, make([]byte, 15)); err == nil {
		t.Error("Expected error for short pixel data")
	}
	if _, err := New(0, 1, nil); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestLoadFormats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, imagecolor.NRGBA{A: 255})
	src.Set(1, 1, imagecolor.NRGBA{R: 255, G: 255, B: 255, A: 255})
	src.Set(1, 0, imagecolor.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(0, 1, imagecolor.NRGBA{R: 200, G: 100, B: 50, A: 255})

	dir := t.TempDir()
	encoders := map[string]func(f *os.File) error{
		"wall.png": func(f *os.File) error { return png.Encode(f, src) },
		"wall.bmp": func(f *os.File) error { return bmp.Encode(f, src) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := encode(f); err != nil {
				t.Fatalf("encode: %v", err)
			}
			f.Close()

			tex, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if tex.Width != 2 || tex.Height != 2 {
				t.Fatalf("Expected 2x2, got %dx%d", tex.Width, tex.Height)
			}
			if px, _ := tex.Pixel(1, 0); px != [4]uint8{10, 20, 30, 255} {
				t.Errorf("Pixel(1, 0) = %v", px)
			}
			if px, _ := tex.Pixel(0, 1); px != [4]uint8{200, 100, 50, 255} {
				t.Errorf("Pixel(0, 1) = %v", px)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
