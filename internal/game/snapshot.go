package game

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Snapshot renders the current view into a new image.
func (g *Game) Snapshot() *image.RGBA {
	g.Renderer.RenderFrame(g.Player, g.Map, g.Frame)
	return g.Frame.RGBA()
}

// WriteSnapshot renders the current view and writes it as PNG, enlarged by
// scale with nearest-neighbour sampling.
func (g *Game) WriteSnapshot(w io.Writer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid snapshot scale %d", scale)
	}

	img := g.Snapshot()
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SaveSnapshot writes a snapshot PNG to path.
func (g *Game) SaveSnapshot(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	if err := g.WriteSnapshot(f, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
