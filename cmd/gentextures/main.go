package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/raycaster/internal/render/color"
	"chosenoffset.com/raycaster/internal/render/texture"
)

func main() {
	out := flag.String("out", "data/textures", "directory to write the PNG files to")
	flag.Parse()

	fmt.Println("Raycaster Texture Generator")
	fmt.Println("===========================")
	fmt.Println()

	if err := generate(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done!")
}

// generate writes one texture per wall color and pattern, plus a bordered
// variant of each wall color.
func generate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	walls := []struct {
		name string
		c    color.Color
	}{
		{"red", color.WallRed},
		{"green", color.WallGreen},
		{"blue", color.WallBlue},
		{"stone", color.WallStone},
	}

	for _, w := range walls {
		line := w.c.Darkened(0.6)
		for _, p := range texture.Patterns {
			tex, err := texture.Patterned(w.c, line, p)
			if err != nil {
				return err
			}
			if err := save(tex, dir, fmt.Sprintf("%s_%s.png", w.name, p)); err != nil {
				return err
			}
		}
		if err := save(texture.Bordered(w.c, line, 2), dir, w.name+"_bordered.png"); err != nil {
			return err
		}
	}
	return nil
}

func save(tex *texture.Texture, dir, name string) error {
	path := filepath.Join(dir, name)
	if err := tex.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", path)
	return nil
}
