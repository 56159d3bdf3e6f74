// Package config holds the host settings: window, camera controls, palette and
// logging. Settings are read from a TOML file layered over the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"chosenoffset.com/raycaster/internal/render/color"
	"chosenoffset.com/raycaster/internal/render/raycaster"
)

// Config holds all host settings
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Camera  CameraConfig  `toml:"camera"`
	Render  RenderConfig  `toml:"render"`
	Palette PaletteConfig `toml:"palette"`
	Log     LogConfig     `toml:"log"`
	Maps    MapsConfig    `toml:"maps"`
}

// WindowConfig defines the framebuffer and the output backend
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`   // Framebuffer width in pixels
	Height  int    `toml:"height"`  // Framebuffer height in pixels
	Scale   int    `toml:"scale"`   // Window pixels per framebuffer pixel
	Backend string `toml:"backend"` // "ebiten", "terminal" or "sdl"
}

// CameraConfig defines the view and movement rates
type CameraConfig struct {
	FOV       float64 `toml:"fov"`        // Horizontal field of view in degrees
	MoveSpeed float64 `toml:"move_speed"` // Tiles per second
	TurnSpeed float64 `toml:"turn_speed"` // Radians per second
	Radius    float64 `toml:"radius"`     // Collision radius in tiles
}

// RenderConfig defines renderer behavior
type RenderConfig struct {
	Workers int `toml:"workers"` // Column strips rendered concurrently (1 = serial)
}

// PaletteConfig holds colors as hex strings ("RRGGBB" or "RRGGBBAA") or palette names
type PaletteConfig struct {
	Ceiling   string  `toml:"ceiling"`
	Floor     string  `toml:"floor"`
	Wall      string  `toml:"wall"`
	WallSide  string  `toml:"wall_side"` // Empty means the wall color darkened by SideShade
	SideShade float64 `toml:"side_shade"`
}

// LogConfig controls periodic performance logging
type LogConfig struct {
	FPSInterval float64 `toml:"fps_interval"` // Seconds between FPS lines, 0 disables
}

// MapsConfig defines where levels live
type MapsConfig struct {
	Dir     string `toml:"dir"`
	Default string `toml:"default"` // Level name inside Dir
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "Raycaster",
			Width:   640,
			Height:  400,
			Scale:   2,
			Backend: "ebiten",
		},
		Camera: CameraConfig{
			FOV:       66.84,
			MoveSpeed: 3.0,
			TurnSpeed: 2.0,
			Radius:    0.2,
		},
		Render: RenderConfig{
			Workers: 1,
		},
		Palette: PaletteConfig{
			Ceiling:   "333333",
			Floor:     "111111",
			Wall:      "CC0000",
			WallSide:  "",
			SideShade: 0.5,
		},
		Log: LogConfig{
			FPSInterval: 5,
		},
		Maps: MapsConfig{
			Dir:     "data/maps",
			Default: "courtyard",
		},
	}
}

// LoadConfig loads settings from a TOML file over the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	_, err := toml.DecodeFile(path, config)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks ranges and color strings
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("invalid window scale: %d", c.Window.Scale)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("fov must be between 0 and 180 degrees, got %g", c.Camera.FOV)
	}
	if c.Camera.Radius < 0 || c.Camera.Radius >= 0.5 {
		return fmt.Errorf("collision radius must be in [0, 0.5), got %g", c.Camera.Radius)
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("render workers must be at least 1, got %d", c.Render.Workers)
	}
	if _, err := c.Palette.Build(); err != nil {
		return err
	}
	return nil
}

// FPSInterval returns the FPS logging interval as a duration
func (c *Config) FPSInterval() time.Duration {
	return time.Duration(c.Log.FPSInterval * float64(time.Second))
}

// Build converts the configured colors into a renderer palette
func (p PaletteConfig) Build() (raycaster.Palette, error) {
	ceiling, err := parseColor("ceiling", p.Ceiling)
	if err != nil {
		return raycaster.Palette{}, err
	}
	floor, err := parseColor("floor", p.Floor)
	if err != nil {
		return raycaster.Palette{}, err
	}
	wall, err := parseColor("wall", p.Wall)
	if err != nil {
		return raycaster.Palette{}, err
	}

	pal := raycaster.NewPalette(ceiling, floor, wall, float32(p.SideShade))
	if p.WallSide != "" {
		side, err := parseColor("wall_side", p.WallSide)
		if err != nil {
			return raycaster.Palette{}, err
		}
		pal.WallSide = side.Packed()
	}
	if pal.WallSide == pal.Wall {
		return raycaster.Palette{}, fmt.Errorf("wall and wall_side colors must differ")
	}
	return pal, nil
}

func parseColor(field, value string) (color.Color, error) {
	if c, ok := color.Named(value); ok {
		return c, nil
	}
	c, err := color.ParseHex(value)
	if err != nil {
		return color.Color{}, fmt.Errorf("palette %s: %w", field, err)
	}
	return c, nil
}
