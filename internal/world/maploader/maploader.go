package maploader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/world"
)

// SpawnPoint defines the player start position in tile units
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelData is the on-disk level format
type LevelData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Facing      float64    `json:"facing"` // Degrees clockwise from north
	Tiles       [][]int    `json:"tiles"`  // 2D array of tile values [y][x]
}

// Level is a loaded level ready for rendering
type Level struct {
	Data *LevelData
	Map  *world.Map
}

// LoadLevel loads a level from a JSON file
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes and validates level JSON
func ParseLevel(data []byte) (*Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if err := validateLevelData(&levelData); err != nil {
		return nil, err
	}

	grid := make([]uint8, 0, levelData.Width*levelData.Height)
	for _, row := range levelData.Tiles {
		for _, v := range row {
			grid = append(grid, uint8(v))
		}
	}

	m, err := world.NewMapFromGrid(levelData.Width, levelData.Height, grid)
	if err != nil {
		return nil, err
	}

	level := &Level{Data: &levelData, Map: m}
	if !level.spawnIsOpen() {
		return nil, fmt.Errorf("player spawn (%.2f, %.2f) is not on an empty tile",
			levelData.PlayerSpawn.X, levelData.PlayerSpawn.Y)
	}
	return level, nil
}

// validateLevelData checks dimensions and tile values
func validateLevelData(data *LevelData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
		for x, v := range row {
			if v < 0 || v > math.MaxUint8 {
				return fmt.Errorf("tile value %d at (%d, %d) out of range 0-255", v, x, y)
			}
		}
	}

	return nil
}

func (l *Level) spawnIsOpen() bool {
	x := int(math.Floor(l.Data.PlayerSpawn.X))
	y := int(math.Floor(l.Data.PlayerSpawn.Y))
	return !l.Map.IsSolid(x, y)
}

// NewPlayer creates a camera at the spawn point, turned to the level's facing
func (l *Level) NewPlayer() *camera.Player {
	p := camera.New(float32(l.Data.PlayerSpawn.X), float32(l.Data.PlayerSpawn.Y))
	if l.Data.Facing != 0 {
		p.Rotate(vmath.DegToRad(float32(l.Data.Facing)))
	}
	return p
}
