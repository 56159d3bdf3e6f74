package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/world/maploader"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

func main() {
	configPath := flag.String("config", "raycaster.toml", "path to the TOML settings file")
	mapName := flag.String("map", "", "level name in the maps directory, or a path to a level file")
	backend := flag.String("backend", "", "output backend (overrides the config file)")
	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	scale := flag.Int("scale", 1, "snapshot scale factor")
	list := flag.Bool("list", false, "list the levels in the maps directory and exit")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *backend != "" {
		cfg.Window.Backend = *backend
	}

	if *list {
		listMaps(cfg.Maps.Dir)
		return
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else if cfg.Window.Backend == "terminal" && *snapshot == "" {
		// The terminal backend owns the screen.
		log.SetOutput(io.Discard)
	}

	levelPath, err := resolveLevel(cfg.Maps, *mapName)
	if err != nil {
		log.Fatalf("Failed to find level: %v", err)
	}
	level, err := maploader.LoadLevel(levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level %q (%dx%d)", level.Data.Name, level.Data.Width, level.Data.Height)

	if *snapshot != "" {
		g, err := game.New(cfg, level, nil)
		if err != nil {
			log.Fatalf("Failed to create game: %v", err)
		}
		if err := g.SaveSnapshot(*snapshot, *scale); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote %s", *snapshot)
		return
	}

	newEngine, ok := backends[cfg.Window.Backend]
	if !ok {
		log.Fatalf("Unknown backend %q (available: %s)", cfg.Window.Backend, strings.Join(backendNames(), ", "))
	}
	engine := newEngine()

	g, err := game.New(cfg, level, engine.InputManager())
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	engine.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting raycaster on %s backend...", cfg.Window.Backend)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// resolveLevel returns the level file for name: a path if it names a file,
// otherwise a level in the maps directory. An empty name uses the default level.
func resolveLevel(maps config.MapsConfig, name string) (string, error) {
	if name == "" {
		name = maps.Default
	}
	if strings.EqualFold(filepath.Ext(name), ".json") || strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}

	entries, err := mapscanner.ScanMapDirectory(maps.Dir)
	if err != nil {
		return "", err
	}
	entry, ok := mapscanner.Find(entries, name)
	if !ok {
		return "", fmt.Errorf("no level named %q in %s", name, maps.Dir)
	}
	return entry.Path, nil
}

func listMaps(dir string) {
	entries, err := mapscanner.ScanMapDirectory(dir)
	if err != nil {
		log.Fatalf("Failed to scan maps directory: %v", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No levels found in %s\n", dir)
		return
	}
	for _, e := range entries {
		fmt.Printf("%-20s %s\n", e.Name, e.Path)
	}
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
