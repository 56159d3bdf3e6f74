// Package game wires the camera, the map and the renderer to a render backend.
package game

import (
	"fmt"
	"math"
	"time"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/camera"
	"chosenoffset.com/raycaster/internal/core/vmath"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raycaster"
	"chosenoffset.com/raycaster/internal/world"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// maxStep caps the simulated time per update so a stalled frame cannot
// carry the player through a wall.
const maxStep = 0.1

// Game holds all game state and logic.
type Game struct {
	Player   *camera.Player
	Map      *world.Map
	Renderer *raycaster.Renderer
	Frame    *raycaster.Framebuffer
	InputMgr render.InputManager

	moveSpeed float32 // tiles per second
	turnSpeed float32 // radians per second
	radius    float32

	fps  *FPSMeter
	now  func() time.Time
	last time.Time
}

// New creates a game for the level using the configured palette, camera and
// framebuffer size. input may be nil for headless rendering.
func New(cfg *config.Config, level *maploader.Level, input render.InputManager) (*Game, error) {
	palette, err := cfg.Palette.Build()
	if err != nil {
		return nil, err
	}

	player := level.NewPlayer()
	player.SetFOV(float32(cfg.Camera.FOV))

	return &Game{
		Player:    player,
		Map:       level.Map,
		Renderer:  &raycaster.Renderer{Palette: palette, Workers: cfg.Render.Workers},
		Frame:     raycaster.NewFramebuffer(cfg.Window.Width, cfg.Window.Height),
		InputMgr:  input,
		moveSpeed: float32(cfg.Camera.MoveSpeed),
		turnSpeed: float32(cfg.Camera.TurnSpeed),
		radius:    float32(cfg.Camera.Radius),
		fps:       NewFPSMeter(cfg.FPSInterval()),
		now:       time.Now,
	}, nil
}

// Update advances the simulation by the wall-clock time since the last call.
func (g *Game) Update() error {
	now := g.now()
	var dt float32
	if !g.last.IsZero() {
		dt = float32(now.Sub(g.last).Seconds())
	}
	g.last = now
	dt = vmath.Clamp(dt, 0, maxStep)
	g.fps.Tick(now)

	if g.InputMgr == nil {
		return nil
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	var forward, turn, strafe float32
	if g.pressed(render.KeyW, render.KeyUp) {
		forward++
	}
	if g.pressed(render.KeyS, render.KeyDown) {
		forward--
	}
	if g.pressed(render.KeyD, render.KeyRight) {
		turn++
	}
	if g.pressed(render.KeyA, render.KeyLeft) {
		turn--
	}
	if g.pressed(render.KeyE) {
		strafe++
	}
	if g.pressed(render.KeyQ) {
		strafe--
	}

	if turn != 0 {
		g.Player.Rotate(turn * g.turnSpeed * dt)
	}

	step := g.moveSpeed * dt
	delta := g.Player.Dir.Normalize().Scale(forward * step).
		Add(g.Player.Plane.Normalize().Scale(strafe * step))
	g.tryMove(delta)
	return nil
}

func (g *Game) pressed(keys ...render.Key) bool {
	for _, k := range keys {
		if g.InputMgr.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// tryMove applies delta one axis at a time so the player slides along walls.
func (g *Game) tryMove(delta vmath.Vec2) {
	pos := g.Player.Pos
	if delta.X != 0 && g.isClear(pos.X+delta.X, pos.Y) {
		pos.X += delta.X
	}
	if delta.Y != 0 && g.isClear(pos.X, pos.Y+delta.Y) {
		pos.Y += delta.Y
	}
	g.Player.Pos = pos
}

// isClear reports whether the square of half-size radius around (x, y)
// overlaps no solid tile.
func (g *Game) isClear(x, y float32) bool {
	r := g.radius
	x0, x1 := floorInt(x-r), floorInt(x+r)
	y0, y1 := floorInt(y-r), floorInt(y+r)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if g.Map.IsSolid(tx, ty) {
				return false
			}
		}
	}
	return true
}

func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// Draw renders the current view and presents it.
func (g *Game) Draw(screen render.Image) {
	g.Renderer.RenderFrame(g.Player, g.Map, g.Frame)
	screen.WritePixels(g.Frame.Pix)
	screen.DebugPrintAt(g.status(), 4, 4)
}

func (g *Game) status() string {
	return fmt.Sprintf("FPS: %0.1f  X=%.2f Y=%.2f", g.fps.FPS(), g.Player.Pos.X, g.Player.Pos.Y)
}

// Layout returns the framebuffer size; backends scale it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Frame.Width, g.Frame.Height
}
