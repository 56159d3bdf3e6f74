package render

import "errors"

// ErrQuit is returned from Game.Update to end the game loop normally.
var ErrQuit = errors.New("quit")

// Image represents the output surface a backend presents each frame.
// It abstracts the underlying window or terminal.
type Image interface {
	// Size returns the logical size in pixels.
	Size() (width, height int)

	// WritePixels replaces the whole surface with row-major 0xAARRGGBB words.
	// len(pix) must equal width*height.
	WritePixels(pix []uint32)

	// DebugPrintAt draws a line of status text at the given pixel position.
	// Backends without a font may show it elsewhere (e.g. the window title).
	DebugPrintAt(text string, x, y int)
}

// InputManager handles keyboard input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ // Strafe left
	KeyE // Strafe right
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyCount
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrQuit ends the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the backend that owns the window and the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// InputManager returns the keyboard state for this backend.
	InputManager() InputManager

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
