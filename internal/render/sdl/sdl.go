//go:build sdl

// Package sdl presents frames through an SDL2 window. Frames are uploaded to
// a streaming ARGB8888 texture and stretched to the window by the SDL renderer.
package sdl

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/render/raycaster"
)

const frameTime = time.Second / 60

// Engine implements render.Engine with go-sdl2.
type Engine struct {
	title      string
	width      int32
	height     int32
	resizable  bool
	input      *InputManager
	window     *sdl.Window
	renderer   *sdl.Renderer
	texture    *sdl.Texture
	texW, texH int
}

// NewEngine creates an SDL engine. The window is opened by RunGame.
func NewEngine() render.Engine {
	return &Engine{
		title:  "Raycaster",
		width:  640,
		height: 400,
		input:  &InputManager{},
	}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = int32(width), int32(height)
	if e.window != nil {
		e.window.SetSize(e.width, e.height)
	}
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
	if e.window != nil {
		e.window.SetTitle(title)
	}
}

// SetWindowResizable enables or disables window resizing.
func (e *Engine) SetWindowResizable(resizable bool) {
	e.resizable = resizable
	if e.window != nil {
		e.window.SetResizable(resizable)
	}
}

// InputManager returns the keyboard state.
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// RunGame opens the window and runs the game until it quits or the window is closed.
func (e *Engine) RunGame(game render.Game) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialise SDL: %w", err)
	}
	defer sdl.Quit()

	flags := uint32(sdl.WINDOW_SHOWN)
	if e.resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	window, err := sdl.CreateWindow(e.title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, e.width, e.height, flags)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	e.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Destroy()
	e.renderer = renderer
	defer e.destroyTexture()

	img := &Image{engine: e}
	for {
		start := time.Now()
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.State == sdl.PRESSED && ev.Keysym.Scancode == sdl.SCANCODE_C && ev.Keysym.Mod&uint16(sdl.KMOD_CTRL) != 0 {
					return nil
				}
			}
		}

		e.input.poll()
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}

		ww, wh := window.GetSize()
		img.width, img.height = game.Layout(int(ww), int(wh))
		if err := e.ensureTexture(img.width, img.height); err != nil {
			return err
		}
		game.Draw(img)
		if img.err != nil {
			return img.err
		}
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.Copy(e.texture, nil, nil); err != nil {
			return err
		}
		renderer.Present()

		if elapsed := time.Since(start); elapsed < frameTime {
			sdl.Delay(uint32((frameTime - elapsed) / time.Millisecond))
		}
	}
}

// ensureTexture (re)creates the streaming texture when the logical size changes.
func (e *Engine) ensureTexture(width, height int) error {
	if e.texture != nil && e.texW == width && e.texH == height {
		return nil
	}
	e.destroyTexture()
	tex, err := e.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("failed to create %dx%d texture: %w", width, height, err)
	}
	e.texture, e.texW, e.texH = tex, width, height
	return nil
}

func (e *Engine) destroyTexture() {
	if e.texture != nil {
		e.texture.Destroy()
		e.texture = nil
	}
}

// Image uploads frames into the engine's streaming texture.
type Image struct {
	engine        *Engine
	width, height int
	err           error
}

// Size returns the logical framebuffer size.
func (i *Image) Size() (width, height int) {
	return i.width, i.height
}

// WritePixels copies the framebuffer into the locked texture.
func (i *Image) WritePixels(pix []uint32) {
	bytes, pitch, err := i.engine.texture.Lock(nil)
	if err != nil {
		i.err = fmt.Errorf("failed to lock texture: %w", err)
		return
	}
	fb := raycaster.Framebuffer{Width: i.width, Height: i.height, Pix: pix}
	fb.CopyARGB(bytes, pitch)
	i.engine.texture.Unlock()
}

// DebugPrintAt shows the text in the window title; SDL2 has no built-in font.
func (i *Image) DebugPrintAt(text string, x, y int) {
	i.engine.window.SetTitle(i.engine.title + " - " + text)
}

// InputManager reads SDL's keyboard state once per update.
type InputManager struct {
	prev, cur [render.KeyCount]bool
}

var scancodes = [render.KeyCount]sdl.Scancode{
	render.KeyW:      sdl.SCANCODE_W,
	render.KeyA:      sdl.SCANCODE_A,
	render.KeyS:      sdl.SCANCODE_S,
	render.KeyD:      sdl.SCANCODE_D,
	render.KeyQ:      sdl.SCANCODE_Q,
	render.KeyE:      sdl.SCANCODE_E,
	render.KeyUp:     sdl.SCANCODE_UP,
	render.KeyDown:   sdl.SCANCODE_DOWN,
	render.KeyLeft:   sdl.SCANCODE_LEFT,
	render.KeyRight:  sdl.SCANCODE_RIGHT,
	render.KeySpace:  sdl.SCANCODE_SPACE,
	render.KeyEscape: sdl.SCANCODE_ESCAPE,
}

func (m *InputManager) poll() {
	m.prev = m.cur
	codes := sdl.GetKeyboardState()
	for k, sc := range scancodes {
		m.cur[k] = int(sc) < len(codes) && codes[sc] == 1
	}
}

// IsKeyPressed returns whether the key is down.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return key >= 0 && key < render.KeyCount && m.cur[key]
}

// IsKeyJustPressed returns whether the key went down since the last update.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return key >= 0 && key < render.KeyCount && m.cur[key] && !m.prev[key]
}
