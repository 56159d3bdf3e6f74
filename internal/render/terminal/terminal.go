// Package terminal presents frames in a terminal with tcell. Each character
// cell shows two vertically stacked pixels using the upper half block: the
// foreground is the top pixel and the background the bottom one.
package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

const (
	upperHalfBlock = '▀'
	tickRate       = time.Second / 60
)

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	title     string
	input     *InputManager
	newScreen func() (tcell.Screen, error)
}

// NewEngine creates an engine drawing to the controlling terminal.
func NewEngine() render.Engine {
	return &Engine{
		input:     NewInputManager(),
		newScreen: tcell.NewScreen,
	}
}

// SetWindowSize is ignored; the terminal decides its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the text shown in the status line until the game prints its own.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is ignored; terminal resizes are always followed.
func (e *Engine) SetWindowResizable(resizable bool) {}

// InputManager returns the keyboard state.
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// RunGame runs the game at a fixed tick rate until it quits, Ctrl-C is
// pressed, or the terminal goes away.
func (e *Engine) RunGame(game render.Game) error {
	screen, err := e.newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	img := &Image{screen: screen, status: e.title}
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isInterrupt(ev) {
					return nil
				}
				e.input.Press(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			e.input.Tick(now)
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}

			cols, rows := screen.Size()
			img.width, img.height = game.Layout(cols, rows*2)
			game.Draw(img)
			img.drawStatus()
			screen.Show()
		}
	}
}

// Image samples frames onto the terminal grid.
type Image struct {
	screen        tcell.Screen
	width, height int
	status        string
}

// Size returns the logical framebuffer size.
func (i *Image) Size() (width, height int) {
	return i.width, i.height
}

// WritePixels scales the framebuffer to the terminal with nearest-neighbour
// sampling, two pixel rows per cell.
func (i *Image) WritePixels(pix []uint32) {
	if i.width <= 0 || i.height <= 0 || len(pix) < i.width*i.height {
		return
	}
	cols, rows := i.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	subRows := rows * 2

	for cy := 0; cy < rows; cy++ {
		topY := (2 * cy) * i.height / subRows
		bottomY := (2*cy + 1) * i.height / subRows
		for cx := 0; cx < cols; cx++ {
			sx := cx * i.width / cols
			top := pix[topY*i.width+sx]
			bottom := pix[bottomY*i.width+sx]
			style := tcell.StyleDefault.Foreground(wordColor(top)).Background(wordColor(bottom))
			i.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
}

// DebugPrintAt records the text shown on the status line. Terminal cells are
// too coarse to place it at a pixel position.
func (i *Image) DebugPrintAt(text string, x, y int) {
	i.status = text
}

func (i *Image) drawStatus() {
	if i.status == "" {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	cols, _ := i.screen.Size()
	for x, r := range []rune(i.status) {
		if x >= cols {
			break
		}
		i.screen.SetContent(x, 0, r, nil, style)
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
}

func wordColor(word uint32) tcell.Color {
	return tcell.NewRGBColor(int32(word>>16&0xFF), int32(word>>8&0xFF), int32(word&0xFF))
}
