package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// holdTime is how long a key counts as held after its last press event.
// Terminals only report presses (and auto-repeats), never releases.
const holdTime = 150 * time.Millisecond

// InputManager turns the terminal's stream of key events into held-key state.
type InputManager struct {
	mu    sync.Mutex
	until [render.KeyCount]time.Time
	prev  [render.KeyCount]bool
	cur   [render.KeyCount]bool
}

// NewInputManager creates an empty key state.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// Press records a key event at time now.
func (m *InputManager) Press(ev *tcell.EventKey, now time.Time) {
	key, ok := translateKey(ev)
	if !ok {
		return
	}
	m.mu.Lock()
	m.until[key] = now.Add(holdTime)
	m.mu.Unlock()
}

// Tick snapshots the held keys for the coming update.
func (m *InputManager) Tick(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prev = m.cur
	for k := range m.cur {
		m.cur[k] = now.Before(m.until[k])
	}
}

// IsKeyPressed returns whether the key was held at the last tick.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	if key < 0 || key >= render.KeyCount {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur[key]
}

// IsKeyJustPressed returns whether the key became held at the last tick.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	if key < 0 || key >= render.KeyCount {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur[key] && !m.prev[key]
}

// translateKey converts a tcell key event to a render.Key.
func translateKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'q', 'Q':
			return render.KeyQ, true
		case 'e', 'E':
			return render.KeyE, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
