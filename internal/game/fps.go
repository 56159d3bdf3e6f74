package game

import (
	"log"
	"time"
)

// displayWindow is how often the on-screen FPS is refreshed.
const displayWindow = time.Second

// frameWindow accumulates frames until a window has elapsed.
type frameWindow struct {
	frames  int
	elapsed time.Duration
}

// add records a frame and reports whether at least d has elapsed.
func (w *frameWindow) add(dt, d time.Duration) bool {
	w.frames++
	w.elapsed += dt
	return w.elapsed >= d && w.elapsed > 0
}

func (w *frameWindow) fps() float64 {
	return float64(w.frames) / w.elapsed.Seconds()
}

// FPSMeter averages frame times for display and logs them periodically.
type FPSMeter struct {
	interval time.Duration
	logf     func(format string, args ...any)

	lastFrame time.Time
	display   frameWindow
	logged    frameWindow
	fps       float64
}

// NewFPSMeter logs through the standard logger every interval.
// A non-positive interval disables logging; FPS is still measured each second.
func NewFPSMeter(interval time.Duration) *FPSMeter {
	return &FPSMeter{interval: interval, logf: log.Printf}
}

// Tick records a frame at now.
func (m *FPSMeter) Tick(now time.Time) {
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return
	}
	dt := now.Sub(m.lastFrame)
	m.lastFrame = now

	if m.display.add(dt, displayWindow) {
		m.fps = m.display.fps()
		m.display = frameWindow{}
	}

	if m.interval <= 0 {
		return
	}
	if m.logged.add(dt, m.interval) {
		frameMs := m.logged.elapsed.Seconds() * 1000 / float64(m.logged.frames)
		m.logf("Performance: %.2f FPS (%.2fms)", m.logged.fps(), frameMs)
		m.logged = frameWindow{}
	}
}

// FPS returns the rate measured over the last completed second.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
