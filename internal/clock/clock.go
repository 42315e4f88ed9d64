// Package clock provides the free-running millisecond counter that charge
// cycles are timed against. The counter is deliberately 32 bits wide and
// wraps roughly every 49.7 days; consumers must compare timestamps with
// modular subtraction, never with ordering comparisons on the raw values.
package clock

import (
	"sync"
	"time"
)

// Clock yields a monotonic millisecond timestamp that wraps at 2^32.
type Clock interface {
	Millis() uint32
}

// Wallclock derives the counter from the process start time.
type Wallclock struct {
	start time.Time
}

// NewWallclock returns a clock counting from now.
func NewWallclock() *Wallclock {
	return &Wallclock{start: time.Now()}
}

// Millis returns elapsed milliseconds since process start, truncated to
// 32 bits. time.Since uses the runtime's monotonic reading, so the value
// never jumps on wall-clock adjustments.
func (w *Wallclock) Millis() uint32 {
	return uint32(time.Since(w.start).Milliseconds())
}

// Manual is a hand-advanced clock for tests. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now uint32
}

// NewManual returns a manual clock starting at the given timestamp.
func NewManual(now uint32) *Manual {
	return &Manual{now: now}
}

// Millis returns the current scripted timestamp.
func (m *Manual) Millis() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward, wrapping like the real counter.
func (m *Manual) Advance(ms uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += ms
}

// Set jumps the clock to an absolute timestamp.
func (m *Manual) Set(ms uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = ms
}
