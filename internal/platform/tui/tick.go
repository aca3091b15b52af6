// Package tui provides the Bubble Tea integration for flappy-tui.
// It handles the terminal UI loop, input mapping, frame timing, and the
// SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// time so the model can compute the real frame delta.
type TickMsg time.Time

// maxFrameDelta caps the per-frame time delta. A stalled terminal produces
// one large (but bounded) step instead of a teleporting simulation.
const maxFrameDelta = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. The rate is an upper bound on frame cadence, not a lower
// one: slow frames yield a larger delta, never a skipped tick.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta converts the elapsed time between ticks to bounded seconds.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1.0 / float64(tickRate)
	}
	d := now.Sub(prev)
	if d <= 0 {
		d = time.Second / time.Duration(tickRate)
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}
