// Package tui provides the Bubble Tea integration for the invaders game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the elapsed time fed to a single simulation step.
// A stalled terminal or a suspended process must not fast-forward the game.
const MaxFrameDelta = 100 * time.Millisecond

// lastTickID hands out tick loop identifiers.
var lastTickID atomic.Int64

func nextTickID() int {
	return int(lastTickID.Add(1))
}

// TickMsg is sent to trigger a game simulation tick.
// ID ties the message to the loop that scheduled it so a stale loop
// from an earlier game dies out instead of doubling the tick rate.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// frameDelta returns the time since the previous tick clamped to
// [0, MaxFrameDelta]. The first tick of a loop has no predecessor and
// yields zero.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
