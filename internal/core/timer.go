package core

import "time"

// TimerState is the phase of a Timer's countdown.
type TimerState int

const (
	// TimerRunning means elapsed time has not yet reached the duration.
	TimerRunning TimerState = iota
	// TimerReady means the countdown finished. The timer stays ready,
	// ignoring further updates, until Reset is called.
	TimerReady
)

// String returns the state name.
func (s TimerState) String() string {
	if s == TimerReady {
		return "ready"
	}
	return "running"
}

// Timer is a manually reset countdown driven by caller-supplied elapsed time.
// It never schedules anything: readiness is only observed on the next Update.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	state    TimerState
}

// NewTimer creates a running timer with the given duration.
func NewTimer(d time.Duration) *Timer {
	if d < 0 {
		d = 0
	}
	return &Timer{duration: d}
}

// Update accumulates dt. Once the elapsed time reaches the duration the timer
// becomes ready and elapsed time is pinned to the duration.
func (t *Timer) Update(dt time.Duration) {
	if t.state == TimerReady {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.state = TimerReady
	}
}

// Ready reports whether the countdown finished.
func (t *Timer) Ready() bool {
	return t.state == TimerReady
}

// State returns the current phase.
func (t *Timer) State() TimerState {
	return t.state
}

// Reset restarts the countdown from zero with the same duration.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.state = TimerRunning
}

// SetDuration replaces the duration and restarts the countdown.
func (t *Timer) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.duration = d
	t.Reset()
}

// Duration returns the configured countdown length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed returns the time accumulated since the last reset.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left before the timer becomes ready.
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// RemainingFraction returns Remaining/Duration in [0, 1].
// A zero-length timer reports 0.
func (t *Timer) RemainingFraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.Remaining()) / float64(t.duration)
}
