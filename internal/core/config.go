package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall-clock interval between platform ticks.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Wave     int  // Current wave (1-based)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with the formation destroyed
	Paused   bool // Whether the game is paused
}

// Cue is a feedback event emitted by a simulation step.
// The platform maps cues to sounds; the game itself never plays audio.
type Cue int

const (
	CueMove    Cue = iota // Formation marched one step
	CueShoot              // A shot was accepted
	CueExplode            // A shot destroyed an enemy
	CueSuper              // The super attack was unleashed
	CueWave               // Formation destroyed, next wave spawned (endless)
	CueWin                // Formation destroyed
	CueLose               // Formation reached the player row
)

// String returns the cue name, used in logs and screenshots.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueShoot:
		return "shoot"
	case CueExplode:
		return "explode"
	case CueSuper:
		return "super"
	case CueWave:
		return "wave"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
