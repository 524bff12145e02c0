// Package sound plays short synthesized effects for game cues.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// bufferDuration is the speaker buffer length. Larger buffers are safer
// against underruns but add latency.
const bufferDuration = 50 * time.Millisecond

// Player mixes cue sounds onto the speaker.
// A disabled or uninitialized Player silently ignores every cue.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
}

// New creates a player. Nothing is opened until Init.
func New(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		mixer:   &beep.Mixer{},
	}
}

// Init opens the audio device. A failure leaves the player muted.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(bufferDuration)); err != nil {
		p.enabled = false
		return fmt.Errorf("sound: cannot open audio device: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues will be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Play queues the sound for cue.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}
	s := CueStreamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
