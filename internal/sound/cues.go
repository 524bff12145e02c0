package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// wave selects how a segment is synthesized.
type wave int

const (
	waveTone  wave = iota // Steady sine
	waveSweep             // Sine gliding from one frequency to another
	waveNoise             // Decaying white noise
	waveRest              // Silence
)

// segment is one piece of a cue sound.
type segment struct {
	wave     wave
	from, to float64 // Hz; to is only used by sweeps
	dur      time.Duration
}

// cueSounds maps each cue to the segments played in sequence.
var cueSounds = map[core.Cue][]segment{
	core.CueMove: {
		{wave: waveTone, from: 110, dur: 60 * time.Millisecond},
	},
	core.CueShoot: {
		{wave: waveSweep, from: 1200, to: 600, dur: 80 * time.Millisecond},
	},
	core.CueExplode: {
		{wave: waveNoise, dur: 200 * time.Millisecond},
	},
	core.CueSuper: {
		{wave: waveSweep, from: 300, to: 1500, dur: 400 * time.Millisecond},
	},
	core.CueWave: {
		{wave: waveTone, from: 660, dur: 100 * time.Millisecond},
		{wave: waveTone, from: 880, dur: 100 * time.Millisecond},
	},
	core.CueWin: {
		{wave: waveTone, from: 523, dur: 120 * time.Millisecond},
		{wave: waveTone, from: 659, dur: 120 * time.Millisecond},
		{wave: waveTone, from: 784, dur: 120 * time.Millisecond},
		{wave: waveTone, from: 1047, dur: 240 * time.Millisecond},
	},
	core.CueLose: {
		{wave: waveTone, from: 392, dur: 200 * time.Millisecond},
		{wave: waveRest, dur: 40 * time.Millisecond},
		{wave: waveTone, from: 330, dur: 200 * time.Millisecond},
		{wave: waveRest, dur: 40 * time.Millisecond},
		{wave: waveTone, from: 262, dur: 400 * time.Millisecond},
	},
}

// cueVolume is the gain applied to every cue, in powers of two.
const cueVolume = -2.0

// CueStreamer synthesizes the sound for cue. Unknown cues yield nil.
func CueStreamer(cue core.Cue) beep.Streamer {
	segs, ok := cueSounds[cue]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, seg.streamer())
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   cueVolume,
	}
}

func (s segment) streamer() beep.Streamer {
	n := SampleRate.N(s.dur)
	switch s.wave {
	case waveTone:
		sine, err := generators.SineTone(SampleRate, s.from)
		if err != nil {
			return beep.Silence(n)
		}
		return newRelease(beep.Take(n, sine), n)
	case waveSweep:
		return newRelease(&sweep{from: s.from, to: s.to, total: n}, n)
	case waveNoise:
		return &noise{total: n, rng: rand.New(rand.NewSource(int64(n)))}
	default:
		return beep.Silence(n)
	}
}

// sweep glides linearly between two frequencies over total samples.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise with an exponential decay.
type noise struct {
	total int
	pos   int
	rng   *rand.Rand
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(SampleRate)
		v := math.Exp(-t*12) * (g.rng.Float64()*2 - 1)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// release fades the last fifth of a fixed-length streamer to avoid clicks.
type release struct {
	beep.Streamer
	total int
	pos   int
}

func newRelease(s beep.Streamer, total int) *release {
	return &release{Streamer: s, total: total}
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.Streamer.Stream(samples)
	start := r.total - r.total/5
	for i := 0; i < n; i++ {
		if r.pos >= start && r.total > start {
			vol := float64(r.total-r.pos) / float64(r.total-start)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.pos++
	}
	return n, ok
}
