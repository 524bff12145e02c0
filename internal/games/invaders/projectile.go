package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Projectile glyphs
const (
	BoltChar   = '|'
	ImpactChar = '*'
)

// Projectile is a single shot. Ascending shots are fired by the player and
// travel up; descending shots come from the super barrage and travel down.
type Projectile struct {
	X, Y int

	ascending   bool
	exploding   bool
	buildsMeter bool
	bottom      int         // Last row a descending shot can reach
	timer       *core.Timer // Step timer while traveling, explosion countdown afterwards
	timing      config.ProjectileConfig
}

// NewProjectile creates a traveling projectile at (x, y).
// bottom is the last grid row; descending shots expire when they reach it.
func NewProjectile(x, y int, ascending, buildsMeter bool, bottom int, timing config.ProjectileConfig) *Projectile {
	return &Projectile{
		X:           x,
		Y:           y,
		ascending:   ascending,
		buildsMeter: buildsMeter,
		bottom:      bottom,
		timer:       core.NewTimer(timing.Step()),
		timing:      timing,
	}
}

// Update advances the projectile's countdown by dt. A traveling projectile
// moves one row each time its step timer fires; an exploding one stays put.
func (p *Projectile) Update(dt time.Duration) {
	p.timer.Update(dt)
	if p.exploding || !p.timer.Ready() {
		return
	}
	p.timer.Reset()

	if p.ascending {
		if p.Y > 0 {
			p.Y--
		}
	} else if p.Y < p.bottom {
		p.Y++
	}
}

// Explode freezes the projectile and starts its explosion countdown.
// Exploding an already exploding projectile has no effect.
func (p *Projectile) Explode() {
	if p.exploding {
		return
	}
	p.exploding = true
	p.timer = core.NewTimer(p.timing.Explosion())
}

// Dead reports whether the projectile can be removed: its explosion has
// finished, or it traveled to the edge without hitting anything.
func (p *Projectile) Dead() bool {
	if p.exploding {
		return p.timer.Ready()
	}
	if p.ascending {
		return p.Y <= 0
	}
	return p.Y >= p.bottom
}

// Ascending reports whether the projectile travels up.
func (p *Projectile) Ascending() bool {
	return p.ascending
}

// Exploding reports whether the projectile has hit something.
func (p *Projectile) Exploding() bool {
	return p.exploding
}

// BuildsMeter reports whether a hit by this projectile charges the super meter.
func (p *Projectile) BuildsMeter() bool {
	return p.buildsMeter
}

// Draw paints the bolt or impact glyph.
func (p *Projectile) Draw(dst *core.Screen) {
	switch {
	case p.exploding:
		dst.SetColored(p.X, p.Y, ImpactChar, core.ColorOrange)
	case p.ascending:
		dst.SetColored(p.X, p.Y, BoltChar, core.ColorBrightWhite)
	default:
		dst.SetColored(p.X, p.Y, BoltChar, core.ColorMagenta)
	}
}
