package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PlayerChar is the cannon glyph.
const PlayerChar = 'A'

// Player is the cannon on the bottom row together with the shots it owns.
type Player struct {
	grid   config.GridConfig
	cfg    config.PlayerConfig
	timing config.ProjectileConfig

	x, y        int
	shots       []*Projectile
	superActive bool
	superTimer  *core.Timer
}

// NewPlayer places the cannon at the bottom center of grid.
func NewPlayer(grid config.GridConfig, cfg config.PlayerConfig, timing config.ProjectileConfig) *Player {
	return &Player{
		grid:       grid,
		cfg:        cfg,
		timing:     timing,
		x:          grid.Width / 2,
		y:          grid.Height - 1,
		superTimer: core.NewTimer(cfg.SuperDuration()),
	}
}

// MoveInDirection shifts the cannon one column left (-1) or right (+1),
// stopping at the grid edges. Other values are ignored.
func (p *Player) MoveInDirection(dir int) {
	if dir != -1 && dir != 1 {
		return
	}
	p.x = core.Clamp(p.x+dir, 0, p.grid.Width-1)
}

// ShotLimit returns how many primary shots may be in flight.
func (p *Player) ShotLimit() int {
	if p.superActive {
		return p.cfg.SuperShotLimit
	}
	return p.cfg.ShotLimit
}

// LiveShots counts primary shots that are still traveling.
// Barrage shots and explosions do not count against the shot limit.
func (p *Player) LiveShots() int {
	n := 0
	for _, s := range p.shots {
		if s.Ascending() && !s.Exploding() {
			n++
		}
	}
	return n
}

// Shoot fires a meter-building shot from the row above the cannon.
// Returns false when the shot limit is reached.
func (p *Player) Shoot() bool {
	if p.LiveShots() >= p.ShotLimit() {
		return false
	}
	p.shots = append(p.shots, NewProjectile(p.x, p.y-1, true, true, p.grid.Height-1, p.timing))
	return true
}

// UnleashSuper enters super mode, restarting its timer, and drops a barrage
// of descending shots spread evenly across the grid. Calling it while super
// mode is already active restarts the timer and adds another barrage.
func (p *Player) UnleashSuper() {
	p.superActive = true
	p.superTimer.Reset()

	n := p.cfg.BarrageSize
	if n <= 0 {
		return
	}
	spacing := core.Max(p.grid.Width/(n+1), 1)
	for k := 1; k <= n; k++ {
		x := core.Min(k*spacing, p.grid.Width-1)
		p.shots = append(p.shots, NewProjectile(x, 0, false, false, p.grid.Height-1, p.timing))
	}
}

// Update advances the super timer and every shot, then drops dead shots.
func (p *Player) Update(dt time.Duration) {
	if p.superActive {
		p.superTimer.Update(dt)
		if p.superTimer.Ready() {
			p.superActive = false
		}
	}

	for _, s := range p.shots {
		s.Update(dt)
	}

	live := p.shots[:0]
	for _, s := range p.shots {
		if !s.Dead() {
			live = append(live, s)
		}
	}
	clear(p.shots[len(live):])
	p.shots = live
}

// DetectHits checks every traveling shot against the formation. A hit kills
// the enemy, explodes the shot and, for primary shots, charges the meter.
// Returns the points scored.
func (p *Player) DetectHits(f *Formation, m *SuperMeter) int {
	total := 0
	for _, s := range p.shots {
		if s.Exploding() {
			continue
		}
		e, ok := f.killAt(s.X, s.Y)
		if !ok {
			continue
		}
		total += e.Points
		s.Explode()
		if s.BuildsMeter() {
			m.IncrementMeter()
		}
	}
	return total
}

// SuperActive reports whether super mode is on.
func (p *Player) SuperActive() bool {
	return p.superActive
}

// Position returns the cannon's cell.
func (p *Player) Position() (x, y int) {
	return p.x, p.y
}

// Projectiles returns the shots in flight. The slice must not be modified.
func (p *Player) Projectiles() []*Projectile {
	return p.shots
}

// Draw paints the cannon and its shots.
func (p *Player) Draw(dst *core.Screen) {
	dst.SetColored(p.x, p.y, PlayerChar, core.ColorBrightCyan)
	for _, s := range p.shots {
		s.Draw(dst)
	}
}
