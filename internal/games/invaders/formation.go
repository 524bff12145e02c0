package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Enemy glyphs. The formation alternates between the two poses every march
// step: the first glyph is shown during the first half of the interval.
const (
	NormalPoseA = 'x'
	NormalPoseB = '+'
	RarePoseA   = 'o'
	RarePoseB   = '0'
)

// Enemy is a single invader cell.
type Enemy struct {
	X, Y   int
	Rare   bool
	Points int
}

// Formation is the marching block of enemies. All enemies share a direction
// and a move timer; when any of them reaches a side wall the whole block
// drops a row, turns around and marches faster.
type Formation struct {
	grid        config.GridConfig
	enemies     []Enemy
	total       int
	direction   int
	moveTimer   *core.Timer
	decrement   time.Duration
	minInterval time.Duration
}

// NewFormation spawns a formation on grid. Enemies occupy every cell with
// even coordinates strictly inside the side walls and between the top row
// and cfg.Depth. Each one is rare with probability cfg.RareChance percent.
func NewFormation(grid config.GridConfig, cfg config.FormationConfig, rng *rand.Rand) *Formation {
	f := &Formation{
		grid:        grid,
		direction:   1,
		moveTimer:   core.NewTimer(cfg.MoveInterval()),
		decrement:   cfg.MoveDecrement(),
		minInterval: cfg.MinMoveInterval(),
	}

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if !grid.InFormation(x, y, cfg.Depth) {
				continue
			}
			e := Enemy{X: x, Y: y, Points: cfg.NormalPoints}
			if rng.Intn(100) < cfg.RareChance {
				e.Rare = true
				e.Points = cfg.RarePoints
			}
			f.enemies = append(f.enemies, e)
		}
	}
	f.total = len(f.enemies)

	return f
}

// Update advances the move timer. When it fires the formation either steps
// sideways or, if an enemy already touches the wall it is heading for,
// descends one row, reverses and shortens its interval (never below the
// floor). Returns true when the formation moved.
func (f *Formation) Update(dt time.Duration) bool {
	f.moveTimer.Update(dt)
	if !f.moveTimer.Ready() {
		return false
	}
	f.moveTimer.Reset()

	if len(f.enemies) == 0 {
		return false
	}

	if f.atWall() {
		f.direction = -f.direction
		f.speedUp()
		for i := range f.enemies {
			f.enemies[i].Y++
		}
		return true
	}

	for i := range f.enemies {
		f.enemies[i].X += f.direction
	}
	return true
}

// atWall reports whether the leading column touches the wall in the
// current direction.
func (f *Formation) atWall() bool {
	if f.direction < 0 {
		minX := f.enemies[0].X
		for _, e := range f.enemies[1:] {
			minX = core.Min(minX, e.X)
		}
		return minX == 0
	}

	maxX := f.enemies[0].X
	for _, e := range f.enemies[1:] {
		maxX = core.Max(maxX, e.X)
	}
	return maxX == f.grid.Width-1
}

func (f *Formation) speedUp() {
	current := f.moveTimer.Duration()
	next := current - f.decrement
	if next < f.minInterval {
		next = f.minInterval
	}
	// A configured interval already below the floor must not slow down
	if next > current {
		next = current
	}
	f.moveTimer.SetDuration(next)
}

// AllKilled reports whether no enemies remain.
func (f *Formation) AllKilled() bool {
	return len(f.enemies) == 0
}

// ReachedBottom reports whether any enemy reached the player's row.
func (f *Formation) ReachedBottom() bool {
	for _, e := range f.enemies {
		if e.Y >= f.grid.Height-1 {
			return true
		}
	}
	return false
}

// KillInvaderAt removes the enemy at (x, y) and returns its points.
// Returns 0 when the cell is empty.
func (f *Formation) KillInvaderAt(x, y int) int {
	e, _ := f.killAt(x, y)
	return e.Points
}

func (f *Formation) killAt(x, y int) (Enemy, bool) {
	for i, e := range f.enemies {
		if e.X == x && e.Y == y {
			f.enemies = append(f.enemies[:i], f.enemies[i+1:]...)
			return e, true
		}
	}
	return Enemy{}, false
}

// Enemies returns the live enemies. The slice must not be modified.
func (f *Formation) Enemies() []Enemy {
	return f.enemies
}

// Total returns how many enemies were spawned.
func (f *Formation) Total() int {
	return f.total
}

// Remaining returns how many enemies are still alive.
func (f *Formation) Remaining() int {
	return len(f.enemies)
}

// Direction returns +1 when marching right and -1 when marching left.
func (f *Formation) Direction() int {
	return f.direction
}

// MoveInterval returns the current time between march steps.
func (f *Formation) MoveInterval() time.Duration {
	return f.moveTimer.Duration()
}

// Draw paints every enemy in its current pose.
func (f *Formation) Draw(dst *core.Screen) {
	firstHalf := f.moveTimer.RemainingFraction() > 0.5
	for _, e := range f.enemies {
		dst.SetColored(e.X, e.Y, enemyGlyph(e.Rare, firstHalf), enemyColor(e.Rare))
	}
}

func enemyGlyph(rare, firstHalf bool) rune {
	switch {
	case rare && firstHalf:
		return RarePoseA
	case rare:
		return RarePoseB
	case firstHalf:
		return NormalPoseA
	default:
		return NormalPoseB
	}
}

func enemyColor(rare bool) core.Color {
	if rare {
		return core.ColorBrightYellow
	}
	return core.ColorBrightGreen
}
