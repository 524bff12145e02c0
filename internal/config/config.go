// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// InvadersConfig contains all tunable parameters of the invaders game.
type InvadersConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Formation  FormationConfig  `yaml:"formation"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Meter      MeterConfig      `yaml:"meter"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the size of the playfield in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FormationConfig defines how the enemy formation spawns and marches.
type FormationConfig struct {
	Depth             int `yaml:"depth"`               // Enemies spawn on even rows below this row
	RareChance        int `yaml:"rare_chance"`         // Percent chance an enemy is rare
	RarePoints        int `yaml:"rare_points"`         // Points for a rare enemy
	NormalPoints      int `yaml:"normal_points"`       // Points for a normal enemy
	MoveIntervalMS    int `yaml:"move_interval_ms"`    // Initial time between marching steps
	MoveDecrementMS   int `yaml:"move_decrement_ms"`   // Interval reduction on each edge flip
	MinMoveIntervalMS int `yaml:"min_move_interval_ms"` // Interval floor
}

// PlayerConfig defines the player cannon and its super attack.
type PlayerConfig struct {
	ShotLimit       int `yaml:"shot_limit"`        // Live shots allowed normally
	SuperShotLimit  int `yaml:"super_shot_limit"`  // Live shots allowed during super mode
	SuperDurationMS int `yaml:"super_duration_ms"` // How long super mode lasts
	BarrageSize     int `yaml:"barrage_size"`      // Descending shots spawned by the super attack
}

// ProjectileConfig defines shot timing.
type ProjectileConfig struct {
	StepMS      int `yaml:"step_ms"`      // Time to travel one row
	ExplosionMS int `yaml:"explosion_ms"` // How long the impact glyph stays
}

// MeterConfig defines the super meter.
type MeterConfig struct {
	Max             int `yaml:"max"`               // Charge needed to unlock super
	FlashIntervalMS int `yaml:"flash_interval_ms"` // Blink period once ready
}

// MoveInterval returns the initial marching interval.
func (c FormationConfig) MoveInterval() time.Duration {
	return ms(c.MoveIntervalMS)
}

// MoveDecrement returns the interval reduction applied on each edge flip.
func (c FormationConfig) MoveDecrement() time.Duration {
	return ms(c.MoveDecrementMS)
}

// MinMoveInterval returns the fastest allowed marching interval.
func (c FormationConfig) MinMoveInterval() time.Duration {
	return ms(c.MinMoveIntervalMS)
}

// SuperDuration returns how long super mode lasts.
func (c PlayerConfig) SuperDuration() time.Duration {
	return ms(c.SuperDurationMS)
}

// Step returns the time a projectile needs to travel one row.
func (c ProjectileConfig) Step() time.Duration {
	return ms(c.StepMS)
}

// Explosion returns how long an exploding projectile lingers.
func (c ProjectileConfig) Explosion() time.Duration {
	return ms(c.ExplosionMS)
}

// FlashInterval returns the meter blink period.
func (c MeterConfig) FlashInterval() time.Duration {
	return ms(c.FlashIntervalMS)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// InFormation reports whether (x, y) is a spawn cell for a formation of the
// given depth: both coordinates even, inside the side walls and between the
// top row and depth.
func (g GridConfig) InFormation(x, y, depth int) bool {
	return x > 1 && x < g.Width-2 &&
		y > 0 && y < depth &&
		x%2 == 0 && y%2 == 0
}

// FormationSize returns how many enemies a formation of depth spawns.
func (g GridConfig) FormationSize(depth int) int {
	n := 0
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.InFormation(x, y, depth) {
				n++
			}
		}
	}
	return n
}

// Minimum playable grid. The formation needs interior even columns and rows
// between the HUD and the player row.
const (
	MinGridWidth  = 8
	MinGridHeight = 6
)

// Validate reports the first unusable value in the configuration.
func (c InvadersConfig) Validate() error {
	var errs []error

	if c.Grid.Width < MinGridWidth || c.Grid.Height < MinGridHeight {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than %dx%d",
			c.Grid.Width, c.Grid.Height, MinGridWidth, MinGridHeight))
	}
	if c.Formation.Depth < 1 || c.Formation.Depth >= c.Grid.Height-1 {
		errs = append(errs, fmt.Errorf("formation depth %d must be in [1, %d)",
			c.Formation.Depth, c.Grid.Height-1))
	} else if c.Grid.FormationSize(c.Formation.Depth) == 0 {
		errs = append(errs, fmt.Errorf("formation depth %d on a %dx%d grid spawns no enemies",
			c.Formation.Depth, c.Grid.Width, c.Grid.Height))
	}
	if c.Formation.RareChance < 0 || c.Formation.RareChance > 100 {
		errs = append(errs, fmt.Errorf("rare chance %d must be a percentage", c.Formation.RareChance))
	}
	if c.Formation.RarePoints < 0 || c.Formation.NormalPoints < 0 {
		errs = append(errs, errors.New("enemy points must not be negative"))
	}
	if c.Formation.MoveIntervalMS <= 0 || c.Formation.MinMoveIntervalMS <= 0 {
		errs = append(errs, errors.New("move intervals must be positive"))
	}
	if c.Formation.MoveDecrementMS < 0 {
		errs = append(errs, errors.New("move decrement must not be negative"))
	}
	if c.Player.ShotLimit < 1 || c.Player.SuperShotLimit < c.Player.ShotLimit {
		errs = append(errs, fmt.Errorf("shot limits %d/%d must satisfy 1 <= normal <= super",
			c.Player.ShotLimit, c.Player.SuperShotLimit))
	}
	if c.Player.BarrageSize < 0 || c.Player.BarrageSize >= c.Grid.Width {
		errs = append(errs, fmt.Errorf("barrage size %d must be in [0, %d)", c.Player.BarrageSize, c.Grid.Width))
	}
	if c.Player.SuperDurationMS < 0 || c.Projectile.StepMS <= 0 || c.Projectile.ExplosionMS < 0 {
		errs = append(errs, errors.New("projectile and super timings must be positive"))
	}
	if c.Meter.Max < 1 || c.Meter.FlashIntervalMS <= 0 {
		errs = append(errs, errors.New("meter max and flash interval must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid invaders config: %w", err)
	}
	return nil
}
