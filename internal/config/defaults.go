package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Formation: FormationConfig{
			Depth:             9,
			RareChance:        15,
			RarePoints:        5,
			NormalPoints:      1,
			MoveIntervalMS:    2000,
			MoveDecrementMS:   250,
			MinMoveIntervalMS: 250,
		},
		Player: PlayerConfig{
			ShotLimit:       4,
			SuperShotLimit:  15,
			SuperDurationMS: 1000,
			BarrageSize:     12,
		},
		Projectile: ProjectileConfig{
			StepMS:      50,
			ExplosionMS: 250,
		},
		Meter: MeterConfig{
			Max:             10,
			FlashIntervalMS: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.6,
				RareBonus:         20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
