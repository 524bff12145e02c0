package config

import (
	"testing"
	"time"
)

func waveDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "wave", MaxAt: 4},
		Scaling:      ScalingConfig{IntervalReduction: 0.5, RareBonus: 20},
	}
}

func TestDifficultyLevelByWave(t *testing.T) {
	d := NewDifficultyManager(waveDifficulty())

	tests := []struct {
		wave     int
		expected float64
	}{
		{1, 0.0},
		{3, 0.5},
		{5, 1.0},
		{50, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(0, tc.wave); got != tc.expected {
			t.Errorf("Level(wave=%d) = %v, expected %v", tc.wave, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	cfg := waveDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("disabled config should report disabled")
	}
	if got := d.Level(1000, 10); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}

func TestDifficultyMoveInterval(t *testing.T) {
	d := NewDifficultyManager(waveDifficulty())
	base := 2 * time.Second
	floor := 250 * time.Millisecond

	if got := d.MoveInterval(base, floor, 0, 1); got != base {
		t.Errorf("first wave interval = %v, expected %v", got, base)
	}
	if got := d.MoveInterval(base, floor, 0, 5); got != time.Second {
		t.Errorf("max difficulty interval = %v, expected 1s", got)
	}
	if got := d.MoveInterval(300*time.Millisecond, floor, 0, 5); got != floor {
		t.Errorf("interval should not drop below floor, got %v", got)
	}
}

func TestDifficultyRareChance(t *testing.T) {
	d := NewDifficultyManager(waveDifficulty())

	if got := d.RareChance(15, 0, 1); got != 15 {
		t.Errorf("RareChance(first wave) = %d, expected 15", got)
	}
	if got := d.RareChance(15, 0, 5); got != 35 {
		t.Errorf("RareChance(max) = %d, expected 35", got)
	}
	if got := d.RareChance(95, 0, 5); got != 100 {
		t.Errorf("RareChance should cap at 100, got %d", got)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
}
