package invaders

import "time"

// Snapshot captures the game state for determinism testing and screenshots.
type Snapshot struct {
	Mode         string
	State        string
	Score        int
	Wave         int
	Kills        int
	Elapsed      time.Duration
	Enemies      int
	RareEnemies  int
	Direction    int
	MoveInterval time.Duration
	PlayerX      int
	Shots        int
	SuperActive  bool
	MeterCharge  int
	MeterReady   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	mode := "classic"
	if g.mode == ModeEndless {
		mode = "endless"
	}

	rare := 0
	for _, e := range g.formation.Enemies() {
		if e.Rare {
			rare++
		}
	}
	x, _ := g.player.Position()

	return Snapshot{
		Mode:         mode,
		State:        g.state,
		Score:        g.score,
		Wave:         g.wave,
		Kills:        g.kills,
		Elapsed:      g.elapsed,
		Enemies:      g.formation.Remaining(),
		RareEnemies:  rare,
		Direction:    g.formation.Direction(),
		MoveInterval: g.formation.MoveInterval(),
		PlayerX:      x,
		Shots:        len(g.player.Projectiles()),
		SuperActive:  g.player.SuperActive(),
		MeterCharge:  g.meter.Charge(),
		MeterReady:   g.meter.Ready(),
	}
}
