// Package invaders implements the invaders game: a marching enemy formation,
// the player's cannon with its super attack, and the meter that unlocks it.
package invaders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "game_over"
	StateWin      = "win"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // One formation, win when it is destroyed
	ModeEndless                 // New, harder wave after every cleared formation
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is a single invaders session. It owns the formation, the player and
// the meter and advances them in a fixed order each step.
type Game struct {
	mode GameMode

	formation *Formation
	player    *Player
	meter     *SuperMeter
	frame     *core.Screen // Grid-sized canvas the entities draw into
	rng       *rand.Rand

	state   string
	score   int
	wave    int
	kills   int
	elapsed time.Duration

	cfg        config.InvadersConfig
	configErr  error
	difficulty *config.DifficultyManager

	screenTooSmall bool
}

// New creates a classic invaders game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless invaders game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Invaders (Endless)"
	}
	return "Invaders"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath)
	g.configErr = err
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = StatePlaying
	g.score = 0
	g.wave = 1
	g.kills = 0
	g.elapsed = 0

	g.frame = core.NewScreen(cfg.Grid.Width, cfg.Grid.Height)
	g.player = NewPlayer(cfg.Grid, cfg.Player, cfg.Projectile)
	g.meter = NewSuperMeter(cfg.Meter)
	g.spawnWave()

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// ConfigErr returns the error hit while loading the configuration during the
// last Reset, if any. Defaults are in effect when it is non-nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	minW, minH := g.MinScreenSize()
	g.screenTooSmall = w < minW || h < minH
}

// MinScreenSize returns the smallest screen the bordered grid and HUD fit on.
func (g *Game) MinScreenSize() (w, h int) {
	return g.cfg.Grid.Width + 2, g.cfg.Grid.Height + 3
}

// spawnWave builds a formation for the current wave, applying difficulty.
func (g *Game) spawnWave() {
	fc := g.cfg.Formation
	interval := g.difficulty.MoveInterval(fc.MoveInterval(), fc.MinMoveInterval(), g.score, g.wave)
	fc.MoveIntervalMS = int(interval / time.Millisecond)
	fc.RareChance = g.difficulty.RareChance(fc.RareChance, g.score, g.wave)
	g.formation = NewFormation(g.cfg.Grid, fc, g.rng)
}

// Step advances the session by dt. Commands are applied first, then the
// formation, the player, hit detection and the meter, then win and loss.
// A finished session ignores input until the next Reset.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += dt
	var cues []core.Cue

	if in.Has(core.ActionLeft) {
		g.player.MoveInDirection(-1)
	}
	if in.Has(core.ActionRight) {
		g.player.MoveInDirection(1)
	}
	if in.Has(core.ActionFire) && g.player.Shoot() {
		cues = append(cues, core.CueShoot)
	}
	if in.Has(core.ActionSuper) && g.meter.Ready() {
		g.player.UnleashSuper()
		g.meter.Reset()
		cues = append(cues, core.CueSuper)
	}

	if g.formation.Update(dt) {
		cues = append(cues, core.CueMove)
	}
	g.player.Update(dt)

	before := g.formation.Remaining()
	g.score += g.player.DetectHits(g.formation, g.meter)
	if killed := before - g.formation.Remaining(); killed > 0 {
		g.kills += killed
		cues = append(cues, core.CueExplode)
	}
	g.meter.Update(dt)

	switch {
	case g.formation.AllKilled():
		if g.mode == ModeEndless {
			g.wave++
			g.spawnWave()
			cues = append(cues, core.CueWave)
		} else {
			g.state = StateWin
			cues = append(cues, core.CueWin)
		}
	case g.formation.ReachedBottom():
		g.state = StateGameOver
		cues = append(cues, core.CueLose)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) over() bool {
	return g.state == StateGameOver || g.state == StateWin
}

// Render draws the bordered playfield centered on dst with the HUD below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		minW, minH := g.MinScreenSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.frame.Clear()
	g.formation.Draw(g.frame)
	g.player.Draw(g.frame)
	g.meter.Draw(g.frame)

	area := core.NewRect(0, 0, dst.Width(), dst.Height()-1)
	box := area.Centered(g.cfg.Grid.Width+2, g.cfg.Grid.Height+2)
	dst.DrawBoxColored(box, core.ColorGray)
	dst.Blit(g.frame, box.X+1, box.Y+1)

	g.renderHUD(dst, box)
	g.renderOverlay(dst)
}

// renderHUD draws score, progress and wave under the playfield.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	y := box.Bottom()

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(box.X, y, scoreText, core.ColorBrightWhite)

	var progress string
	if g.mode == ModeEndless {
		progress = fmt.Sprintf("Wave: %d  Kills: %d", g.wave, g.kills)
	} else {
		progress = fmt.Sprintf("Kills: %d/%d", g.kills, g.formation.Total())
	}
	if g.player.SuperActive() {
		progress = "SUPER!  " + progress
	}
	dst.DrawText(box.Right()-len(progress), y, progress)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateWin:
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.wave,
		GameOver: g.over(),
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}
