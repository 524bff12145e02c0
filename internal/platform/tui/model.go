package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// CuePlayer turns game cues into sound.
type CuePlayer interface {
	Play(cue core.Cue)
}

// Deps are the services a session shares with the games it runs.
// Every field is optional.
type Deps struct {
	Store  *storage.Store
	Sound  CuePlayer
	Logger *log.Logger
	Player string // Name recorded with saved scores
}

// configErrer is implemented by games that load a configuration file.
type configErrer interface {
	ConfigErr() error
}

// GameModel is the Bubble Tea model running a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tickID     int
	lastTick   time.Time
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	fixedSeed  bool // Restarts replay the caller's seed
}

// NewGameModel creates a model for game. The bottom row of the terminal is
// reserved for the help bar.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, deps Deps) GameModel {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		deps:       deps,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		tickID:     nextTickID(),
		fixedSeed:  fixedSeed,
	}
}

// playfieldHeight is the screen height left for the game under the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 0)
}

// playfield returns the runtime config the game itself sees.
func (m GameModel) playfield() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)
	return cfg
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.playfield())
	m.warnConfig()
	return tickCmd(m.tickID, m.config.FrameInterval())
}

// warnConfig logs a configuration problem once per reset.
func (m GameModel) warnConfig() {
	ce, ok := m.game.(configErrer)
	if !ok || m.deps.Logger == nil {
		return
	}
	if err := ce.ConfigErr(); err != nil {
		m.deps.Logger.Warn("using default game config", "game", m.game.ID(), "error", err)
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if _, err := m.saveScreenshot(); err != nil && m.deps.Logger != nil {
			m.deps.Logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen and the game without restarting it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.game.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	// Restart is owned here: the game only ever sees Reset.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.playfield())
		m.warnConfig()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.tickID, m.config.FrameInterval())
	}

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if m.deps.Sound != nil {
		for _, cue := range result.Cues {
			m.deps.Sound.Play(cue)
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.FrameInterval())
}

// saveScore records a finished session. Zero scores are not worth a row.
func (m GameModel) saveScore() {
	if m.deps.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.deps.Store.SaveScore(m.game.ID(), m.deps.Player, m.gameState.Score, m.gameState.Wave)
	if err != nil && m.deps.Logger != nil {
		m.deps.Logger.Error("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.invaders/screenshots and returns the file path.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game with the help bar below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, deps Deps) error {
	model := NewGameModel(game, cfg, deps)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
