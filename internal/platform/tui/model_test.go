package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	seeds   []int64
	resized [2]int
	dts     []time.Duration
	inputs  []core.InputFrame
	state   core.GameState
	cues    []core.Cue
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.resized = [2]int{cfg.ScreenW, cfg.ScreenH}
	g.state = core.GameState{Wave: 1}
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, in.Clone())
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.state, Cues: cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

// cueRecorder collects played cues.
type cueRecorder struct {
	played []core.Cue
}

func (r *cueRecorder) Play(cue core.Cue) { r.played = append(r.played, cue) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestModel(t *testing.T, g *fakeGame, deps Deps) GameModel {
	t.Helper()
	m := NewGameModel(g, testConfig(), deps)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, t0, 0},
		{"normal frame", t0, t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"backwards clock", t0, t0.Add(-time.Second), 0},
		{"stall", t0, t0.Add(5 * time.Second), MaxFrameDelta},
		{"exactly max", t0, t0.Add(MaxFrameDelta), MaxFrameDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.prev, tt.now); got != tt.want {
				t.Errorf("frameDelta() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestGameModelInitReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, Deps{})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.resized != [2]int{80, 23} {
		t.Errorf("game sized %v, expected [80 23]", g.resized)
	}
}

func TestGameModelTickDeltas(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Deps{})
	t0 := time.Unix(1000, 0)

	m, cmd := update(t, m, TickMsg{ID: m.tickID, Time: t0})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: t0.Add(20 * time.Millisecond)})
	update(t, m, TickMsg{ID: m.tickID, Time: t0.Add(3 * time.Second)})

	want := []time.Duration{0, 20 * time.Millisecond, MaxFrameDelta}
	if len(g.dts) != len(want) {
		t.Fatalf("steps = %d, expected %d", len(g.dts), len(want))
	}
	for i := range want {
		if g.dts[i] != want[i] {
			t.Errorf("step %d dt = %v, expected %v", i, g.dts[i], want[i])
		}
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Deps{})

	_, cmd := update(t, m, TickMsg{ID: m.tickID + 1000, Time: time.Now()})
	if cmd != nil {
		t.Error("a stale tick should not reschedule")
	}
	if len(g.dts) != 0 {
		t.Error("a stale tick should not step the game")
	}
}

func TestGameModelKeysBecomeInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Deps{})
	now := time.Unix(1000, 0)

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, runes("f"))
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: now})
	update(t, m, TickMsg{ID: m.tickID, Time: now.Add(time.Millisecond)})

	first := g.inputs[0]
	for _, a := range []core.Action{core.ActionLeft, core.ActionFire, core.ActionSuper} {
		if !first.Has(a) {
			t.Errorf("first step missing %v", a)
		}
	}
	if first.Has(core.ActionRight) {
		t.Error("first step should not have Right")
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("input should clear after a tick, got %v", g.inputs[1].Actions)
	}
}

func TestGameModelPlaysCuesAndSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	sound := &cueRecorder{}
	m := newTestModel(t, g, Deps{Store: store, Sound: sound, Player: "ada"})
	now := time.Unix(1000, 0)

	g.cues = []core.Cue{core.CueShoot, core.CueExplode}
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: now})
	if len(sound.played) != 2 || sound.played[1] != core.CueExplode {
		t.Errorf("played %v, expected [shoot explode]", sound.played)
	}

	g.state = core.GameState{Score: 120, Wave: 3, GameOver: true}
	for i := 1; i <= 3; i++ {
		m, _ = update(t, m, TickMsg{ID: m.tickID, Time: now.Add(time.Duration(i) * time.Millisecond)})
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected exactly 1", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Wave != 3 || scores[0].Player != "ada" {
		t.Errorf("unexpected saved entry: %+v", scores[0])
	}
}

// finishAndRestart ends the current game and presses restart.
func finishAndRestart(t *testing.T, m GameModel, g *fakeGame) GameModel {
	t.Helper()
	now := time.Unix(1000, 0)

	g.state = core.GameState{Score: 10, GameOver: true}
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: now})
	if !m.State().GameOver {
		t.Fatal("model should see the game over")
	}

	m, _ = update(t, m, runes("r"))
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: now.Add(time.Millisecond)})
	return m
}

func TestGameModelRestart(t *testing.T) {
	g := &fakeGame{}
	m := finishAndRestart(t, newTestModel(t, g, Deps{}), g)

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
	if m.scoreSaved {
		t.Error("restart should allow the next score to be saved")
	}
}

func TestGameModelRestartKeepsGivenSeed(t *testing.T) {
	g := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 42
	m := NewGameModel(g, cfg, Deps{})
	m.Init()

	finishAndRestart(t, m, g)

	if len(g.seeds) != 2 || g.seeds[0] != 42 || g.seeds[1] != 42 {
		t.Errorf("seeds = %v, expected [42 42]", g.seeds)
	}
}

func TestGameModelRestartReseedsRandomSeed(t *testing.T) {
	g := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0
	m := NewGameModel(g, cfg, Deps{})
	m.Init()

	if m.fixedSeed {
		t.Fatal("seed 0 should mean a fresh seed per game")
	}
	finishAndRestart(t, m, g)

	if len(g.seeds) != 2 || g.seeds[0] == 0 || g.seeds[1] == 0 {
		t.Errorf("seeds = %v, expected two time based seeds", g.seeds)
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Deps{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state = core.GameState{Paused: true}
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: time.Now()})
	m, cmd := update(t, m, runes("b"))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if cmd != nil {
		t.Error("back inside a session should not quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Deps{})

	m, cmd := update(t, m, runes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Deps{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if g.resized != [2]int{100, 29} {
		t.Errorf("game resized to %v, expected [100 29]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelViewShowsHelp(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Deps{})

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "fire") || !strings.Contains(view, "super") {
		t.Error("view should contain the help bar")
	}
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, &fakeGame{}, Deps{})
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".invaders", "screenshots") {
		t.Errorf("screenshot saved to %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "fake_") {
		t.Errorf("screenshot name %s should start with the game id", filepath.Base(path))
	}
}
