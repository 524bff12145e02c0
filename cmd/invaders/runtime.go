package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/sound"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// modeIDs maps the mode names accepted on the command line to game IDs.
var modeIDs = map[string]string{
	"classic": "invaders",
	"endless": "invaders_endless",
}

// resolveMode accepts either a mode name or a game ID.
func resolveMode(arg string) (string, bool) {
	if id, ok := modeIDs[arg]; ok {
		return id, true
	}
	for _, id := range modeIDs {
		if id == arg {
			return id, true
		}
	}
	return "", false
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openDeps opens the score store and the audio device. Both are optional:
// failures are logged and play continues without them. The returned func
// releases whatever was opened.
func openDeps() (tui.Deps, func()) {
	var deps tui.Deps

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		deps.Store = store
	}

	player := sound.New(!flagMute)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	deps.Sound = player

	if u := os.Getenv("USER"); u != "" {
		deps.Player = u
	}

	return deps, func() {
		player.Close()
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("could not close scores database", "error", err)
			}
		}
	}
}
