package invaders

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MeterRow is the grid row the meter is drawn on.
const MeterRow = 1

const (
	meterFill   = "="
	meterPrompt = "Press F!"
)

// SuperMeter charges with enemy kills. Once full it is ready: the prompt is
// shown and the filled bar blinks until the super attack is spent.
type SuperMeter struct {
	charge     int
	max        int
	ready      bool
	visible    bool
	flashTimer *core.Timer
}

// NewSuperMeter creates an empty meter.
func NewSuperMeter(cfg config.MeterConfig) *SuperMeter {
	return &SuperMeter{
		max:        cfg.Max,
		visible:    true,
		flashTimer: core.NewTimer(cfg.FlashInterval()),
	}
}

// IncrementMeter adds one charge. Reaching the maximum makes the meter ready;
// further increments are ignored until Reset.
func (m *SuperMeter) IncrementMeter() {
	if m.ready {
		return
	}
	m.charge++
	if m.charge >= m.max {
		m.charge = m.max
		m.ready = true
	}
}

// Update drives the blink. Visibility toggles each time the flash timer
// fires while the meter is ready and stays on otherwise.
func (m *SuperMeter) Update(dt time.Duration) {
	m.flashTimer.Update(dt)
	if m.ready && m.flashTimer.Ready() {
		m.visible = !m.visible
		m.flashTimer.Reset()
	}
}

// Reset empties the meter.
func (m *SuperMeter) Reset() {
	m.charge = 0
	m.ready = false
	m.visible = true
	m.flashTimer.Reset()
}

// Ready reports whether the super attack can be used.
func (m *SuperMeter) Ready() bool {
	return m.ready
}

// Charge returns the current charge.
func (m *SuperMeter) Charge() int {
	return m.charge
}

// Max returns the charge needed to become ready.
func (m *SuperMeter) Max() int {
	return m.max
}

// Visible reports whether the filled part of the bar is currently shown.
func (m *SuperMeter) Visible() bool {
	return m.visible
}

// Label renders the meter line, e.g. "SUPER: [===       ] ".
func (m *SuperMeter) Label() string {
	fill := meterFill
	if !m.visible {
		fill = " "
	}
	prompt := ""
	if m.ready {
		prompt = meterPrompt
	}
	return fmt.Sprintf("SUPER: [%s%s] %s",
		strings.Repeat(fill, m.charge),
		strings.Repeat(" ", m.max-m.charge),
		prompt)
}

// Draw paints the meter line at the left of MeterRow.
func (m *SuperMeter) Draw(dst *core.Screen) {
	c := core.ColorCyan
	if m.ready {
		c = core.ColorBrightCyan
	}
	dst.DrawTextColored(0, MeterRow, m.Label(), c)
}
