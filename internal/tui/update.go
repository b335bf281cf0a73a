package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages: frame ticks advance the engine by the
// measured delta, key presses map onto engine operations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		dt := m.frameInterval()
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now
		m.engine.Advance(dt)

		if m.hiding != nil && m.hiding.Settled() {
			m.done = true
			return m, tea.Quit
		}
		return m, m.frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.engine.Stop()
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hover):
			m.engine.PlayState("hover")
		case key.Matches(msg, m.keys.Press):
			m.engine.PlayState("press")
		case key.Matches(msg, m.keys.Check):
			m.engine.PlayState("check")
		case key.Matches(msg, m.keys.Normal):
			m.engine.PlayState("normal")
		case key.Matches(msg, m.keys.Show):
			m.hiding = nil
			m.engine.PlayShow()
		case key.Matches(msg, m.keys.Hide):
			// Quit once the exit tween settles.
			m.hiding = m.engine.PlayHide()
		}
		return m, nil
	}

	return m, nil
}
