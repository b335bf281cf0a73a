package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/motifui/motif/internal/style"
)

// View renders the element's live record as a terminal card. Terminal cells
// are coarse, so the mapping is deliberately approximate: rect size scales to
// columns and rows, opacity dims the fill toward black, any border width
// above zero draws a one-cell border.
func (m Model) View() string {
	if m.done {
		return ""
	}

	rec := m.engine.Live()

	card := lipgloss.NewStyle().
		Background(lipgloss.Color(effectiveFill(rec).Hex())).
		Foreground(lipgloss.Color(rec.Text.Color.Hex())).
		Width(cells(rec.Rect.Size.X*rec.Transform.Scale.X, 8, 60)).
		Height(cells(rec.Rect.Size.Y*rec.Transform.Scale.Y/4, 1, 12)).
		Align(lipgloss.Center, lipgloss.Center)

	if rec.Border.Width > 0 {
		border := lipgloss.NormalBorder()
		if rec.Fill.Radius > 0 {
			border = lipgloss.RoundedBorder()
		}
		card = card.
			BorderStyle(border).
			BorderForeground(lipgloss.Color(rec.Border.Color.Hex()))
	}

	label := m.element.ID
	status := statusStyle.Render(fmt.Sprintf(
		"state:%s  loop:%t  timeline:%t",
		m.engine.ActiveState(),
		m.engine.LoopActive(),
		m.engine.TimelineActive(),
	))
	help := helpStyle.Render("h hover • p press • c check • n normal • s show • x hide • q quit")

	var sections []string
	sections = append(sections, titleStyle.Render("motif demo"))
	sections = append(sections, stageStyle.Render(card.Render(label)))
	sections = append(sections, status, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// effectiveFill folds opacity into the fill color, dimming toward black the
// way a compositing host would fade the layer.
func effectiveFill(rec style.Record) style.RGBA {
	o := rec.Fill.Opacity
	c := rec.Fill.Color
	return style.RGBA{R: c.R * o, G: c.G * o, B: c.B * o, A: 1}
}

func cells(v, min, max float64) int {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return int(v)
}
