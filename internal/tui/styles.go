package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("99")
	mutedColor  = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1).
			MarginBottom(1)

	stageStyle = lipgloss.NewStyle().
			Padding(1, 4)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1).
			MarginTop(1)
)
