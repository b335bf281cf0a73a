// Package tui is the demo visual host for the animation engine: a Bubbletea
// program that owns one element, drives the engine from a frame tick, and
// renders the live style record as a terminal card. The engine never draws
// on its own; the host applies whatever record it produced each frame.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/motifui/motif/internal/config"
	"github.com/motifui/motif/internal/logger"
	"github.com/motifui/motif/internal/motion"
	"github.com/motifui/motif/internal/style"
)

type frameMsg time.Time

type keyMap struct {
	Hover  key.Binding
	Press  key.Binding
	Check  key.Binding
	Normal key.Binding
	Show   key.Binding
	Hide   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hover:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hover")),
		Press:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "press")),
		Check:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check")),
		Normal: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "normal")),
		Show:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "replay show")),
		Hide:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the Bubbletea state for the demo host.
type Model struct {
	engine  *motion.Engine
	element *config.Element
	keys    keyMap

	fps       int
	lastFrame time.Time
	hiding    *motion.Handle
	width     int
	done      bool
}

// NewModel builds a demo host around the given element definition.
func NewModel(el *config.Element, log *logger.Logger, fps int) Model {
	if fps <= 0 {
		fps = 30
	}

	engine := motion.New(log)
	engine.SetBaseline(style.Merge(style.Default(), el.Base))
	engine.Setup(el.Animation)

	return Model{
		engine:  engine,
		element: el,
		keys:    defaultKeyMap(),
		fps:     fps,
	}
}

// Engine exposes the underlying engine, mainly for tests.
func (m Model) Engine() *motion.Engine {
	return m.engine
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the entrance sequence and the frame loop.
func (m Model) Init() tea.Cmd {
	m.engine.PlayShow()
	return m.frameCmd()
}
