package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/frametile/frametile/internal/config"
	"github.com/frametile/frametile/internal/input"
	"github.com/frametile/frametile/internal/layout"
)

// Cell scaling between the terminal and the engine's canvas units.
// Terminal cells are roughly twice as tall as wide, so a cell maps to a
// 10x20 unit region and squares on screen stay square in units.
const (
	unitsPerCellX = 10
	unitsPerCellY = 20
)

// resizeFlushInterval paces how often accumulated resize deltas are
// applied while resize mode is held.
const resizeFlushInterval = 16 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(resizeFlushInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the interactive front end. It owns the layout engine and
// feeds it commands produced by the input machine.
type Model struct {
	cfg     *config.Config
	styles  Styles
	engine  *layout.Engine
	machine *input.Machine
	keys    keyMap
	help    help.Model

	width  int
	height int
	ready  bool
}

func NewModel(cfg *config.Config) Model {
	return Model{
		cfg:     cfg,
		styles:  NewStyles(cfg.EffectiveTheme()),
		machine: input.New(cfg.ResizeStep),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		canvasW, canvasH := m.canvasUnits()
		if !m.ready {
			m.engine = layout.New(canvasW, canvasH, layout.Options{
				MinFrameSize: m.cfg.MinFrameSize,
				GuardSplits:  m.cfg.GuardMinSplit,
			})
			m.ready = true
		} else {
			m.engine.Apply(layout.CanvasResizedCmd{Width: canvasW, Height: canvasH})
		}
		return m, nil

	case tickMsg:
		if m.ready {
			if cmd, ok := m.machine.FlushResize(); ok {
				m.engine.Apply(cmd)
			}
		}
		return m, tick()

	case tea.KeyMsg:
		s := msg.String()
		if s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.ready {
			return m, nil
		}
		if cmd := m.machine.HandleKey(keyFor(s)); cmd != nil {
			m.engine.Apply(cmd)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	canvasW, canvasH := m.canvasUnits()
	g := paintFrames(m.engine.Frames(), m.engine.ActiveIndex(), canvasW, canvasH, m.width, m.height-1)
	status := m.help.View(m.keys)
	if m.machine.Phase() == input.PhaseModifierHeld {
		status = m.styles.Mode.Render("RESIZE") + " " + status
	}
	return g.styled(m.styles) + "\n" + m.styles.Status.Render(status)
}

// canvasUnits converts the terminal size to engine canvas units,
// keeping one row for the status line.
func (m Model) canvasUnits() (int, int) {
	w := m.width * unitsPerCellX
	h := (m.height - 1) * unitsPerCellY
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
