package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/frametile/frametile/internal/input"
)

// keyFor translates a bubbletea key string into the input machine's
// key alphabet. Unknown keys map to KeyOther so they still cancel a
// pending selection.
func keyFor(s string) input.Key {
	switch s {
	case "x":
		return input.KeyModifier
	case "up", "k":
		return input.KeyUp
	case "down", "j":
		return input.KeyDown
	case "left", "h":
		return input.KeyLeft
	case "right", "l":
		return input.KeyRight
	case "2":
		return input.KeySplitHorizontal
	case "3":
		return input.KeySplitVertical
	case "0":
		return input.KeyClose
	case "1":
		return input.KeyKeepOnly
	default:
		return input.KeyOther
	}
}

type keyMap struct {
	SplitH key.Binding
	SplitV key.Binding
	Close  key.Binding
	Only   key.Binding
	Resize key.Binding
	Move   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SplitH: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "split ─")),
		SplitV: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "split │")),
		Close:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "close")),
		Only:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "only")),
		Resize: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "resize")),
		Move:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "move")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitH, k.SplitV, k.Close, k.Only, k.Resize, k.Move, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitH, k.SplitV, k.Close, k.Only},
		{k.Resize, k.Move, k.Quit},
	}
}
