package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"peoplepicker/internal/ui/searchselect"
)

// keyMap adds the application bindings to the widget's
type keyMap struct {
	searchselect.KeyMap
	Help key.Binding
	Quit key.Binding
}

func newKeyMap(widget searchselect.KeyMap) keyMap {
	return keyMap{
		KeyMap: widget,
		// printable keys belong to the text input
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Help, k.Quit})
}
