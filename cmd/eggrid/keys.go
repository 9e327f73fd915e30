package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the app-level bindings. Arrows and escape are not listed
// here: they go to the engine as host key events.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Add       key.Binding
	Remove    key.Binding
	Theme     key.Binding
	Algorithm key.Binding
	Styles    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove selected")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
		Algorithm: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cycle algorithm")),
		Styles:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "styles overlay")),
	}
}

// ShortHelp implements help.KeyMap for the hint line under the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Algorithm, k.Theme, k.Styles, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap; the expanded view is never shown, the
// glamour overlay covers it.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// engineKeyName maps a terminal key to the name the engine's keyboard
// module understands. Empty means the key is not an engine key.
func engineKeyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "ArrowUp"
	case tea.KeyDown:
		return "ArrowDown"
	case tea.KeyLeft:
		return "ArrowLeft"
	case tea.KeyRight:
		return "ArrowRight"
	case tea.KeyEscape:
		return "Escape"
	}
	return ""
}
