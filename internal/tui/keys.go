package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/user/homeportal/internal/render"
)

type keyMap struct {
	Language key.Binding
	Theme    key.Binding
	Matrix   key.Binding
	Refresh  key.Binding
	Scroll   key.Binding
	Quit     key.Binding
}

// newKeyMap builds the bindings with help text in the chrome's locale.
func newKeyMap(c render.ChromeView) keyMap {
	return keyMap{
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", c.HelpLanguage)),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", c.HelpTheme)),
		Matrix:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", c.HelpTable)),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", c.HelpRefresh)),
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", c.HelpScroll)),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", c.HelpQuit)),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Language, k.Theme, k.Matrix, k.Refresh, k.Scroll, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
