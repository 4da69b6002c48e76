package tui

import "github.com/charmbracelet/bubbles/key"

// HomeKeyMap defines the key bindings for the home view.
type HomeKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

// DefaultHomeKeyMap returns the default key bindings for the home view.
func DefaultHomeKeyMap() HomeKeyMap {
	return HomeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "right"),
			key.WithHelp("enter", "open exercises"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings for the home view.
func (k HomeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

// FullHelp returns the full help bindings for the home view.
func (k HomeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// PageKeyMap defines the key bindings for a group page.
type PageKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// DefaultPageKeyMap returns the default key bindings for a group page.
func DefaultPageKeyMap() PageKeyMap {
	return PageKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to home"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings for a group page.
func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp returns the full help bindings for a group page.
func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
