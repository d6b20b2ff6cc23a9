package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the monitor dashboard.
type KeyMap struct {
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Faster: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "poll faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "poll slower"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
