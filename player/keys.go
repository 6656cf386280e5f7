package player

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	back       key.Binding
	forward    key.Binding
	reveal     key.Binding
	next       key.Binding
	dismiss    key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	back: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "back"),
	),
	forward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "forward"),
	),
	reveal: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "show answer"),
	),
	next: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	dismiss: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear notices"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
