package creator

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	back       key.Binding
	forward    key.Binding
	full       key.Binding
	trim       key.Binding
	markStart  key.Binding
	markEnd    key.Binding
	apply      key.Binding
	add        key.Binding
	earlier    key.Binding
	later      key.Binding
	cancel     key.Binding
	up         key.Binding
	down       key.Binding
	remove     key.Binding
	export     key.Binding
	dismiss    key.Binding
	restart    key.Binding
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
	full: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "full video"),
	),
	trim: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "trim video"),
	),
	markStart: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "set start"),
	),
	markEnd: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "set end"),
	),
	apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply trim"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add question"),
	),
	earlier: key.NewBinding(
		key.WithKeys("ctrl+left", "pgup"),
		key.WithHelp("ctrl+←", "earlier"),
	),
	later: key.NewBinding(
		key.WithKeys("ctrl+right", "pgdown"),
		key.WithHelp("ctrl+→", "later"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "select"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	dismiss: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear notices"),
	),
	restart: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new lesson"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
