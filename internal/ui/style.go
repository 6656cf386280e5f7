package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Style is the set of lipgloss styles used by the interactive screens.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Track     lipgloss.Style
	Handle    lipgloss.Style
	Selected  lipgloss.Style
}

// NewStyle returns the screen styles for the configured theme. With noColor
// set only layout is applied.
func NewStyle(dark, noColor bool) Style {
	main := lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#f2f2f2"}
	secondary := lipgloss.AdaptiveColor{Light: "#5c5c5c", Dark: "#b3b3b3"}
	accent := lipgloss.Color("#2e86de")
	warn := lipgloss.Color("#e74c3c")
	mark := lipgloss.Color("#f39c12")

	if dark {
		accent = lipgloss.Color("#54a0ff")
		warn = lipgloss.Color("#ff6b6b")
		mark = lipgloss.Color("#feca57")
	}

	s := Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Error:     lipgloss.NewStyle().Foreground(warn),
		Track:     lipgloss.NewStyle().Foreground(secondary),
		Handle:    lipgloss.NewStyle().Bold(true).Foreground(mark),
		Selected:  lipgloss.NewStyle().Reverse(true),
	}

	if noColor {
		plain := lipgloss.NewStyle()

		s.Title = plain.Bold(true)
		s.Main = plain.Bold(true)
		s.Secondary = plain
		s.Accent = plain
		s.Error = plain
		s.Track = plain
		s.Handle = plain.Bold(true)
	}

	return s
}
