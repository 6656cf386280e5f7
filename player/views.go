package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/playback"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
)

// fraction returns how far pos is through [start, end].
func fraction(pos, start, end float64) float64 {
	if end <= start {
		return 0
	}

	return min(max((pos-start)/(end-start), 0), 1)
}

func (m *Model) playingView() string {
	var s strings.Builder

	l := m.ctl.Lesson()
	r := m.ctl.Bounds()
	pos := m.ctl.Position()

	status := "[Playing]"
	if m.ctl.Paused() {
		status = "[Paused]"
	}

	answered := 0

	for i := range l.Questions {
		if m.ctl.Answered(i) {
			answered++
		}
	}

	s.WriteString(m.style.Title.Render(l.Title) + " ")
	s.WriteString(m.style.Secondary.Render(status))
	s.WriteString(m.style.Hint.Render(
		fmt.Sprintf(" (%d/%d)", answered, len(l.Questions)),
	))
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(
		timeutil.Clock(pos-r.Start) + " / " + timeutil.Clock(r.End-r.Start),
	))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(fraction(pos, r.Start, r.End)))

	return s.String()
}

func (m *Model) questionView() string {
	q, revealed, ok := m.ctl.Question()
	if !ok {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.style.Accent.Render("Question at " + timeutil.Clock(q.Time)))
	s.WriteString("\n" + m.style.Main.Render(q.Question))

	if revealed {
		s.WriteString("\n\n" + m.style.Secondary.Render(q.Answer))
	}

	return s.String()
}

func (m *Model) summaryView() string {
	if m.summary == nil {
		return m.style.Main.Render("The lesson is over")
	}

	table, err := ui.Table(m.summary.Table())
	if err != nil {
		table = err.Error()
	}

	return m.style.Main.Render(m.summary.Score()) + "\n\n" + table
}

func (m *Model) noticesView() string {
	active := m.ctl.Board().Active()

	lines := make([]string, 0, len(active))

	for _, n := range active {
		if n.Level == notice.Error {
			lines = append(lines, m.style.Error.Render("✗ "+n.Text))
			continue
		}

		lines = append(lines, m.style.Accent.Render("✓ "+n.Text))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) helpView() string {
	keys := defaultKeymap

	var bindings []key.Binding

	switch m.ctl.State() {
	case playback.Playing:
		bindings = []key.Binding{keys.togglePlay, keys.back, keys.forward}
	case playback.QuestionGate:
		if _, revealed, _ := m.ctl.Question(); !revealed {
			bindings = append(bindings, keys.reveal)
		}

		bindings = append(bindings, keys.next)
	case playback.Ended:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "summary")),
		}
	case playback.SummaryShown:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "another lesson")),
		}
	case playback.AwaitingFile:
		return ""
	}

	return m.help.ShortHelpView(append(bindings, keys.quit))
}

func (m *Model) View() string {
	var sections []string

	switch m.ctl.State() {
	case playback.AwaitingFile:
		sections = append(sections, m.style.Title.Render("Open a lesson"))
	case playback.Playing:
		sections = append(sections, m.playingView())
	case playback.QuestionGate:
		sections = append(sections, m.playingView(), m.questionView())
	case playback.Ended, playback.SummaryShown:
		sections = append(sections, m.playingView(), m.summaryView())
	}

	if m.form != nil {
		sections = append(sections, m.form.View())
	}

	if n := m.noticesView(); n != "" {
		sections = append(sections, n)
	}

	if h := m.helpView(); h != "" {
		sections = append(sections, h)
	}

	return m.style.Base.Render(strings.Join(sections, "\n\n"))
}
