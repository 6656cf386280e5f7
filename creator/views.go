package creator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
)

// topPadding is the number of blank lines the base style puts above the view.
const topPadding = 1

func (m *Model) statusView() string {
	status := "[Loading]"

	switch {
	case m.exported:
		status = "[Exported]"
	case m.ctl.Playing():
		status = "[Playing]"
	case m.ctl.Ready():
		status = "[Paused]"
	}

	text := status + " " + m.ctl.Mode().String()
	if m.ctl.Mode() == authoring.ModeTrim {
		text += " · " + m.ctl.Trim().State().String()
	}

	return m.style.Secondary.Render(text)
}

func (m *Model) trimView() string {
	sel := m.ctl.Trim()

	start, end := "--:--.-", "--:--.-"

	if t, ok := sel.Start(); ok {
		start = timeutil.Precise(t)
	}

	if t, ok := sel.End(); ok {
		end = timeutil.Precise(t)
	}

	return m.style.Hint.Render(fmt.Sprintf("start %s  end %s", start, end))
}

func (m *Model) questionsView() string {
	qs := m.ctl.Questions()
	if len(qs) == 0 {
		return m.style.Hint.Render("No questions yet")
	}

	var s strings.Builder

	for i, q := range qs {
		line := fmt.Sprintf("%s  %s → %s", timeutil.Precise(q.Time), q.Question, q.Answer)

		if i == m.selected {
			line = m.style.Selected.Render(line)
		}

		s.WriteString(line)

		if i < len(qs)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m *Model) pendingView() string {
	t, ok := m.ctl.Pending()
	if !ok {
		return ""
	}

	return m.style.Accent.Render("New question at " + timeutil.Precise(t))
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

	if m.form != nil {
		if _, pending := m.ctl.Pending(); pending {
			return m.help.ShortHelpView([]key.Binding{
				keys.earlier,
				keys.later,
				keys.cancel,
			})
		}

		return ""
	}

	bindings := []key.Binding{keys.togglePlay, keys.back, keys.forward}

	switch m.ctl.Stage() {
	case authoring.StageMode:
		bindings = append(bindings, keys.full, keys.trim)
	case authoring.StageTrimming:
		bindings = append(bindings, keys.markStart, keys.markEnd)

		if m.ctl.Trim().State() == trim.RangeCaptured {
			bindings = append(bindings, keys.apply)
		}
	case authoring.StageEditing:
		bindings = append(bindings, keys.add, keys.up, keys.remove, keys.export)
	case authoring.StageSetup:
	}

	return m.help.ShortHelpView(append(bindings, keys.restart, keys.quit))
}

// sessionLines renders an open session. It records where the tracks are
// drawn so that mouse presses can be mapped onto them.
func (m *Model) sessionLines() []string {
	pos := m.ctl.Position()
	duration := m.ctl.Duration()
	sel := m.ctl.Trim()

	lines := []string{
		m.style.Title.Render(m.ctl.Title()) + " " + m.style.Hint.Render(m.ctl.VideoID()),
		m.statusView(),
		"",
		m.style.Main.Render(timeutil.Precise(pos) + " / " + timeutil.Clock(duration)),
		"",
	}

	m.seekRow = row{x: padding, y: topPadding + len(lines), width: m.progress.Width}
	lines = append(lines, m.progress.ViewAs(sel.Marker(pos, duration)))

	m.rangeRow = row{x: padding, y: topPadding + len(lines), width: m.progress.Width}
	lines = append(lines, m.style.Track.Render(string(renderRange(m.progress.Width, sel, pos, duration))))

	if m.ctl.Mode() == authoring.ModeTrim {
		lines = append(lines, m.trimView())
	}

	lines = append(lines, "")

	switch m.ctl.Stage() {
	case authoring.StageMode:
		lines = append(lines, m.style.Main.Render("Play the full video, or trim it first?"))
	case authoring.StageTrimming:
		lines = append(lines, m.style.Main.Render("Mark where the lesson starts and ends"))
	case authoring.StageEditing:
		lines = append(lines, m.questionsView())
	case authoring.StageSetup:
	}

	if p := m.pendingView(); p != "" {
		lines = append(lines, "", p)
	}

	return lines
}

func (m *Model) View() string {
	var lines []string

	if m.ctl.Stage() == authoring.StageSetup {
		m.seekRow = row{}
		m.rangeRow = row{}

		lines = append(lines, m.style.Title.Render("New lesson"), "")
	} else {
		lines = m.sessionLines()
	}

	if m.form != nil {
		lines = append(lines, "", m.form.View())
	}

	if n := m.noticesView(); n != "" {
		lines = append(lines, "", n)
	}

	if h := m.helpView(); h != "" {
		lines = append(lines, "", h)
	}

	return m.style.Base.Render(strings.Join(lines, "\n"))
}
