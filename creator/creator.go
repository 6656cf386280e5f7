// Package creator is the interactive lesson editor: it plays a video, lets the
// author trim it and place questions, and exports the lesson
package creator

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
)

const (
	padding  = 2
	maxWidth = 80

	// noticeRefresh is how often expired notices are cleared while nothing
	// is being polled.
	noticeRefresh = time.Second
)

type (
	eventMsg struct {
		ev media.Event
	}

	// resetMsg fires once an exported lesson has been on screen for the
	// reset delay. gen is the reset generation the export was made in.
	resetMsg struct {
		gen int
	}

	noticeMsg struct{}
)

// Options configures the editor.
type Options struct {
	Sink  lesson.Sink
	Style ui.Style
	// Title and Link start a session straight away when both are set.
	Title string
	Link  string
	// Mode is chosen right after the session starts unless it is ModeNone.
	Mode     authoring.Mode
	SeekStep float64
}

// draft holds the values bound to the open form.
type draft struct {
	title    string
	link     string
	question string
	answer   string
}

// Model is the bubbletea model of the editor.
type Model struct {
	ctl      *authoring.Controller
	events   <-chan media.Event
	sink     lesson.Sink
	form     *huh.Form
	draft    *draft
	help     help.Model
	progress progress.Model
	style    ui.Style
	mode     authoring.Mode
	seekStep float64
	seekRow  row
	rangeRow row
	selected int
	exported bool
	resets   int
}

// New returns an editor driving ctl. events is the event stream of the media
// player ctl was created with.
func New(
	ctl *authoring.Controller,
	events <-chan media.Event,
	opts Options,
) *Model {
	if opts.SeekStep <= 0 {
		opts.SeekStep = 5
	}

	m := &Model{
		ctl:      ctl,
		events:   events,
		sink:     opts.Sink,
		style:    opts.Style,
		mode:     opts.Mode,
		seekStep: opts.SeekStep,
		help:     help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		draft: &draft{
			title: opts.Title,
			link:  opts.Link,
		},
	}

	m.progress.Width = maxWidth - padding*2

	return m
}

// waitForEvent delivers the next media event as an eventMsg.
func waitForEvent(events <-chan media.Event) tea.Cmd {
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}

		return eventMsg{ev: ev}
	}
}

func refreshNotices() tea.Cmd {
	return tea.Tick(noticeRefresh, func(time.Time) tea.Msg {
		return noticeMsg{}
	})
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForEvent(m.events),
		refreshNotices(),
	}

	if m.draft.title != "" && m.draft.link != "" {
		cmds = append(cmds, m.start())
	} else {
		cmds = append(cmds, m.openSetupForm())
	}

	return tea.Batch(cmds...)
}

// start opens a session from the setup values. The setup form is shown
// again when they are rejected.
func (m *Model) start() tea.Cmd {
	err := m.ctl.Start(m.draft.title, m.draft.link)
	if err != nil {
		return m.openSetupForm()
	}

	m.form = nil
	m.selected = 0

	if m.mode != authoring.ModeNone {
		_ = m.ctl.ChooseMode(m.mode)
	}

	return m.ctl.StartPolling()
}

func (m *Model) openSetupForm() tea.Cmd {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Lesson title").
				Value(&m.draft.title),
			huh.NewInput().
				Title("YouTube link").
				Placeholder("https://youtu.be/...").
				Value(&m.draft.link),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

func (m *Model) openQuestionForm() tea.Cmd {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Question").
				Value(&m.draft.question),
			huh.NewText().
				Title("Answer").
				Lines(3).
				Value(&m.draft.answer),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

// submitQuestion adds the pending question from the form values. The form is
// reopened with the same values when they are rejected.
func (m *Model) submitQuestion() tea.Cmd {
	err := m.ctl.CommitQuestion(m.draft.question, m.draft.answer)
	if err != nil {
		return m.openQuestionForm()
	}

	m.form = nil
	m.draft.question = ""
	m.draft.answer = ""

	return nil
}

func (m *Model) cancelQuestion() {
	_ = m.ctl.CancelQuestion()

	m.form = nil
	m.draft.question = ""
	m.draft.answer = ""
}

func (m *Model) export() tea.Cmd {
	if m.exported {
		return nil
	}

	_, err := m.ctl.Export(m.sink)
	if err != nil {
		return nil
	}

	m.exported = true
	gen := m.resets

	return tea.Tick(m.ctl.ResetDelay(), func(time.Time) tea.Msg {
		return resetMsg{gen: gen}
	})
}

// reset discards the session and asks for the next lesson.
func (m *Model) reset() tea.Cmd {
	m.ctl.Reset()

	// A pending post-export reset belongs to the discarded session.
	m.resets++
	m.exported = false
	m.selected = 0
	m.mode = authoring.ModeNone
	m.draft = &draft{}

	return m.openSetupForm()
}
