// Package player is the interactive lesson viewer: it plays a lesson file and
// stops at every question until the viewer continues
package player

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/playback"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/summary"
)

const (
	padding  = 2
	maxWidth = 80

	noticeRefresh = time.Second
)

type (
	eventMsg struct {
		ev media.Event
	}

	noticeMsg struct{}
)

// Options configures the viewer.
type Options struct {
	Style ui.Style
	// File is opened straight away when set.
	File string
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctl      *playback.Controller
	events   <-chan media.Event
	form     *huh.Form
	summary  *summary.Summary
	help     help.Model
	progress progress.Model
	style    ui.Style
	path     string
}

// New returns a viewer driving ctl. events is the event stream of the media
// player ctl was created with.
func New(
	ctl *playback.Controller,
	events <-chan media.Event,
	opts Options,
) *Model {
	m := &Model{
		ctl:    ctl,
		events: events,
		style:  opts.Style,
		path:   opts.File,
		help:   help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}

	m.progress.Width = maxWidth - padding*2

	return m
}

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

	if m.path != "" {
		cmds = append(cmds, m.open())
	} else {
		cmds = append(cmds, m.openFileForm())
	}

	return tea.Batch(cmds...)
}

// open loads the lesson at path. The file form is shown again when the file
// cannot be read or parsed.
func (m *Model) open() tea.Cmd {
	data, err := os.ReadFile(strings.TrimSpace(m.path))
	if err != nil {
		m.ctl.Board().Error(err)
		return m.openFileForm()
	}

	cmd, err := m.ctl.Load(data)
	if err != nil {
		return m.openFileForm()
	}

	m.form = nil

	return cmd
}

func (m *Model) openFileForm() tea.Cmd {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Lesson file").
				Placeholder("lesson.json").
				Value(&m.path),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

// back releases the lesson and asks for the next one.
func (m *Model) back() tea.Cmd {
	m.ctl.ReturnToStart()

	m.summary = nil
	m.path = ""

	return m.openFileForm()
}
