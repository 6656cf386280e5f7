package player

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/playback"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/poll"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case poll.TickMsg:
		return m, m.ctl.Tick(msg)

	case eventMsg:
		m.ctl.HandleEvent(msg.ev)
		return m, waitForEvent(m.events)

	case noticeMsg:
		m.ctl.Board().Expire()
		return m, refreshNotices()

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) && (m.form == nil || msg.String() == "ctrl+c") {
			m.ctl.ReturnToStart()
			return m, tea.Quit
		}

		if m.form == nil {
			return m, m.handleKey(msg)
		}
	}

	if m.form != nil {
		return m, m.updateForm(msg)
	}

	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.open()
	case huh.StateAborted:
		return tea.Quit
	case huh.StateNormal:
	}

	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := defaultKeymap

	if key.Matches(msg, keys.dismiss) {
		m.ctl.Board().DismissAll()
		return nil
	}

	switch m.ctl.State() {
	case playback.Playing:
		switch {
		case key.Matches(msg, keys.togglePlay):
			_ = m.ctl.TogglePause()
		case key.Matches(msg, keys.back):
			_ = m.ctl.Seek(-m.ctl.SeekStep())
		case key.Matches(msg, keys.forward):
			_ = m.ctl.Seek(m.ctl.SeekStep())
		}

	case playback.QuestionGate:
		switch {
		case key.Matches(msg, keys.reveal):
			_ = m.ctl.Reveal()
		case key.Matches(msg, keys.next):
			cmd, _ := m.ctl.Continue()
			return cmd
		}

	case playback.Ended:
		if key.Matches(msg, keys.next) {
			s, err := m.ctl.ViewSummary()
			if err == nil {
				m.summary = s
			}
		}

	case playback.SummaryShown:
		if key.Matches(msg, keys.next) {
			return m.back()
		}

	case playback.AwaitingFile:
	}

	return nil
}
