package creator

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
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
		m.handleEvent(msg.ev)
		return m, waitForEvent(m.events)

	case noticeMsg:
		m.ctl.Board().Expire()
		return m, refreshNotices()

	case resetMsg:
		if msg.gen != m.resets || !m.exported {
			return m, nil
		}

		return m, m.reset()

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) && (m.form == nil || msg.String() == "ctrl+c") {
			m.ctl.Reset()
			return m, tea.Quit
		}

		if m.form != nil {
			return m, m.handleFormKey(msg)
		}

		return m, m.handleKey(msg)
	}

	if m.form != nil {
		return m, m.updateForm(msg)
	}

	return m, nil
}

func (m *Model) handleEvent(ev media.Event) {
	m.ctl.HandleEvent(ev)

	if ev.Kind == media.Ready {
		slog.Info("video ready", slog.String("video_id", m.ctl.VideoID()))
	}
}

// handleFormKey routes keys while the setup or question form is open.
func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	_, pending := m.ctl.Pending()

	if pending {
		switch {
		case key.Matches(msg, defaultKeymap.cancel):
			m.cancelQuestion()
			return nil
		case key.Matches(msg, defaultKeymap.earlier):
			_ = m.ctl.NudgeQuestion(-1)
			return nil
		case key.Matches(msg, defaultKeymap.later):
			_ = m.ctl.NudgeQuestion(1)
			return nil
		}
	}

	return m.updateForm(msg)
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, pending := m.ctl.Pending(); pending {
			return m.submitQuestion()
		}

		return m.start()
	case huh.StateAborted:
		if _, pending := m.ctl.Pending(); pending {
			m.cancelQuestion()
			return nil
		}

		return m.openSetupForm()
	case huh.StateNormal:
	}

	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := defaultKeymap

	switch {
	case key.Matches(msg, keys.dismiss):
		m.ctl.Board().DismissAll()

	case key.Matches(msg, keys.restart):
		return m.reset()

	case key.Matches(msg, keys.togglePlay):
		_ = m.ctl.TogglePlay()

	case key.Matches(msg, keys.back):
		_ = m.ctl.SeekBy(-m.seekStep)

	case key.Matches(msg, keys.forward):
		_ = m.ctl.SeekBy(m.seekStep)
	}

	switch m.ctl.Stage() {
	case authoring.StageMode:
		switch {
		case key.Matches(msg, keys.full):
			_ = m.ctl.ChooseMode(authoring.ModeFull)
		case key.Matches(msg, keys.trim):
			_ = m.ctl.ChooseMode(authoring.ModeTrim)
		}

	case authoring.StageTrimming:
		switch {
		case key.Matches(msg, keys.markStart):
			_ = m.ctl.CaptureTrimStart()
		case key.Matches(msg, keys.markEnd):
			_ = m.ctl.CaptureTrimEnd()
		case key.Matches(msg, keys.apply):
			_ = m.ctl.FinalizeTrim()
		}

	case authoring.StageEditing:
		return m.handleEditingKey(msg)

	case authoring.StageSetup:
	}

	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	keys := defaultKeymap
	n := len(m.ctl.Questions())

	switch {
	case key.Matches(msg, keys.add):
		if m.ctl.AddQuestion() == nil {
			return m.openQuestionForm()
		}

	case key.Matches(msg, keys.up):
		m.selected = max(m.selected-1, 0)

	case key.Matches(msg, keys.down):
		m.selected = max(min(m.selected+1, n-1), 0)

	case key.Matches(msg, keys.remove):
		if m.selected < n {
			err := m.ctl.DeleteQuestion(m.ctl.Questions()[m.selected].ID)
			if err == nil {
				m.selected = max(min(m.selected, n-2), 0)
			}
		}

	case key.Matches(msg, keys.export):
		return m.export()
	}

	return nil
}

// handleMouse turns presses and drags on the tracks into seeks and trim
// handle drags.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.form != nil || !m.ctl.TrackInteractive() {
			return nil
		}

		duration := m.ctl.Duration()
		sel := m.ctl.Trim()

		switch {
		case m.seekRow.contains(msg.X, msg.Y):
			if m.ctl.BeginDrag(authoring.HandleSeek, seekMapper(m.seekRow, sel, duration)) == nil {
				_ = m.ctl.DragTo(msg.X)
			}

		case m.rangeRow.contains(msg.X, msg.Y):
			h, ok := handleAt(m.rangeRow, sel, duration, msg.X)
			if !ok {
				h = authoring.HandleSeek
			}

			if m.ctl.BeginDrag(h, rangeMapper(m.rangeRow, duration)) == nil {
				_ = m.ctl.DragTo(msg.X)
			}
		}

	case tea.MouseActionMotion:
		if m.ctl.Dragging() {
			_ = m.ctl.DragTo(msg.X)
		}

	case tea.MouseActionRelease:
		if m.ctl.Dragging() {
			_ = m.ctl.EndDrag(msg.X)
		}
	}

	return nil
}
