package creator

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media/mediatest"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
)

const link = "https://youtu.be/dQw4w9WgXcQ"

type memSink map[string][]byte

func (m memSink) Save(name string, data []byte) (string, error) {
	m[name] = data
	return "/lessons/" + name, nil
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg

	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	_, cmd := m.Update(msg)

	return cmd
}

func mouse(m *Model, action tea.MouseAction, x, y int) {
	_, _ = m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: action,
		Button: tea.MouseButtonLeft,
	})
}

func newModel(t *testing.T, mode authoring.Mode) (*Model, *mediatest.Fake, memSink) {
	t.Helper()

	fake := mediatest.New(100)
	sink := memSink{}
	ctl := authoring.New(fake, authoring.Options{})

	m := New(ctl, fake.Events(), Options{
		Sink:  sink,
		Style: ui.NewStyle(false, true),
		Title: "Waves",
		Link:  link,
		Mode:  mode,
	})

	_ = m.Init()
	_, _ = m.Update(eventMsg{ev: media.Event{Kind: media.Ready}})

	require.Equal(t, "dQw4w9WgXcQ", ctl.VideoID())
	require.True(t, ctl.Ready())

	return m, fake, sink
}

func TestInitStartsSession(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeNone)

	assert.Equal(t, "load dQw4w9WgXcQ 0-0", fake.Calls[0])
	assert.Equal(t, authoring.StageMode, m.ctl.Stage())
	assert.True(t, m.ctl.Polling())
	assert.Nil(t, m.form)

	press(m, "f")
	assert.Equal(t, authoring.ModeFull, m.ctl.Mode())

	press(m, "t")
	assert.Equal(t, authoring.ModeFull, m.ctl.Mode())
}

func TestMissingSetupOpensForm(t *testing.T) {
	fake := mediatest.New(100)
	ctl := authoring.New(fake, authoring.Options{})

	m := New(ctl, fake.Events(), Options{Title: "Waves"})
	_ = m.Init()

	assert.NotNil(t, m.form)
	assert.Equal(t, authoring.StageSetup, ctl.Stage())
	assert.Empty(t, fake.Calls)
}

func TestTrimThenQuestionThenExport(t *testing.T) {
	m, fake, sink := newModel(t, authoring.ModeTrim)

	assert.Equal(t, authoring.StageTrimming, m.ctl.Stage())

	fake.Set(10)
	press(m, "s")
	fake.Set(40)
	press(m, "e")
	assert.Equal(t, trim.RangeCaptured, m.ctl.Trim().State())

	press(m, "enter")
	require.Equal(t, authoring.StageEditing, m.ctl.Stage())

	fake.Set(20)
	press(m, "a")
	require.NotNil(t, m.form)

	at, ok := m.ctl.Pending()
	require.True(t, ok)
	assert.InDelta(t, 20, at, 1e-9)

	m.draft.question = "What is a wave?"
	m.draft.answer = "A travelling disturbance"
	_ = m.submitQuestion()

	assert.Nil(t, m.form)
	require.Len(t, m.ctl.Questions(), 1)

	cmd := press(m, "x")
	require.NotNil(t, cmd)
	assert.True(t, m.exported)
	assert.Contains(t, sink, "waves.json")

	_, _ = m.Update(resetMsg{gen: m.resets})
	assert.Equal(t, authoring.StageSetup, m.ctl.Stage())
	assert.NotNil(t, m.form)
	assert.False(t, m.exported)
}

func TestManualResetDropsPendingExportReset(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeFull)

	fake.Set(20)
	press(m, "a")
	m.draft.question = "What is a wave?"
	m.draft.answer = "A travelling disturbance"
	_ = m.submitQuestion()
	require.Len(t, m.ctl.Questions(), 1)

	require.NotNil(t, press(m, "x"))
	require.True(t, m.exported)

	stale := resetMsg{gen: m.resets}

	press(m, "n")
	require.Equal(t, authoring.StageSetup, m.ctl.Stage())

	m.draft.title = "Second"
	m.draft.link = link
	_ = m.start()
	require.Equal(t, "Second", m.ctl.Title())

	_, _ = m.Update(stale)

	assert.Equal(t, "Second", m.ctl.Title())
	assert.NotEqual(t, authoring.StageSetup, m.ctl.Stage())
	assert.Nil(t, m.form)
}

func TestRejectedQuestionKeepsForm(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeFull)

	fake.Set(30)
	press(m, "a")
	require.NotNil(t, m.form)

	m.draft.question = "   "
	_ = m.submitQuestion()

	assert.NotNil(t, m.form)
	assert.Empty(t, m.ctl.Questions())

	press(m, "esc")
	assert.Nil(t, m.form)

	_, ok := m.ctl.Pending()
	assert.False(t, ok)
}

func TestClickSeeksOnRangeTrack(t *testing.T) {
	m, _, _ := newModel(t, authoring.ModeFull)

	_ = m.View()
	require.Positive(t, m.rangeRow.width)

	r := m.rangeRow
	x := r.x + r.column(0.5)

	mouse(m, tea.MouseActionPress, x, r.y)
	mouse(m, tea.MouseActionRelease, x, r.y)

	assert.InDelta(t, 50, m.ctl.Position(), 1.5)
	assert.False(t, m.ctl.Dragging())
}

func TestDragTrimStartHandle(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeTrim)

	fake.Set(10)
	press(m, "s")
	fake.Set(40)
	press(m, "e")

	_ = m.View()

	r := m.rangeRow
	from := r.x + r.column(0.1)
	to := r.x + r.column(0.2)

	mouse(m, tea.MouseActionPress, from, r.y)
	assert.True(t, m.ctl.Dragging())

	mouse(m, tea.MouseActionMotion, to, r.y)
	mouse(m, tea.MouseActionRelease, to, r.y)

	start, ok := m.ctl.Trim().Start()
	require.True(t, ok)
	assert.InDelta(t, 20, start, 1.5)
	assert.False(t, m.ctl.Dragging())

	end, _ := m.ctl.Trim().End()
	assert.InDelta(t, 40, end, 1e-9)
}

func TestTrackLockedAfterTrim(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeTrim)

	fake.Set(10)
	press(m, "s")
	fake.Set(40)
	press(m, "e")
	press(m, "enter")

	_ = m.View()
	mouse(m, tea.MouseActionPress, m.rangeRow.x, m.rangeRow.y)

	assert.False(t, m.ctl.Dragging())
	assert.Empty(t, m.ctl.Board().Active())
}

func TestDeleteKeepsLastQuestion(t *testing.T) {
	m, fake, _ := newModel(t, authoring.ModeFull)

	for _, at := range []float64{10, 20} {
		fake.Set(at)
		press(m, "a")

		m.draft.question = "Q"
		m.draft.answer = "A"
		_ = m.submitQuestion()
	}

	require.Len(t, m.ctl.Questions(), 2)

	press(m, "j")
	assert.Equal(t, 1, m.selected)

	press(m, "d")
	assert.Len(t, m.ctl.Questions(), 1)
	assert.Equal(t, 0, m.selected)

	press(m, "d")
	assert.Len(t, m.ctl.Questions(), 1)
	assert.NotEmpty(t, m.ctl.Board().Active())
}

func TestQuitResetsSession(t *testing.T) {
	m, _, _ := newModel(t, authoring.ModeFull)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, authoring.StageSetup, m.ctl.Stage())
	assert.False(t, m.ctl.Polling())
}

func TestRowMapping(t *testing.T) {
	r := row{x: 2, y: 7, width: 11}

	assert.True(t, r.contains(2, 7))
	assert.True(t, r.contains(12, 7))
	assert.False(t, r.contains(13, 7))
	assert.False(t, r.contains(5, 6))

	assert.InDelta(t, 0, r.frac(0), 1e-9)
	assert.InDelta(t, 0.5, r.frac(7), 1e-9)
	assert.InDelta(t, 1, r.frac(40), 1e-9)
	assert.Equal(t, 5, r.column(0.5))

	assert.False(t, row{}.contains(0, 0))
}

func TestRenderRange(t *testing.T) {
	fake := mediatest.New(100)
	sel := trim.New(fake, "dQw4w9WgXcQ")

	assert.Equal(t, "●──────────", string(renderRange(11, sel, 0, 100)))

	fake.Set(20)
	require.NoError(t, sel.CaptureStart())
	fake.Set(60)
	require.NoError(t, sel.CaptureEnd())

	assert.Equal(t, "──[━━●]────", string(renderRange(11, sel, 50, 100)))
}
