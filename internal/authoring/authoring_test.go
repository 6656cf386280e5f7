package authoring_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media/mediatest"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeline"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
)

const link = "https://youtu.be/dQw4w9WgXcQ"

type memSink struct {
	files map[string][]byte
}

func (m *memSink) Save(name string, data []byte) (string, error) {
	if m.files == nil {
		m.files = make(map[string][]byte)
	}

	m.files[name] = data

	return "/exports/" + name, nil
}

type recorder struct {
	paths []string
}

func (r *recorder) RecordExport(_ *lesson.Lesson, path string) error {
	r.paths = append(r.paths, path)
	return nil
}

func sequentialIDs(t *testing.T) {
	t.Helper()

	n := 0
	orig := lesson.NewID

	lesson.NewID = func() string {
		n++
		return fmt.Sprintf("q-%d", n)
	}

	t.Cleanup(func() {
		lesson.NewID = orig
	})
}

func texts(b *notice.Board) []string {
	var out []string

	for _, n := range b.Active() {
		out = append(out, n.Text)
	}

	return out
}

func start(t *testing.T, mode authoring.Mode) (*authoring.Controller, *mediatest.Fake) {
	t.Helper()

	fake := mediatest.New(212)
	c := authoring.New(fake, authoring.Options{})

	require.NoError(t, c.Start("Forces", link))
	require.NoError(t, c.ChooseMode(mode))

	c.HandleEvent(media.Event{Kind: media.Ready})
	require.NoError(t, c.TogglePlay())

	return c, fake
}

func addQuestion(t *testing.T, c *authoring.Controller, fake *mediatest.Fake, at float64, q, a string) {
	t.Helper()

	fake.Set(at)
	require.NoError(t, c.AddQuestion())
	require.NoError(t, c.CommitQuestion(q, a))
}

func TestFullVideoQuestionsAreReordered(t *testing.T) {
	sequentialIDs(t)

	c, fake := start(t, authoring.ModeFull)

	assert.Equal(t, "dQw4w9WgXcQ", c.VideoID())
	assert.Equal(t, "load dQw4w9WgXcQ 0-0", fake.Calls[0])
	assert.True(t, c.CanAddQuestion())
	assert.Equal(t, authoring.StageEditing, c.Stage())

	addQuestion(t, c, fake, 30, "Q1", "A1")
	addQuestion(t, c, fake, 10, "Q2", "A2")

	expected := []lesson.Question{
		{ID: "q-2", Time: 10, Question: "Q2", Answer: "A2"},
		{ID: "q-1", Time: 30, Question: "Q1", Answer: "A1"},
	}

	if diff := cmp.Diff(expected, c.Questions()); diff != "" {
		t.Fatalf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestQuestionsStayClearOfTheEnd(t *testing.T) {
	fake := mediatest.New(100)
	c := authoring.New(fake, authoring.Options{
		PollInterval: 200 * time.Millisecond,
		EndMargin:    0.25,
	})

	require.NoError(t, c.Start("Forces", link))
	require.NoError(t, c.ChooseMode(authoring.ModeFull))
	c.HandleEvent(media.Event{Kind: media.Ready})
	require.NoError(t, c.TogglePlay())

	fake.Set(99.8)
	assert.ErrorIs(t, c.AddQuestion(), timeline.ErrTooLate)

	addQuestion(t, c, fake, 99.5, "Q", "A")
	assert.Len(t, c.Questions(), 1)
}

func TestStartRejectsBadInput(t *testing.T) {
	fake := mediatest.New(100)
	c := authoring.New(fake, authoring.Options{})

	assert.ErrorIs(t, c.Start("  ", link), lesson.ErrTitleRequired)
	assert.ErrorIs(t, c.Start("Title", "https://vimeo.com/123"), authoring.ErrInvalidLocator)
	assert.Empty(t, fake.Calls)
	assert.Equal(t, authoring.StageSetup, c.Stage())
	assert.Len(t, c.Board().Active(), 2)

	fake.LoadErr = errors.New("no network")
	assert.Error(t, c.Start("Title", link))
	assert.Equal(t, authoring.StageSetup, c.Stage())

	fake.LoadErr = nil
	require.NoError(t, c.Start("Title", link))
	assert.ErrorIs(t, c.Start("Other", link), authoring.ErrSessionActive)
}

func TestModeIsLockedUntilReset(t *testing.T) {
	c := authoring.New(mediatest.New(100), authoring.Options{})

	assert.ErrorIs(t, c.ChooseMode(authoring.ModeFull), authoring.ErrNoSession)

	require.NoError(t, c.Start("Title", link))
	assert.Equal(t, authoring.StageMode, c.Stage())
	assert.ErrorIs(t, c.ChooseMode(authoring.ModeNone), authoring.ErrUnknownMode)

	require.NoError(t, c.ChooseMode(authoring.ModeTrim))
	assert.ErrorIs(t, c.ChooseMode(authoring.ModeFull), authoring.ErrModeLocked)
	assert.Equal(t, authoring.ModeTrim, c.Mode())

	c.Reset()

	require.NoError(t, c.Start("Title", link))
	require.NoError(t, c.ChooseMode(authoring.ModeFull))
}

func TestParseMode(t *testing.T) {
	m, err := authoring.ParseMode(" Trim ")
	require.NoError(t, err)
	assert.Equal(t, authoring.ModeTrim, m)

	_, err = authoring.ParseMode("half")
	assert.ErrorIs(t, err, authoring.ErrUnknownMode)
}

func TestAddQuestionGating(t *testing.T) {
	fake := mediatest.New(212)
	c := authoring.New(fake, authoring.Options{})

	assert.False(t, c.CanAddQuestion())
	assert.ErrorIs(t, c.AddQuestion(), authoring.ErrNoSession)

	require.NoError(t, c.Start("Title", link))
	assert.ErrorIs(t, c.AddQuestion(), authoring.ErrNoMode)

	require.NoError(t, c.ChooseMode(authoring.ModeTrim))
	assert.ErrorIs(t, c.AddQuestion(), authoring.ErrNotReady)

	c.HandleEvent(media.Event{Kind: media.Ready})
	assert.ErrorIs(t, c.AddQuestion(), authoring.ErrTrimPending)
	assert.Equal(t, authoring.StageTrimming, c.Stage())

	fake.Set(20)
	require.NoError(t, c.CaptureTrimStart())
	fake.Set(80)
	require.NoError(t, c.CaptureTrimEnd())
	require.NoError(t, c.FinalizeTrim())

	assert.True(t, c.CanAddQuestion())
	assert.Equal(t, authoring.StageEditing, c.Stage())
}

func TestTrimRejectsEarlyEnd(t *testing.T) {
	c, fake := start(t, authoring.ModeTrim)

	fake.Set(20)
	require.NoError(t, c.CaptureTrimStart())
	assert.False(t, c.Playing())

	fake.Set(19)

	assert.ErrorIs(t, c.CaptureTrimEnd(), trim.ErrEndTooEarly)

	s, ok := c.Trim().Start()
	assert.True(t, ok)
	assert.InDelta(t, 20.0, s, 1e-9)

	_, ok = c.Trim().End()
	assert.False(t, ok)
	assert.Len(t, c.Board().Active(), 1)
}

func TestQuestionsOutsideTrimAreRejected(t *testing.T) {
	c, fake := start(t, authoring.ModeTrim)

	fake.Set(20)
	require.NoError(t, c.CaptureTrimStart())
	fake.Set(80)
	require.NoError(t, c.CaptureTrimEnd())
	require.NoError(t, c.FinalizeTrim())
	require.NoError(t, c.TogglePlay())

	fake.Set(90)

	err := c.AddQuestion()
	assert.ErrorIs(t, err, timeline.ErrOutsideTrim)
	assert.Contains(t, err.Error(), "within the trimmed range")
	assert.True(t, fake.IsPlaying())

	addQuestion(t, c, fake, 50, "Q", "A")
	assert.Len(t, c.Questions(), 1)

	l := c.Lesson()
	require.True(t, l.Trimmed())
	assert.InDelta(t, 20.0, *l.TrimStart, 1e-9)
	assert.InDelta(t, 80.0, *l.TrimEnd, 1e-9)
}

func TestTrimOnlyInTrimMode(t *testing.T) {
	c, _ := start(t, authoring.ModeFull)

	assert.ErrorIs(t, c.CaptureTrimStart(), authoring.ErrNotTrimMode)
	assert.ErrorIs(t, c.FinalizeTrim(), authoring.ErrNotTrimMode)
	assert.ErrorIs(
		t,
		c.BeginDrag(authoring.HandleStart, func(int) float64 { return 0 }),
		authoring.ErrNotTrimMode,
	)
}

func TestExportWithoutQuestions(t *testing.T) {
	c, _ := start(t, authoring.ModeFull)
	sink := &memSink{}

	_, err := c.Export(sink)
	assert.ErrorIs(t, err, lesson.ErrNoQuestions)
	assert.Empty(t, sink.files)
	assert.Contains(t, texts(c.Board()), "add at least one question")
}

func TestExportRoundTrip(t *testing.T) {
	sequentialIDs(t)

	rec := &recorder{}
	fake := mediatest.New(212)
	c := authoring.New(fake, authoring.Options{Recorder: rec})

	require.NoError(t, c.Start("Forces & Motion", link))
	require.NoError(t, c.ChooseMode(authoring.ModeTrim))
	c.HandleEvent(media.Event{Kind: media.Ready})

	fake.Set(20)
	require.NoError(t, c.CaptureTrimStart())
	fake.Set(80)
	require.NoError(t, c.CaptureTrimEnd())
	require.NoError(t, c.FinalizeTrim())

	addQuestion(t, c, fake, 60, "Second", "B")
	addQuestion(t, c, fake, 25, "First", "A")

	want := c.Lesson()
	sink := &memSink{}

	path, err := c.Export(sink)
	require.NoError(t, err)
	assert.Equal(t, "/exports/forces_motion.json", path)
	assert.Equal(t, []string{path}, rec.paths)
	assert.Equal(t, authoring.DefaultResetDelay, c.ResetDelay())

	got, err := lesson.Parse(sink.files["forces_motion.json"])
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDragHandles(t *testing.T) {
	c, fake := start(t, authoring.ModeTrim)

	fake.Set(50)
	require.NoError(t, c.CaptureTrimStart())
	fake.Set(100)
	require.NoError(t, c.CaptureTrimEnd())

	perCell := func(x int) float64 {
		return float64(x) * 2
	}

	require.NoError(t, c.BeginDrag(authoring.HandleStart, perCell))
	assert.True(t, c.Dragging())
	require.NoError(t, c.DragTo(20))
	require.NoError(t, c.EndDrag(15))
	assert.False(t, c.Dragging())

	s, _ := c.Trim().Start()
	assert.InDelta(t, 30.0, s, 1e-9)
	assert.Equal(t, "seek 30", fake.Last())

	require.NoError(t, c.BeginDrag(authoring.HandleSeek, perCell))
	require.NoError(t, c.EndDrag(200))
	assert.InDelta(t, 212.0, fake.CurrentTime(), 1e-9)

	require.NoError(t, c.FinalizeTrim())
	assert.False(t, c.TrackInteractive())
	assert.ErrorIs(t, c.BeginDrag(authoring.HandleSeek, perCell), authoring.ErrTrackLocked)
}

func TestSampleFollowsScrub(t *testing.T) {
	c, fake := start(t, authoring.ModeTrim)

	fake.Set(40)
	require.NoError(t, c.CaptureTrimStart())

	fake.Set(35)
	c.Sample()

	s, _ := c.Trim().Start()
	assert.InDelta(t, 35.0, s, 1e-9)
	assert.InDelta(t, 35.0, c.Position(), 1e-9)
}

func TestMediaFailureIsSurfaced(t *testing.T) {
	c, fake := start(t, authoring.ModeFull)

	c.HandleEvent(media.Event{Kind: media.Failed, Err: errors.New("codec")})

	assert.False(t, fake.IsPlaying())
	assert.False(t, c.Playing())
	assert.Equal(t, []string{"the video could not be played: codec"}, texts(c.Board()))
	assert.Equal(t, authoring.StageEditing, c.Stage())
}

func TestResetIsIdempotent(t *testing.T) {
	c, fake := start(t, authoring.ModeTrim)

	fake.Set(20)
	require.NoError(t, c.CaptureTrimStart())
	require.NoError(t, c.BeginDrag(authoring.HandleStart, func(x int) float64 {
		return float64(x)
	}))
	c.StartPolling()

	assert.Error(t, c.CaptureTrimEnd())
	require.NotEmpty(t, c.Board().Active())

	c.Reset()
	assert.Empty(t, c.Board().Active())

	once := []any{c.Stage(), c.Mode(), c.Ready(), c.Playing(), c.Title(), c.Questions(), c.Dragging(), c.Polling(), c.Trim()}

	c.Reset()

	twice := []any{c.Stage(), c.Mode(), c.Ready(), c.Playing(), c.Title(), c.Questions(), c.Dragging(), c.Polling(), c.Trim()}

	assert.Equal(t, once, twice)
	assert.Equal(t, authoring.StageSetup, c.Stage())
	assert.False(t, c.Dragging())
	assert.False(t, c.Polling())
	assert.False(t, fake.IsPlaying())
	assert.NoError(t, c.DragTo(10))
}
