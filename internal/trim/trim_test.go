package trim_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media/mediatest"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
)

const videoID = "dQw4w9WgXcQ"

func newSelector(duration float64) (*trim.Selector, *mediatest.Fake) {
	fake := mediatest.New(duration)
	_ = fake.Load(videoID, media.Range{})
	_ = fake.Play()
	fake.Reset()

	return trim.New(fake, videoID), fake
}

func TestCaptureEndBeforeStartIsRejected(t *testing.T) {
	s, fake := newSelector(212)

	fake.Set(20)
	require.NoError(t, s.CaptureStart())
	assert.False(t, fake.IsPlaying())

	fake.Set(19)

	err := s.CaptureEnd()
	assert.ErrorIs(t, err, trim.ErrEndTooEarly)

	start, ok := s.Start()
	assert.True(t, ok)
	assert.InDelta(t, 20.0, start, 1e-9)

	_, ok = s.End()
	assert.False(t, ok)
	assert.Equal(t, trim.StartCaptured, s.State())
}

func TestCaptureEndWithoutStart(t *testing.T) {
	s, fake := newSelector(60)

	fake.Set(10)

	assert.ErrorIs(t, s.CaptureEnd(), trim.ErrNoStart)
	assert.Equal(t, trim.Unset, s.State())
	assert.Empty(t, fake.Calls)
}

func TestCaptureStartClearsEnd(t *testing.T) {
	s, fake := newSelector(60)

	fake.Set(10)
	require.NoError(t, s.CaptureStart())
	fake.Set(20)
	require.NoError(t, s.CaptureEnd())
	assert.Equal(t, trim.RangeCaptured, s.State())

	fake.Set(5)
	require.NoError(t, s.CaptureStart())

	_, ok := s.End()
	assert.False(t, ok)
	assert.Equal(t, trim.StartCaptured, s.State())
}

func TestFinalize(t *testing.T) {
	testCases := []struct {
		err   error
		name  string
		start float64
		end   float64
		marks int
	}{
		{name: "no candidates", marks: 0, err: trim.ErrIncomplete},
		{name: "start only", start: 20, marks: 1, err: trim.ErrIncomplete},
		{name: "valid range", start: 20, end: 80, marks: 2},
		{name: "shortest range", start: 20, end: 20.5, marks: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, fake := newSelector(212)

			if tc.marks > 0 {
				fake.Set(tc.start)
				require.NoError(t, s.CaptureStart())
			}

			if tc.marks > 1 {
				fake.Set(tc.end)
				require.NoError(t, s.CaptureEnd())
			}

			fake.Reset()

			err := s.Finalize()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.NotEqual(t, trim.Finalized, s.State())
				assert.Empty(t, fake.Calls)

				_, ok := s.Bounds()
				assert.False(t, ok)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, trim.Finalized, s.State())
			assert.False(t, s.Interactive())

			bounds, ok := s.Bounds()
			assert.True(t, ok)
			assert.Equal(t, media.Range{Start: tc.start, End: tc.end}, bounds)
			assert.Equal(t, fake.Bounds, bounds)
			assert.Contains(
				t,
				fake.Calls,
				fmt.Sprintf("load %s %g-%g", videoID, tc.start, tc.end),
			)
			assert.InDelta(t, tc.start, fake.CurrentTime(), 1e-9)
		})
	}
}

func TestFinalizeLocksSelection(t *testing.T) {
	s, fake := newSelector(212)

	fake.Set(20)
	require.NoError(t, s.CaptureStart())
	fake.Set(80)
	require.NoError(t, s.CaptureEnd())
	require.NoError(t, s.Finalize())

	fake.Set(30)

	assert.ErrorIs(t, s.CaptureStart(), trim.ErrLocked)
	assert.ErrorIs(t, s.CaptureEnd(), trim.ErrLocked)
	assert.ErrorIs(t, s.Finalize(), trim.ErrLocked)
	assert.ErrorIs(t, s.DragStart(10), trim.ErrLocked)
	assert.ErrorIs(t, s.DragEnd(90), trim.ErrLocked)

	s.Observe(5)

	bounds, _ := s.Bounds()
	assert.Equal(t, media.Range{Start: 20, End: 80}, bounds)

	s.Reset()
	assert.Equal(t, trim.Unset, s.State())
	assert.True(t, s.Interactive())
}

func TestDragKeepsEpsilonApart(t *testing.T) {
	s, fake := newSelector(100)

	assert.ErrorIs(t, s.DragStart(10), trim.ErrNoStart)

	fake.Set(20)
	require.NoError(t, s.CaptureStart())

	assert.ErrorIs(t, s.DragEnd(50), trim.ErrNoEnd)

	require.NoError(t, s.DragStart(150))
	start, _ := s.Start()
	assert.InDelta(t, 100.0, start, 1e-9)

	require.NoError(t, s.DragStart(20))
	fake.Set(60)
	require.NoError(t, s.CaptureEnd())

	require.NoError(t, s.DragStart(70))
	start, _ = s.Start()
	assert.InDelta(t, 60-trim.Epsilon, start, 1e-9)
	assert.Contains(t, fake.Last(), "seek 59.9")

	require.NoError(t, s.DragStart(-5))
	start, _ = s.Start()
	assert.InDelta(t, 0.0, start, 1e-9)

	require.NoError(t, s.DragEnd(-1))
	end, _ := s.End()
	assert.InDelta(t, trim.Epsilon, end, 1e-9)

	require.NoError(t, s.DragEnd(500))
	end, _ = s.End()
	assert.InDelta(t, 100.0, end, 1e-9)
}

func TestObserveFollowsScrubBeforeStart(t *testing.T) {
	s, fake := newSelector(100)

	s.Observe(5)
	assert.Equal(t, trim.Unset, s.State())

	fake.Set(40)
	require.NoError(t, s.CaptureStart())

	s.Observe(45)
	start, _ := s.Start()
	assert.InDelta(t, 40.0, start, 1e-9)

	s.Observe(32)
	start, _ = s.Start()
	assert.InDelta(t, 32.0, start, 1e-9)
}

func TestTrackProjection(t *testing.T) {
	s, fake := newSelector(200)

	lo, hi := s.Window(200)
	assert.InDelta(t, 0.0, lo, 1e-9)
	assert.InDelta(t, 200.0, hi, 1e-9)
	assert.InDelta(t, 0.25, s.Project(50, 200), 1e-9)
	assert.InDelta(t, 0.25, s.Marker(50, 200), 1e-9)

	fake.Set(100)
	require.NoError(t, s.CaptureStart())

	assert.InDelta(t, 0.5, s.Project(150, 200), 1e-9)
	assert.InDelta(t, 0.0, s.Project(20, 200), 1e-9)
	assert.InDelta(t, 150.0, s.Unproject(0.5, 200), 1e-9)

	fake.Set(140)
	require.NoError(t, s.CaptureEnd())

	assert.InDelta(t, 0.25, s.Project(110, 200), 1e-9)
	assert.InDelta(t, 1.0, s.Project(190, 200), 1e-9)
	assert.InDelta(t, 0.5, s.Marker(110, 200), 1e-9)
	assert.InDelta(t, 130.0, s.Unproject(0.75, 200), 1e-9)

	require.NoError(t, s.Finalize())
	assert.InDelta(t, 0.25, s.Marker(110, 200), 1e-9)
}
