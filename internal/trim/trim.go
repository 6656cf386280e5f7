// Package trim selects and locks the part of a video that a lesson plays.
//
// A Selector moves through Unset, StartCaptured and RangeCaptured while the
// author marks the boundaries, and becomes Finalized once the range is
// applied. A finalized selector rejects every change until it is reset.
package trim

import (
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
)

// Epsilon is the shortest trim, in seconds.
const Epsilon = 0.05

// State is the phase of a trim selection.
type State int

const (
	Unset State = iota
	StartCaptured
	RangeCaptured
	Finalized
)

func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case StartCaptured:
		return "start captured"
	case RangeCaptured:
		return "range captured"
	case Finalized:
		return "finalized"
	}

	return "unknown"
}

// Valid reports whether [start, end] is long enough to be a trim.
func Valid(start, end float64) bool {
	return end-start >= Epsilon
}

// Selector captures a trim range on a loaded video.
type Selector struct {
	player    media.Player
	start     *float64
	end       *float64
	id        string
	finalized bool
}

// New returns a selector for the video id playing in player.
func New(player media.Player, id string) *Selector {
	return &Selector{
		player: player,
		id:     id,
	}
}

// State returns the current phase of the selection.
func (s *Selector) State() State {
	switch {
	case s.finalized:
		return Finalized
	case s.end != nil:
		return RangeCaptured
	case s.start != nil:
		return StartCaptured
	}

	return Unset
}

// Start returns the candidate start, if any.
func (s *Selector) Start() (float64, bool) {
	if s.start == nil {
		return 0, false
	}

	return *s.start, true
}

// End returns the candidate end, if any.
func (s *Selector) End() (float64, bool) {
	if s.end == nil {
		return 0, false
	}

	return *s.end, true
}

// Bounds returns the applied trim range. ok is false until Finalize succeeds.
func (s *Selector) Bounds() (r media.Range, ok bool) {
	if !s.finalized {
		return media.Range{}, false
	}

	return media.Range{Start: *s.start, End: *s.end}, true
}

// Interactive reports whether the progress track accepts seeks and drags.
func (s *Selector) Interactive() bool {
	return !s.finalized
}

// CaptureStart pauses the video and records the current position as the
// candidate start. Any candidate end is discarded.
func (s *Selector) CaptureStart() error {
	if s.finalized {
		return ErrLocked
	}

	pos := s.player.CurrentTime()

	err := s.player.Pause()
	if err != nil {
		return err
	}

	s.start = &pos
	s.end = nil

	return nil
}

// CaptureEnd pauses the video and records the current position as the
// candidate end. It fails without changes when there is no candidate start or
// the position is not at least Epsilon past it.
func (s *Selector) CaptureEnd() error {
	if s.finalized {
		return ErrLocked
	}

	if s.start == nil {
		return ErrNoStart
	}

	pos := s.player.CurrentTime()

	if !Valid(*s.start, pos) {
		return ErrEndTooEarly.Fmt(
			timeutil.Precise(pos),
			timeutil.Precise(*s.start),
		)
	}

	err := s.player.Pause()
	if err != nil {
		return err
	}

	s.end = &pos

	return nil
}

// Finalize locks the candidate range, reloads the video restricted to it and
// seeks to its start.
func (s *Selector) Finalize() error {
	if s.finalized {
		return ErrLocked
	}

	if s.start == nil || s.end == nil {
		return ErrIncomplete
	}

	start, end := *s.start, *s.end

	if !Valid(start, end) {
		return ErrEndTooEarly.Fmt(
			timeutil.Precise(end),
			timeutil.Precise(start),
		)
	}

	err := s.player.Load(s.id, media.Range{Start: start, End: end})
	if err != nil {
		return err
	}

	s.finalized = true

	return s.player.Seek(start)
}

// DragStart moves the candidate start to t and seeks there. t is kept inside
// the video and at least Epsilon before the candidate end.
func (s *Selector) DragStart(t float64) error {
	if s.finalized {
		return ErrLocked
	}

	if s.start == nil {
		return ErrNoStart
	}

	hi := s.player.Duration()
	if s.end != nil {
		hi = *s.end - Epsilon
	}

	t = clamp(t, 0, hi)
	s.start = &t

	return s.player.Seek(t)
}

// DragEnd moves the candidate end to t and seeks there. t is kept inside the
// video and at least Epsilon after the candidate start.
func (s *Selector) DragEnd(t float64) error {
	if s.finalized {
		return ErrLocked
	}

	if s.end == nil {
		return ErrNoEnd
	}

	lo := *s.start + Epsilon

	hi := s.player.Duration()
	if hi < lo {
		hi = lo
	}

	t = clamp(t, lo, hi)
	s.end = &t

	return s.player.Seek(t)
}

// Observe follows the playback position. If the author scrubs before the
// candidate start, the start moves down with it.
func (s *Selector) Observe(pos float64) {
	if s.finalized || s.start == nil {
		return
	}

	if pos < *s.start {
		s.start = &pos
	}
}

// Reset discards the selection, including an applied trim.
func (s *Selector) Reset() {
	s.start = nil
	s.end = nil
	s.finalized = false
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}

	return min(max(v, lo), hi)
}
