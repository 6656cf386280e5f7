package media

import (
	"sync"
	"time"
)

// Clock tells the time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SimOption configures a Sim.
type SimOption func(*Sim)

// WithClock replaces the clock a Sim measures playback with.
func WithClock(c Clock) SimOption {
	return func(s *Sim) {
		s.clock = c
	}
}

// Sim is an in-process player that advances at wall-clock rate. It stands in
// for a real video when none can be shown, and reports the end of playback
// the first time its position is read past the end of the range.
type Sim struct {
	since    time.Time
	clock    Clock
	events   chan Event
	id       string
	bounds   Range
	duration float64
	pos      float64
	mu       sync.Mutex
	playing  bool
	loaded   bool
	ended    bool
	closed   bool
}

// NewSim returns a simulated player for a video lasting duration seconds.
func NewSim(duration float64, opts ...SimOption) *Sim {
	s := &Sim{
		clock:    systemClock{},
		duration: duration,
		events:   make(chan Event, eventBuffer),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Sim) emit(kind EventKind, err error) {
	if s.closed {
		return
	}

	select {
	case s.events <- Event{Kind: kind, Err: err}:
	default:
	}
}

func (s *Sim) position() float64 {
	if !s.playing {
		return s.pos
	}

	elapsed := s.clock.Now().Sub(s.since).Seconds()

	return clamp(s.pos+elapsed, s.bounds.Start, s.bounds.End)
}

func (s *Sim) Load(id string, r Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errClosed
	}

	if s.duration <= 0 {
		s.emit(Failed, errNoDuration)
		return errNoDuration
	}

	start := clamp(r.Start, 0, s.duration)

	end := r.End
	if end <= 0 || end > s.duration {
		end = s.duration
	}

	if end < start {
		end = start
	}

	s.id = id
	s.bounds = Range{Start: start, End: end}
	s.pos = start
	s.playing = false
	s.ended = false
	s.loaded = true

	s.emit(Ready, nil)

	return nil
}

func (s *Sim) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return errNotLoaded
	}

	if s.playing {
		return nil
	}

	if s.ended || s.pos >= s.bounds.End {
		s.pos = s.bounds.Start
		s.ended = false
	}

	s.playing = true
	s.since = s.clock.Now()

	s.emit(Playing, nil)

	return nil
}

func (s *Sim) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return nil
	}

	s.pos = s.position()
	s.playing = false

	s.emit(Paused, nil)

	return nil
}

func (s *Sim) Seek(seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return errNotLoaded
	}

	s.pos = clamp(seconds, s.bounds.Start, s.bounds.End)
	s.since = s.clock.Now()
	s.ended = false

	return nil
}

func (s *Sim) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.position()

	if s.playing && p >= s.bounds.End {
		s.pos = s.bounds.End
		s.playing = false
		s.ended = true

		s.emit(Ended, nil)
	}

	return p
}

func (s *Sim) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.duration
}

// Playing reports whether the simulated video is advancing.
func (s *Sim) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playing
}

func (s *Sim) Events() <-chan Event {
	return s.events
}

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.playing = false
	close(s.events)

	return nil
}
