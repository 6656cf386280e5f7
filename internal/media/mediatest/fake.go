// Package mediatest provides a scriptable media.Player for tests.
package mediatest

import (
	"fmt"
	"sync"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
)

// Fake is a media.Player whose position only changes when a test moves it.
// Every call is recorded in Calls.
type Fake struct {
	LoadErr error
	events  chan media.Event
	ID      string
	Calls   []string
	Bounds  media.Range
	Now     float64
	Total   float64
	mu      sync.Mutex
	Playing bool
	Closed  bool
}

// New returns a Fake for a video lasting total seconds.
func New(total float64) *Fake {
	return &Fake{
		Total:  total,
		events: make(chan media.Event, 64),
	}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) Load(id string, r media.Range) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("load %s %g-%g", id, r.Start, r.End)

	if f.LoadErr != nil {
		return f.LoadErr
	}

	f.ID = id
	f.Bounds = r
	f.Now = r.Start
	f.Playing = false

	return nil
}

func (f *Fake) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("play")
	f.Playing = true

	return nil
}

func (f *Fake) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("pause")
	f.Playing = false

	return nil
}

func (f *Fake) Seek(seconds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("seek %g", seconds)
	f.Now = seconds

	return nil
}

func (f *Fake) CurrentTime() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.Now
}

func (f *Fake) Duration() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.Total
}

func (f *Fake) Events() <-chan media.Event {
	return f.events
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("close")
	f.Closed = true

	return nil
}

// Set moves the playback position without recording a call.
func (f *Fake) Set(seconds float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Now = seconds
}

// Emit queues an event on the Events channel.
func (f *Fake) Emit(kind media.EventKind, err error) {
	f.events <- media.Event{Kind: kind, Err: err}
}

// IsPlaying reports whether the last play or pause call was a play.
func (f *Fake) IsPlaying() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.Playing
}

// Last returns the most recent recorded call.
func (f *Fake) Last() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Calls) == 0 {
		return ""
	}

	return f.Calls[len(f.Calls)-1]
}

// Reset forgets the recorded calls.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = nil
}
