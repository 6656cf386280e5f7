// Package media defines the video player capability that the creator and the
// player drive, and provides the backends that implement it
package media

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

// EventKind identifies a notification emitted by a player.
type EventKind int

const (
	// Ready is emitted once a video is loaded and can be played.
	Ready EventKind = iota
	Playing
	Paused
	// Ended is emitted when playback reaches the end of the playable range.
	Ended
	// Failed is emitted when the video cannot be loaded or played.
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Event is a notification emitted by a player.
type Event struct {
	Err  error
	Kind EventKind
}

// Range is the playable part of a video in seconds. A zero End plays to the
// end of the video.
type Range struct {
	Start float64
	End   float64
}

// Player is an external, seekable video player.
type Player interface {
	// Load replaces the current video and restricts playback to r. The player
	// emits Ready once the video can be played.
	Load(id string, r Range) error
	Play() error
	Pause() error
	Seek(seconds float64) error
	// CurrentTime is the playback position in seconds.
	CurrentTime() float64
	// Duration is the length of the whole video in seconds, or zero while it
	// is unknown.
	Duration() float64
	Events() <-chan Event
	Close() error
}

const (
	BackendSim = "sim"
	BackendMPV = "mpv"
)

const eventBuffer = 64

var (
	errNotLoaded = &apperr.Error{
		Message: "no video is loaded",
	}

	errNoDuration = &apperr.Error{
		Message: "the video duration is unknown: pass --duration or set youtube.api_key",
	}

	errClosed = &apperr.Error{
		Message: "the video player has been closed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown media backend: %s",
	}
)

// Options configures a player backend.
type Options struct {
	// Command launches the external player used by the mpv backend.
	Command string
	// Duration is the video length used by the sim backend.
	Duration float64
}

// New returns the player backend named by backend.
func New(backend string, opts Options) (Player, error) {
	switch backend {
	case BackendSim, "":
		return NewSim(opts.Duration), nil
	case BackendMPV:
		return NewMPV(opts.Command)
	}

	return nil, errUnknownBackend.Fmt(backend)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
