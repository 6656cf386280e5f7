// Package notify alerts the viewer when a question comes up and when a lesson
// is finished
package notify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"
)

const (
	// SoundChime plays a synthesised tone.
	SoundChime = "chime"
	// SoundOff disables sounds.
	SoundOff = "off"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeFreq     = 880.0
	chimeLength   = 250 * time.Millisecond
	chimeVolume   = -1.5
	speakerBuffer = time.Second / 10
)

var errSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
}

var (
	speakerOnce sync.Once
	errSpeaker  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		errSpeaker = speaker.Init(sampleRate, sampleRate.N(speakerBuffer))
	})

	return errSpeaker
}

// Notifier sends desktop notifications and plays sounds.
type Notifier struct {
	sound   string
	enabled bool
}

// New returns a notifier. enabled toggles desktop notifications and sound is
// SoundChime, SoundOff or the path to an audio file.
func New(enabled bool, sound string) *Notifier {
	if sound == "" {
		sound = SoundChime
	}

	return &Notifier{
		enabled: enabled,
		sound:   sound,
	}
}

// Stream returns the audio played for a question.
func Stream(sound string) (beep.Streamer, error) {
	if sound == SoundChime {
		tone, err := generators.SineTone(sampleRate, chimeFreq)
		if err != nil {
			return nil, err
		}

		return &effects.Volume{
			Streamer: beep.Take(sampleRate.N(chimeLength), tone),
			Base:     2,
			Volume:   chimeVolume,
		}, nil
	}

	f, err := os.Open(sound)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(sound)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errSoundFormat.Fmt(sound)
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	var s beep.Streamer = stream

	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	return beep.Seq(s, beep.Callback(func() {
		_ = stream.Close()
	})), nil
}

// Chime plays the question sound without waiting for it to finish.
func (n *Notifier) Chime() {
	if n == nil || n.sound == SoundOff {
		return
	}

	err := initSpeaker()
	if err != nil {
		slog.Error("unable to open audio device", slog.Any("error", err))
		return
	}

	stream, err := Stream(n.sound)
	if err != nil {
		slog.Error("unable to play sound", slog.Any("error", err))
		return
	}

	speaker.Play(stream)
}

// Finished shows a desktop notification for a completed lesson.
func (n *Notifier) Finished(title string, answered, total int) {
	if n == nil || !n.enabled {
		return
	}

	msg := fmt.Sprintf("You answered %d of %d questions", answered, total)

	go func() {
		err := beeep.Notify(title+" is finished", msg, "")
		if err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}()
}
