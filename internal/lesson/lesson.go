// Package lesson defines the lesson document exchanged between the creator and
// the player, along with its validation rules and file format
package lesson

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Question is a prompt attached to a point in the video.
type Question struct {
	ID       string  `json:"id"`
	Time     float64 `json:"time" validate:"gte=0"`
	Question string  `json:"question" validate:"notblank"`
	Answer   string  `json:"answer" validate:"notblank"`
}

// Lesson is a video, an optional trim window and the questions asked while it
// plays.
type Lesson struct {
	Title       string     `json:"title" validate:"notblank"`
	YouTubeLink string     `json:"youtubeLink"`
	YouTubeID   string     `json:"youtubeId" validate:"len=11"`
	TrimStart   *float64   `json:"trimStart,omitempty" validate:"omitempty,gte=0"`
	TrimEnd     *float64   `json:"trimEnd,omitempty" validate:"omitempty,gte=0"`
	Questions   []Question `json:"questions" validate:"min=1"`
}

// NewID returns a fresh question identifier. Tests replace it to get
// predictable ids.
var NewID = func() string {
	return uuid.NewString()
}

// Trimmed reports whether the lesson carries a finalized trim window.
func (l *Lesson) Trimmed() bool {
	return l.TrimStart != nil && l.TrimEnd != nil
}

// Start is the position playback begins from.
func (l *Lesson) Start() float64 {
	if l.TrimStart != nil {
		return *l.TrimStart
	}

	return 0
}

// End is the position playback stops at. duration is the length of the
// source video and is used when no trim end is set.
func (l *Lesson) End(duration float64) float64 {
	if l.TrimEnd != nil {
		return *l.TrimEnd
	}

	return duration
}

// SetTrim records a finalized trim window.
func (l *Lesson) SetTrim(start, end float64) {
	l.TrimStart = &start
	l.TrimEnd = &end
}

// SortQuestions orders the questions by time. Questions sharing a time keep
// their relative order.
func (l *Lesson) SortQuestions() {
	SortQuestions(l.Questions)
}

// Clone returns a deep copy of the lesson.
func (l *Lesson) Clone() *Lesson {
	c := *l

	if l.TrimStart != nil {
		v := *l.TrimStart
		c.TrimStart = &v
	}

	if l.TrimEnd != nil {
		v := *l.TrimEnd
		c.TrimEnd = &v
	}

	c.Questions = slices.Clone(l.Questions)

	return &c
}

// SortQuestions orders qs ascending by time.
func SortQuestions(qs []Question) {
	slices.SortStableFunc(qs, func(a, b Question) int {
		return cmp.Compare(a.Time, b.Time)
	})
}
