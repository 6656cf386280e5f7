package store

import (
	"time"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
)

// History records exports and playthroughs in a DB.
type History struct {
	DB  DB
	Now func() time.Time
}

// NewHistory returns a History backed by db.
func NewHistory(db DB) *History {
	return &History{
		DB:  db,
		Now: time.Now,
	}
}

func (h *History) record(l *lesson.Lesson, kind Kind) *Record {
	return &Record{
		Time:      h.Now().UTC(),
		Kind:      kind,
		Title:     l.Title,
		VideoID:   l.YouTubeID,
		Questions: len(l.Questions),
		Trimmed:   l.Trimmed(),
	}
}

// RecordExport notes that l was saved to path.
func (h *History) RecordExport(l *lesson.Lesson, path string) error {
	r := h.record(l, KindExport)
	r.Path = path

	return h.DB.PutRecord(r)
}

// RecordPlayback notes that l was played through with answered questions
// answered.
func (h *History) RecordPlayback(l *lesson.Lesson, answered int) error {
	r := h.record(l, KindPlayback)
	r.Answered = answered

	return h.DB.PutRecord(r)
}
