// Package timeline keeps the questions of a lesson ordered by the moment in
// the video they are asked at.
package timeline

import (
	"errors"
	"slices"
	"strings"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
)

// DefaultStep is the default nudge applied to a pending question time.
const DefaultStep = 0.5

// Editor adds and removes questions while the video plays.
type Editor struct {
	player    media.Player
	window    *media.Range
	pending   *float64
	questions []lesson.Question
	step      float64
	tail      float64
}

// New returns an editor driving player. A step of zero or less uses
// DefaultStep.
func New(player media.Player, step float64) *Editor {
	if step <= 0 {
		step = DefaultStep
	}

	return &Editor{
		player: player,
		step:   step,
	}
}

// Step returns the amount Nudge moves the pending time by.
func (e *Editor) Step() float64 {
	return e.step
}

// Restrict limits question times to an applied trim range.
func (e *Editor) Restrict(r media.Range) {
	e.window = &r
}

// Reserve keeps the last tail seconds of the range free of questions. The
// player stops that close to the end, so a question there would never be
// asked.
func (e *Editor) Reserve(tail float64) {
	e.tail = max(tail, 0)
}

// Range returns the span new questions may be placed in.
func (e *Editor) Range() media.Range {
	r := media.Range{Start: 0, End: e.player.Duration()}
	if e.window != nil {
		r = *e.window
	}

	if r.End > 0 {
		r.End = max(r.End-e.tail, r.Start)
	}

	return r
}

// Questions returns a copy of the questions in time order.
func (e *Editor) Questions() []lesson.Question {
	return slices.Clone(e.questions)
}

// Pending returns the time of the question being added.
func (e *Editor) Pending() (float64, bool) {
	if e.pending == nil {
		return 0, false
	}

	return *e.pending, true
}

// BeginAdd pauses the video and opens a question at the current position. A
// position outside the trimmed range is rejected and playback resumes.
func (e *Editor) BeginAdd() error {
	if e.pending != nil {
		return ErrPending
	}

	pos := e.player.CurrentTime()

	err := e.player.Pause()
	if err != nil {
		return err
	}

	r := e.Range()

	if e.window != nil && (pos < r.Start || pos > r.End) {
		_ = e.player.Play()

		return ErrOutsideTrim.Fmt(
			timeutil.Clock(r.Start),
			timeutil.Clock(r.End),
		)
	}

	if e.window == nil && r.End > 0 && pos > r.End {
		_ = e.player.Play()

		return ErrTooLate.Fmt(timeutil.Clock(r.End))
	}

	e.pending = &pos

	return nil
}

// Nudge moves the pending time by delta steps, keeping it inside Range, and
// seeks the video to it.
func (e *Editor) Nudge(delta int) error {
	if e.pending == nil {
		return ErrNoPending
	}

	r := e.Range()

	t := *e.pending + float64(delta)*e.step
	t = min(max(t, r.Start), r.End)

	err := e.player.Seek(t)
	if err != nil {
		return err
	}

	e.pending = &t

	return nil
}

// Commit adds the pending question and resumes playback. Blank text leaves
// the question open and the collection untouched.
func (e *Editor) Commit(question, answer string) (lesson.Question, error) {
	if e.pending == nil {
		return lesson.Question{}, ErrNoPending
	}

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	var errs []error

	if question == "" {
		errs = append(errs, ErrQuestionRequired)
	}

	if answer == "" {
		errs = append(errs, ErrAnswerRequired)
	}

	at := *e.pending

	if slices.ContainsFunc(e.questions, func(q lesson.Question) bool {
		return q.Time == at
	}) {
		errs = append(errs, ErrDuplicateTime.Fmt(timeutil.Precise(at)))
	}

	if len(errs) > 0 {
		return lesson.Question{}, errors.Join(errs...)
	}

	q := lesson.Question{
		ID:       lesson.NewID(),
		Time:     at,
		Question: question,
		Answer:   answer,
	}

	e.questions = append(e.questions, q)
	lesson.SortQuestions(e.questions)
	e.pending = nil

	return q, e.player.Play()
}

// Cancel discards the pending question and resumes playback.
func (e *Editor) Cancel() error {
	if e.pending == nil {
		return nil
	}

	e.pending = nil

	return e.player.Play()
}

// Delete removes the question with the given id. The last question cannot be
// removed.
func (e *Editor) Delete(id string) error {
	i := slices.IndexFunc(e.questions, func(q lesson.Question) bool {
		return q.ID == id
	})

	if i < 0 {
		return ErrNotFound.Fmt(id)
	}

	if len(e.questions) == 1 {
		return ErrLastQuestion
	}

	e.questions = slices.Delete(e.questions, i, i+1)

	return nil
}

// Reset discards every question, the pending question and the trim limit.
func (e *Editor) Reset() {
	e.questions = nil
	e.pending = nil
	e.window = nil
}
