// Package playback plays a lesson back to a viewer, stopping at each question
// until the viewer continues.
//
// A Controller starts in AwaitingFile. Loading a lesson moves it to Playing,
// where every poll tick checks for a question that has come up. A question
// moves it to QuestionGate until the viewer continues, and reaching the end
// of the lesson moves it to Ended, from which the summary can be shown.
package playback

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/poll"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/summary"
)

const (
	// DefaultEndEpsilon is how close to the end a lesson counts as finished.
	DefaultEndEpsilon = 0.25
	// DefaultSeekStep is the default scrub distance in seconds.
	DefaultSeekStep = 5.0
)

// State is the phase of a playthrough.
type State int

const (
	AwaitingFile State = iota
	Playing
	QuestionGate
	Ended
	SummaryShown
)

func (s State) String() string {
	switch s {
	case AwaitingFile:
		return "awaiting file"
	case Playing:
		return "playing"
	case QuestionGate:
		return "question"
	case Ended:
		return "ended"
	case SummaryShown:
		return "summary"
	}

	return "unknown"
}

// Recorder keeps a record of finished playthroughs.
type Recorder interface {
	RecordPlayback(l *lesson.Lesson, answered int) error
}

// Notifier alerts the viewer.
type Notifier interface {
	Chime()
	Finished(title string, answered, total int)
}

// Options configures a Controller.
type Options struct {
	Board        *notice.Board
	Recorder     Recorder
	Notifier     Notifier
	PollInterval time.Duration
	EndEpsilon   float64
	SeekStep     float64
}

// Controller plays one lesson at a time.
type Controller struct {
	player     media.Player
	recorder   Recorder
	notifier   Notifier
	board      *notice.Board
	loop       *poll.Loop
	lesson     *lesson.Lesson
	triggered  map[int]bool
	answered   map[int]bool
	endEpsilon float64
	seekStep   float64
	pos        float64
	active     int
	state      State
	revealed   bool
	paused     bool
}

// New returns a controller waiting for a lesson.
func New(player media.Player, opts Options) *Controller {
	if opts.Board == nil {
		opts.Board = notice.NewBoard(notice.DefaultTimeout)
	}

	if opts.EndEpsilon <= 0 {
		opts.EndEpsilon = DefaultEndEpsilon
	}

	if opts.SeekStep <= 0 {
		opts.SeekStep = DefaultSeekStep
	}

	return &Controller{
		player:     player,
		recorder:   opts.Recorder,
		notifier:   opts.Notifier,
		board:      opts.Board,
		loop:       poll.New(opts.PollInterval),
		endEpsilon: opts.EndEpsilon,
		seekStep:   opts.SeekStep,
		active:     -1,
		triggered:  make(map[int]bool),
		answered:   make(map[int]bool),
	}
}

// Board returns the notices raised during playback.
func (c *Controller) Board() *notice.Board {
	return c.board
}

func (c *Controller) State() State {
	return c.state
}

// Lesson returns the open lesson, or nil.
func (c *Controller) Lesson() *lesson.Lesson {
	return c.lesson
}

// Paused reports whether the viewer paused playback.
func (c *Controller) Paused() bool {
	return c.paused
}

// Position returns the last sampled playback position.
func (c *Controller) Position() float64 {
	return c.pos
}

// Polling reports whether the position is being sampled.
func (c *Controller) Polling() bool {
	return c.loop.Running()
}

// Bounds returns the part of the video the lesson plays.
func (c *Controller) Bounds() media.Range {
	if c.lesson == nil {
		return media.Range{}
	}

	return media.Range{
		Start: c.lesson.Start(),
		End:   c.lesson.End(c.player.Duration()),
	}
}

// Question returns the question being asked and whether its answer is shown.
func (c *Controller) Question() (q lesson.Question, revealed, ok bool) {
	if c.state != QuestionGate || c.active < 0 {
		return lesson.Question{}, false, false
	}

	return c.lesson.Questions[c.active], c.revealed, true
}

// Answered reports whether the question at index i was continued past.
func (c *Controller) Answered(i int) bool {
	return c.answered[i]
}

// Load opens a lesson file and starts playing it from its start. A file that
// cannot be parsed leaves the controller waiting for another one.
func (c *Controller) Load(data []byte) (tea.Cmd, error) {
	if c.state != AwaitingFile {
		c.board.Error(ErrLessonLoaded)
		return nil, ErrLessonLoaded
	}

	l, err := lesson.Parse(data)
	if err != nil {
		c.board.Error(err)
		return nil, err
	}

	return c.Open(l)
}

// Open starts playing an already parsed lesson.
func (c *Controller) Open(l *lesson.Lesson) (tea.Cmd, error) {
	if c.state != AwaitingFile {
		c.board.Error(ErrLessonLoaded)
		return nil, ErrLessonLoaded
	}

	r := media.Range{Start: l.Start()}
	if l.TrimEnd != nil {
		r.End = *l.TrimEnd
	}

	err := c.player.Load(l.YouTubeID, r)
	if err == nil {
		err = c.player.Seek(r.Start)
	}

	if err == nil {
		err = c.player.Play()
	}

	if err != nil {
		c.board.Error(errPlayback.Wrap(err))
		return nil, err
	}

	c.lesson = l
	c.triggered = make(map[int]bool)
	c.answered = make(map[int]bool)
	c.active = -1
	c.revealed = false
	c.paused = false
	c.pos = r.Start
	c.state = Playing

	slog.Info("lesson opened",
		slog.String("title", l.Title),
		slog.Int("questions", len(l.Questions)),
	)

	return c.loop.Start(), nil
}

// Tick samples the position if msg is the live tick of the controller.
func (c *Controller) Tick(msg poll.TickMsg) tea.Cmd {
	if !c.loop.Accept(msg) {
		return nil
	}

	c.Sample()

	return c.loop.Next()
}

// Sample checks the playback position. At the end of the lesson playback
// stops. Otherwise the earliest question that has come up and has been
// neither triggered nor answered is asked, which pauses playback and stops
// sampling until the viewer continues.
func (c *Controller) Sample() {
	c.board.Expire()

	if c.state != Playing {
		return
	}

	c.pos = c.player.CurrentTime()

	end := c.lesson.End(c.player.Duration())
	if end > 0 && c.pos >= end-c.endEpsilon {
		c.finish()
		return
	}

	for i, q := range c.lesson.Questions {
		if q.Time > c.pos {
			break
		}

		if c.triggered[i] || c.answered[i] {
			continue
		}

		_ = c.player.Pause()

		c.loop.Stop()
		c.triggered[i] = true
		c.active = i
		c.revealed = false
		c.state = QuestionGate

		if c.notifier != nil {
			c.notifier.Chime()
		}

		return
	}
}

// Reveal shows the answer to the question being asked.
func (c *Controller) Reveal() error {
	if c.state != QuestionGate {
		return ErrNoQuestion
	}

	c.revealed = true

	return nil
}

// Continue marks the question being asked as answered and resumes playback.
func (c *Controller) Continue() (tea.Cmd, error) {
	if c.state != QuestionGate {
		return nil, ErrNoQuestion
	}

	c.answered[c.active] = true
	delete(c.triggered, c.active)

	c.active = -1
	c.revealed = false
	c.paused = false
	c.state = Playing

	err := c.player.Play()
	if err != nil {
		c.board.Error(errPlayback.Wrap(err))
	}

	return c.loop.Start(), nil
}

// TogglePause pauses or resumes playback.
func (c *Controller) TogglePause() error {
	if c.state != Playing {
		return ErrNotPlaying
	}

	var err error

	if c.paused {
		err = c.player.Play()
	} else {
		err = c.player.Pause()
	}

	if err != nil {
		c.board.Error(errPlayback.Wrap(err))
		return err
	}

	c.paused = !c.paused

	return nil
}

// Seek moves playback by delta seconds, staying inside the lesson.
func (c *Controller) Seek(delta float64) error {
	if c.state != Playing {
		return ErrNotPlaying
	}

	r := c.Bounds()
	t := min(max(c.player.CurrentTime()+delta, r.Start), r.End)

	err := c.player.Seek(t)
	if err != nil {
		c.board.Error(errPlayback.Wrap(err))
		return err
	}

	c.pos = t

	return nil
}

// SeekStep is the scrub distance for a single key press.
func (c *Controller) SeekStep() float64 {
	return c.seekStep
}

// HandleEvent applies a notification from the media player.
func (c *Controller) HandleEvent(ev media.Event) {
	if c.lesson == nil {
		return
	}

	switch ev.Kind {
	case media.Ended:
		if c.state == Playing {
			c.finish()
		}
	case media.Failed:
		_ = c.player.Pause()
		c.paused = true
		c.board.Error(errPlayback.Wrap(ev.Err))
	case media.Playing:
		if c.state == Playing {
			c.paused = false
		}
	case media.Paused:
		if c.state == Playing {
			c.paused = true
		}
	case media.Ready:
	}
}

func (c *Controller) finish() {
	_ = c.player.Pause()

	c.loop.Stop()
	c.state = Ended
	c.paused = false

	n := len(c.answered)

	if c.recorder != nil {
		if err := c.recorder.RecordPlayback(c.lesson, n); err != nil {
			slog.Error("unable to record playback", slog.Any("error", err))
		}
	}

	if c.notifier != nil {
		c.notifier.Finished(c.lesson.Title, n, len(c.lesson.Questions))
	}

	slog.Info("lesson finished",
		slog.String("title", c.lesson.Title),
		slog.Int("answered", n),
	)
}

// ViewSummary reports every question and whether it was answered.
func (c *Controller) ViewSummary() (*summary.Summary, error) {
	if c.state != Ended && c.state != SummaryShown {
		return nil, ErrNotEnded
	}

	c.state = SummaryShown

	return summary.Build(c.lesson, c.Answered), nil
}

// ReturnToStart stops playback and releases the lesson. Calling it again has
// no further effect.
func (c *Controller) ReturnToStart() {
	if c.lesson != nil {
		_ = c.player.Pause()
	}

	c.loop.Stop()

	c.lesson = nil
	c.triggered = make(map[int]bool)
	c.answered = make(map[int]bool)
	c.active = -1
	c.revealed = false
	c.paused = false
	c.pos = 0
	c.state = AwaitingFile
}
