// Package authoring runs a lesson editing session: it loads a video, lets the
// author trim it and place questions, and exports the finished lesson.
package authoring

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/gesture"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/media"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/poll"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeline"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/youtube"
)

// DefaultResetDelay is how long an exported session stays on screen.
const DefaultResetDelay = 1500 * time.Millisecond

// Mode is how the author edits the video.
type Mode int

const (
	ModeNone Mode = iota
	// ModeFull places questions over the whole video.
	ModeFull
	// ModeTrim restricts the lesson to a part of the video chosen first.
	ModeTrim
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeFull:
		return "full"
	case ModeTrim:
		return "trim"
	}

	return "unknown"
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return ModeFull, nil
	case "trim":
		return ModeTrim, nil
	}

	return ModeNone, ErrUnknownMode
}

// Stage is the screen a session is on.
type Stage int

const (
	// StageSetup waits for a title and a link.
	StageSetup Stage = iota
	// StageMode waits for the author to choose a Mode.
	StageMode
	// StageTrimming waits for the trim to be applied.
	StageTrimming
	// StageEditing places questions.
	StageEditing
)

// Handle is the part of the progress track being dragged.
type Handle int

const (
	HandleSeek Handle = iota
	HandleStart
	HandleEnd
)

func (h Handle) String() string {
	switch h {
	case HandleSeek:
		return "seek"
	case HandleStart:
		return "start"
	case HandleEnd:
		return "end"
	}

	return "unknown"
}

// Recorder keeps a record of exported lessons.
type Recorder interface {
	RecordExport(l *lesson.Lesson, path string) error
}

// Options configures a Controller.
type Options struct {
	Board        *notice.Board
	Recorder     Recorder
	PollInterval time.Duration
	ResetDelay   time.Duration
	NudgeStep    float64

	// EndMargin is how early, in seconds, the player stops before the end.
	// Questions are kept out of that margin plus one poll interval.
	EndMargin float64
}

// Controller owns one editing session and the media player it drives.
type Controller struct {
	player     media.Player
	recorder   Recorder
	board      *notice.Board
	loop       *poll.Loop
	trim       *trim.Selector
	editor     *timeline.Editor
	drag       gesture.Drag
	title      string
	link       string
	id         string
	resetDelay time.Duration
	nudgeStep  float64
	endMargin  float64
	pos        float64
	mode       Mode
	ready      bool
	playing    bool
}

// New returns a controller with no session.
func New(player media.Player, opts Options) *Controller {
	if opts.Board == nil {
		opts.Board = notice.NewBoard(notice.DefaultTimeout)
	}

	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}

	return &Controller{
		player:     player,
		recorder:   opts.Recorder,
		board:      opts.Board,
		loop:       poll.New(opts.PollInterval),
		resetDelay: opts.ResetDelay,
		nudgeStep:  opts.NudgeStep,
		endMargin:  opts.EndMargin,
	}
}

// fail shows err on the notice board and returns it.
func (c *Controller) fail(err error) error {
	if err != nil {
		c.board.Error(err)
	}

	return err
}

// Board returns the notices raised by the session.
func (c *Controller) Board() *notice.Board {
	return c.board
}

func (c *Controller) started() bool {
	return c.id != ""
}

// Stage returns the screen the session is on.
func (c *Controller) Stage() Stage {
	switch {
	case !c.started():
		return StageSetup
	case c.mode == ModeNone:
		return StageMode
	case c.mode == ModeTrim && c.trim.State() != trim.Finalized:
		return StageTrimming
	}

	return StageEditing
}

func (c *Controller) Title() string {
	return c.title
}

// VideoID returns the id of the loaded video.
func (c *Controller) VideoID() string {
	return c.id
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Ready reports whether the video signalled it can be played.
func (c *Controller) Ready() bool {
	return c.ready
}

// Playing reports whether the video is believed to be playing.
func (c *Controller) Playing() bool {
	return c.playing
}

// Position returns the last sampled playback position.
func (c *Controller) Position() float64 {
	return c.pos
}

// Duration returns the length of the whole video.
func (c *Controller) Duration() float64 {
	return c.player.Duration()
}

// Trim returns the trim selector of the session, or nil without a session.
func (c *Controller) Trim() *trim.Selector {
	return c.trim
}

// ResetDelay is how long to wait after an export before calling Reset.
func (c *Controller) ResetDelay() time.Duration {
	return c.resetDelay
}

// Start opens a session for the video at locator. Nothing is loaded when the
// title is blank or no video id can be found in locator.
func (c *Controller) Start(title, locator string) error {
	if c.started() {
		return c.fail(ErrSessionActive)
	}

	title = strings.TrimSpace(title)
	locator = strings.TrimSpace(locator)

	if title == "" {
		return c.fail(lesson.ErrTitleRequired)
	}

	id := youtube.ExtractID(locator)
	if id == "" {
		return c.fail(ErrInvalidLocator.Fmt(locator))
	}

	err := c.player.Load(id, media.Range{})
	if err != nil {
		return c.fail(err)
	}

	c.title = title
	c.link = locator
	c.id = id
	c.pos = 0
	c.trim = trim.New(c.player, id)
	c.editor = timeline.New(c.player, c.nudgeStep)
	c.editor.Reserve(c.endMargin + c.loop.Interval().Seconds())

	slog.Info("authoring session started",
		slog.String("title", title),
		slog.String("video_id", id),
	)

	return nil
}

// ChooseMode fixes the editing mode of the session.
func (c *Controller) ChooseMode(m Mode) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	if c.mode != ModeNone {
		return c.fail(ErrModeLocked)
	}

	if m != ModeFull && m != ModeTrim {
		return c.fail(ErrUnknownMode)
	}

	c.mode = m

	return nil
}

// HandleEvent applies a notification from the media player.
func (c *Controller) HandleEvent(ev media.Event) {
	if !c.started() {
		return
	}

	switch ev.Kind {
	case media.Ready:
		c.ready = true
	case media.Playing:
		c.playing = true
	case media.Paused, media.Ended:
		c.playing = false
	case media.Failed:
		c.playing = false
		_ = c.player.Pause()
		c.board.Error(errPlayback.Wrap(ev.Err))
	}
}

// StartPolling begins sampling the playback position.
func (c *Controller) StartPolling() tea.Cmd {
	return c.loop.Start()
}

// Polling reports whether the position is being sampled.
func (c *Controller) Polling() bool {
	return c.loop.Running()
}

// Tick samples the position if msg is the live tick of the session.
func (c *Controller) Tick(msg poll.TickMsg) tea.Cmd {
	if !c.loop.Accept(msg) {
		return nil
	}

	c.Sample()

	return c.loop.Next()
}

// Sample reads the playback position, lets the trim selection follow a scrub
// before its start and drops expired notices.
func (c *Controller) Sample() {
	c.board.Expire()

	if !c.started() {
		return
	}

	c.pos = c.player.CurrentTime()

	if c.mode == ModeTrim {
		c.trim.Observe(c.pos)
	}
}

// TogglePlay plays a paused video and pauses a playing one.
func (c *Controller) TogglePlay() error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	if !c.ready {
		return c.fail(ErrNotReady)
	}

	if c.playing {
		c.playing = false
		return c.fail(c.player.Pause())
	}

	c.playing = true

	return c.fail(c.player.Play())
}

// SeekBy moves the playback position by delta seconds within the active
// range.
func (c *Controller) SeekBy(delta float64) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	if !c.ready {
		return c.fail(ErrNotReady)
	}

	lo, hi := 0.0, c.player.Duration()
	if r, ok := c.trim.Bounds(); ok {
		lo, hi = r.Start, r.End
	}

	t := min(max(c.player.CurrentTime()+delta, lo), hi)

	err := c.player.Seek(t)
	if err != nil {
		return c.fail(err)
	}

	c.pos = t

	return nil
}

func (c *Controller) trimming() error {
	switch {
	case !c.started():
		return ErrNoSession
	case c.mode != ModeTrim:
		return ErrNotTrimMode
	case !c.ready:
		return ErrNotReady
	}

	return nil
}

// CaptureTrimStart marks the current position as the trim start.
func (c *Controller) CaptureTrimStart() error {
	if err := c.trimming(); err != nil {
		return c.fail(err)
	}

	err := c.trim.CaptureStart()
	if err == nil {
		c.playing = false
	}

	return c.fail(err)
}

// CaptureTrimEnd marks the current position as the trim end.
func (c *Controller) CaptureTrimEnd() error {
	if err := c.trimming(); err != nil {
		return c.fail(err)
	}

	err := c.trim.CaptureEnd()
	if err == nil {
		c.playing = false
	}

	return c.fail(err)
}

// FinalizeTrim applies the captured trim and restricts questions to it.
func (c *Controller) FinalizeTrim() error {
	if err := c.trimming(); err != nil {
		return c.fail(err)
	}

	err := c.trim.Finalize()
	if err != nil {
		return c.fail(err)
	}

	r, _ := c.trim.Bounds()
	c.editor.Restrict(r)
	c.drag.Cancel()
	c.playing = false
	c.pos = r.Start

	return nil
}

// TrackInteractive reports whether the progress track accepts seeks and
// handle drags.
func (c *Controller) TrackInteractive() bool {
	return c.started() && c.trim.Interactive()
}

// BeginDrag starts dragging a handle of the progress track. mapper converts
// pointer coordinates into seconds.
func (c *Controller) BeginDrag(h Handle, mapper gesture.Mapper) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	if !c.trim.Interactive() {
		return c.fail(ErrTrackLocked)
	}

	if h != HandleSeek && c.mode != ModeTrim {
		return c.fail(ErrNotTrimMode)
	}

	var apply gesture.Apply

	switch h {
	case HandleStart:
		apply = c.trim.DragStart
	case HandleEnd:
		apply = c.trim.DragEnd
	default:
		apply = c.seekTo
	}

	c.drag.Begin(h.String(), mapper, apply)

	return nil
}

func (c *Controller) seekTo(t float64) error {
	t = min(max(t, 0), c.player.Duration())

	err := c.player.Seek(t)
	if err != nil {
		return err
	}

	c.pos = t

	return nil
}

// Dragging reports whether a handle is being dragged.
func (c *Controller) Dragging() bool {
	return c.drag.Active()
}

// DragTo moves the dragged handle to x.
func (c *Controller) DragTo(x int) error {
	return c.fail(c.drag.Move(x))
}

// EndDrag drops the dragged handle at x.
func (c *Controller) EndDrag(x int) error {
	return c.fail(c.drag.End(x))
}

// CanAddQuestion reports whether questions may be placed: the video is ready
// and either the full video is edited or the trim is applied.
func (c *Controller) CanAddQuestion() bool {
	return c.questionsAllowed() == nil
}

func (c *Controller) questionsAllowed() error {
	switch {
	case !c.started():
		return ErrNoSession
	case c.mode == ModeNone:
		return ErrNoMode
	case !c.ready:
		return ErrNotReady
	case c.mode == ModeTrim && c.trim.State() != trim.Finalized:
		return ErrTrimPending
	}

	return nil
}

// AddQuestion pauses the video and opens a question at the current position.
func (c *Controller) AddQuestion() error {
	if err := c.questionsAllowed(); err != nil {
		return c.fail(err)
	}

	err := c.editor.BeginAdd()
	if err != nil {
		if errors.Is(err, timeline.ErrOutsideTrim) {
			c.playing = true
		}

		return c.fail(err)
	}

	c.playing = false

	return nil
}

// Pending returns the time of the question being added.
func (c *Controller) Pending() (float64, bool) {
	if !c.started() {
		return 0, false
	}

	return c.editor.Pending()
}

// NudgeQuestion moves the pending question by steps nudges.
func (c *Controller) NudgeQuestion(steps int) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	return c.fail(c.editor.Nudge(steps))
}

// CommitQuestion adds the pending question and resumes playback.
func (c *Controller) CommitQuestion(question, answer string) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	_, err := c.editor.Commit(question, answer)
	if err != nil {
		return c.fail(err)
	}

	c.playing = true

	return nil
}

// CancelQuestion discards the pending question and resumes playback.
func (c *Controller) CancelQuestion() error {
	if !c.started() {
		return nil
	}

	if _, ok := c.editor.Pending(); !ok {
		return nil
	}

	c.playing = true

	return c.fail(c.editor.Cancel())
}

// DeleteQuestion removes a question. The last question cannot be removed.
func (c *Controller) DeleteQuestion(id string) error {
	if !c.started() {
		return c.fail(ErrNoSession)
	}

	return c.fail(c.editor.Delete(id))
}

// Questions returns the questions placed so far in time order.
func (c *Controller) Questions() []lesson.Question {
	if !c.started() {
		return nil
	}

	return c.editor.Questions()
}

// Lesson assembles the lesson being edited.
func (c *Controller) Lesson() *lesson.Lesson {
	l := &lesson.Lesson{
		Title:       c.title,
		YouTubeLink: c.link,
		YouTubeID:   c.id,
		Questions:   c.Questions(),
	}

	if c.started() {
		if r, ok := c.trim.Bounds(); ok {
			l.SetTrim(r.Start, r.End)
		}
	}

	return l
}

// Export validates the lesson and saves it through sink under a name derived
// from its title. Every violation is raised on its own and nothing is saved.
// After a successful export the caller resets the session once ResetDelay
// has passed.
func (c *Controller) Export(sink lesson.Sink) (string, error) {
	if !c.started() {
		return "", c.fail(ErrNoSession)
	}

	l := c.Lesson()

	err := l.Validate()
	if err != nil {
		return "", c.fail(err)
	}

	data, err := l.Marshal()
	if err != nil {
		return "", c.fail(err)
	}

	path, err := sink.Save(lesson.FileName(l.Title), data)
	if err != nil {
		return "", c.fail(err)
	}

	if c.recorder != nil {
		if err := c.recorder.RecordExport(l, path); err != nil {
			slog.Error("unable to record export", slog.Any("error", err))
		}
	}

	slog.Info("lesson exported",
		slog.String("path", path),
		slog.Int("questions", len(l.Questions)),
	)

	c.board.Info("Saved " + path)

	return path, nil
}

// Reset pauses the video, stops sampling, drops any drag and discards the
// session. Calling it again has no further effect.
func (c *Controller) Reset() {
	if c.started() {
		_ = c.player.Pause()
	}

	c.loop.Stop()
	c.drag.Cancel()
	c.board.DismissAll()

	c.trim = nil
	c.editor = nil
	c.title = ""
	c.link = ""
	c.id = ""
	c.mode = ModeNone
	c.ready = false
	c.playing = false
	c.pos = 0
}
