// Package notice holds the short-lived messages shown to the user after an
// action is rejected or completes.
package notice

import "time"

// DefaultTimeout is how long a notice stays up when not dismissed.
const DefaultTimeout = 5 * time.Second

// Level is the severity of a notice.
type Level int

const (
	Info Level = iota
	Error
)

// Notice is a single message.
type Notice struct {
	expires time.Time
	Text    string
	ID      int
	Level   Level
}

// Board is the list of notices currently shown.
type Board struct {
	now     func() time.Time
	notices []Notice
	timeout time.Duration
	nextID  int
}

// Option configures a Board.
type Option func(*Board)

// WithNow replaces the function the board reads the time from.
func WithNow(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// NewBoard returns an empty board whose notices expire after timeout. A non
// positive timeout uses DefaultTimeout.
func NewBoard(timeout time.Duration, opts ...Option) *Board {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	b := &Board{
		timeout: timeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Push adds a notice and returns its id.
func (b *Board) Push(level Level, text string) int {
	b.nextID++

	b.notices = append(b.notices, Notice{
		ID:      b.nextID,
		Level:   level,
		Text:    text,
		expires: b.now().Add(b.timeout),
	})

	return b.nextID
}

// Info adds an informational notice.
func (b *Board) Info(text string) int {
	return b.Push(Info, text)
}

// Error adds one error notice per error joined in err.
func (b *Board) Error(err error) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			b.Error(e)
		}

		return
	}

	b.Push(Error, err.Error())
}

// Active returns the notices that have not expired, oldest first.
func (b *Board) Active() []Notice {
	now := b.now()

	var active []Notice

	for _, n := range b.notices {
		if now.Before(n.expires) {
			active = append(active, n)
		}
	}

	return active
}

// Expire drops expired notices and reports whether any were dropped.
func (b *Board) Expire() bool {
	before := len(b.notices)
	b.notices = b.Active()

	return len(b.notices) != before
}

// Dismiss removes the notice with the given id.
func (b *Board) Dismiss(id int) {
	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			return
		}
	}
}

// DismissAll removes every notice.
func (b *Board) DismissAll() {
	b.notices = nil
}

// Latest returns the newest active notice.
func (b *Board) Latest() (Notice, bool) {
	active := b.Active()
	if len(active) == 0 {
		return Notice{}, false
	}

	return active[len(active)-1], true
}
