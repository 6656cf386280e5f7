// Package poll samples a media clock at a fixed interval from a bubbletea
// program. A Loop never has more than one live tick: starting or stopping it
// invalidates every tick already scheduled.
package poll

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the default time between samples.
const DefaultInterval = 200 * time.Millisecond

var lastID atomic.Int64

// TickMsg is delivered when a loop is due for a sample.
type TickMsg struct {
	ID  int
	gen int
}

// Loop is a restartable poll timer.
type Loop struct {
	interval time.Duration
	id       int
	gen      int
	running  bool
}

// New returns a stopped loop that ticks every interval. A non positive
// interval uses DefaultInterval.
func New(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Loop{
		id:       int(lastID.Add(1)),
		interval: interval,
	}
}

// ID identifies the loop in its TickMsgs.
func (l *Loop) ID() int {
	return l.id
}

// Interval returns the time between samples.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	return l.running
}

// Start cancels any scheduled tick and schedules a fresh one.
func (l *Loop) Start() tea.Cmd {
	l.gen++
	l.running = true

	return l.tick()
}

// Stop cancels any scheduled tick.
func (l *Loop) Stop() {
	l.gen++
	l.running = false
}

// Accept reports whether msg is the live tick of this loop. Ticks from other
// loops or from before the last Start or Stop are rejected.
func (l *Loop) Accept(msg TickMsg) bool {
	return l.running && msg.ID == l.id && msg.gen == l.gen
}

// Next schedules the tick following an accepted one.
func (l *Loop) Next() tea.Cmd {
	if !l.running {
		return nil
	}

	return l.tick()
}

func (l *Loop) tick() tea.Cmd {
	id, gen := l.id, l.gen

	return tea.Tick(l.interval, func(_ time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen}
	})
}
