package notice_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/notice"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func newBoard() (*notice.Board, *clock) {
	c := &clock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}

	return notice.NewBoard(0, notice.WithNow(c.Now)), c
}

func texts(ns []notice.Notice) []string {
	out := make([]string, 0, len(ns))

	for _, n := range ns {
		out = append(out, n.Text)
	}

	return out
}

func TestNoticesExpire(t *testing.T) {
	b, c := newBoard()

	b.Info("exported")
	c.now = c.now.Add(3 * time.Second)
	b.Error(errors.New("add at least one question"))

	assert.Equal(
		t,
		[]string{"exported", "add at least one question"},
		texts(b.Active()),
	)

	c.now = c.now.Add(2 * time.Second)

	assert.True(t, b.Expire())
	assert.Equal(t, []string{"add at least one question"}, texts(b.Active()))

	latest, ok := b.Latest()
	assert.True(t, ok)
	assert.Equal(t, notice.Error, latest.Level)

	c.now = c.now.Add(3 * time.Second)

	assert.True(t, b.Expire())
	assert.False(t, b.Expire())

	_, ok = b.Latest()
	assert.False(t, ok)
}

func TestJoinedErrorsAreSplit(t *testing.T) {
	b, _ := newBoard()

	b.Error(nil)
	b.Error(errors.Join(errors.New("enter a lesson title"), errors.New("add at least one question")))

	assert.Equal(
		t,
		[]string{"enter a lesson title", "add at least one question"},
		texts(b.Active()),
	)
}

func TestDismiss(t *testing.T) {
	b, _ := newBoard()

	first := b.Info("one")
	b.Info("two")

	b.Dismiss(first)
	b.Dismiss(42)

	assert.Equal(t, []string{"two"}, texts(b.Active()))

	b.DismissAll()
	assert.Empty(t, b.Active())
}
