package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/config"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/store"
)

type lookupFunc func(ctx context.Context, id string) (float64, error)

func (f lookupFunc) Duration(ctx context.Context, id string) (float64, error) {
	return f(ctx, id)
}

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestResolveDuration(t *testing.T) {
	found := lookupFunc(func(_ context.Context, id string) (float64, error) {
		if id != "dQw4w9WgXcQ" {
			t.Errorf("looked up %q", id)
		}

		return 212, nil
	})

	failing := lookupFunc(func(context.Context, string) (float64, error) {
		return 0, errors.New("quota exceeded")
	})

	testCases := []struct {
		lookup  durationLookup
		name    string
		backend string
		id      string
		flag    time.Duration
		want    float64
	}{
		{name: "flag wins", backend: "sim", flag: 90 * time.Second, lookup: found, id: "dQw4w9WgXcQ", want: 90},
		{name: "api lookup", backend: "sim", lookup: found, id: "dQw4w9WgXcQ", want: 212},
		{name: "api failure", backend: "sim", lookup: failing, id: "dQw4w9WgXcQ", want: 600},
		{name: "no api key", backend: "sim", id: "dQw4w9WgXcQ", want: 600},
		{name: "unknown video", backend: "sim", lookup: found, want: 600},
		{name: "mpv reports its own", backend: "mpv", flag: time.Minute, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Media.Backend = tc.backend
			cfg.Media.DefaultDuration = 10 * time.Minute
			cfg.CLI.Duration = tc.flag

			got := resolveDuration(context.Background(), cfg, tc.lookup, tc.id)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSortRecords(t *testing.T) {
	now := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)

	records := []*store.Record{
		{Title: "Lesson 10", Time: now},
		{Title: "Lesson 2", Time: now.Add(time.Hour)},
		{Title: "Algebra", Time: now.Add(-time.Hour)},
	}

	sortRecords(records, "title")
	assert.Equal(t, "Algebra", records[0].Title)
	assert.Equal(t, "Lesson 2", records[1].Title)
	assert.Equal(t, "Lesson 10", records[2].Title)

	sortRecords(records, "time")
	assert.Equal(t, "Algebra", records[0].Title)
	assert.Equal(t, "Lesson 10", records[1].Title)
	assert.Equal(t, "Lesson 2", records[2].Title)
}

func TestPrintRecordsTable(t *testing.T) {
	var buf bytes.Buffer

	printRecordsTable(&buf, []*store.Record{
		{
			Kind:      store.KindPlayback,
			Title:     "Waves",
			VideoID:   "dQw4w9WgXcQ",
			Questions: 3,
			Answered:  2,
			Trimmed:   true,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Waves (trimmed)")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "playback")
}

func TestEditorCommand(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")

	assert.Equal(t, []string{"code", "--wait", "/tmp/config.yml"}, editorCommand("/tmp/config.yml"))

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "vim")

	assert.Equal(t, []string{"vim", "/tmp/config.yml"}, editorCommand("/tmp/config.yml"))
}

func TestCommands(t *testing.T) {
	app := Get()

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"create", "play", "inspect", "history", "edit-config"}, names)
}
