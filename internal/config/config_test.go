package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/testutil"
)

func defaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			PollInterval: 200 * time.Millisecond,
			EndEpsilon:   0.25,
			SeekStep:     5,
		},
		Editor: EditorConfig{
			NudgeStep: 0.5,
		},
		Notices: NoticesConfig{
			Timeout: 5 * time.Second,
		},
		Export: ExportConfig{
			Dir:        ".",
			ResetDelay: 1500 * time.Millisecond,
		},
		Media: MediaConfig{
			Backend:         "sim",
			Command:         "mpv --no-terminal --force-window=yes --keep-open=yes",
			DefaultDuration: 10 * time.Minute,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   "chime",
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	again, err := New(WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := &Config{
		Player: PlayerConfig{
			PollInterval: 100 * time.Millisecond,
			EndEpsilon:   0.5,
			SeekStep:     10,
		},
		Editor: EditorConfig{
			NudgeStep: 1,
		},
		Notices: NoticesConfig{
			Timeout: 8 * time.Second,
		},
		Export: ExportConfig{
			Dir:        "/tmp/lessons",
			ResetDelay: 2 * time.Second,
		},
		Media: MediaConfig{
			Backend:         "mpv",
			Command:         "mpv --no-terminal",
			DefaultDuration: 20 * time.Minute,
		},
		YouTube: YouTubeConfig{
			APIKey: "test-key",
		},
		Notifications: NotificationConfig{
			Sound: "off",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LESSONS_PLAYER_POLL_INTERVAL", "400ms")
	t.Setenv("LESSONS_MEDIA_BACKEND", "mpv")

	cfg, err := New(WithViperConfig(filepath.Join(t.TempDir(), "config.yml")))
	require.NoError(t, err)

	assert.Equal(t, 400*time.Millisecond, cfg.Player.PollInterval)
	assert.Equal(t, "mpv", cfg.Media.Backend)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		err    error
		modify func(c *Config)
		name   string
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name: "poll interval too short",
			modify: func(c *Config) {
				c.Player.PollInterval = time.Millisecond
			},
			err: errInvalidDuration,
		},
		{
			name: "zero end epsilon",
			modify: func(c *Config) {
				c.Player.EndEpsilon = 0
			},
			err: errInvalidStep,
		},
		{
			name: "huge nudge",
			modify: func(c *Config) {
				c.Editor.NudgeStep = 60
			},
			err: errInvalidStep,
		},
		{
			name: "unknown backend",
			modify: func(c *Config) {
				c.Media.Backend = "vlc"
			},
			err: errUnknownBackend,
		},
		{
			name: "mpv without command",
			modify: func(c *Config) {
				c.Media.Backend = "mpv"
				c.Media.Command = " "
			},
			err: errEmptyCommand,
		},
		{
			name: "unsupported sound",
			modify: func(c *Config) {
				c.Notifications.Sound = "bell.aiff"
			},
			err: errInvalidSoundFormat,
		},
		{
			name: "missing sound",
			modify: func(c *Config) {
				c.Notifications.Sound = "/nowhere/bell.wav"
			},
			err: errUnknownSound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func newContext(t *testing.T, flags map[string]string, args ...string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("lessons", flag.ContinueOnError)

	for _, name := range []string{"title", "url", "mode", "out", "backend", "duration", "since", "kind", "sort"} {
		_ = f.String(name, "", "")
	}

	for _, name := range []string{"json", "no-color", "debug"} {
		_ = f.Bool(name, false, "")
	}

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	require.NoError(t, f.Parse(args))

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIConfig(t *testing.T) {
	ctx := newContext(t, map[string]string{
		"title":    "  Waves ",
		"mode":     "TRIM",
		"out":      "exports",
		"backend":  "mpv",
		"duration": "212",
		"sort":     "title",
		"json":     "true",
	}, "lesson.json")

	c := defaultConfig()
	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, "Waves", c.CLI.Title)
	assert.Equal(t, "trim", c.CLI.Mode)
	assert.Equal(t, "lesson.json", c.CLI.File)
	assert.Equal(t, "exports", c.Export.Dir)
	assert.Equal(t, "mpv", c.Media.Backend)
	assert.Equal(t, 212*time.Second, c.CLI.Duration)
	assert.Equal(t, "title", c.CLI.Sort)
	assert.True(t, c.CLI.JSON)
}

func TestCLIConfigRejectsBadValues(t *testing.T) {
	testCases := []struct {
		flags map[string]string
		err   error
	}{
		{flags: map[string]string{"mode": "half"}, err: errInvalidMode},
		{flags: map[string]string{"kind": "draft"}, err: errInvalidKind},
		{flags: map[string]string{"sort": "size"}, err: errInvalidSort},
		{flags: map[string]string{"duration": "soon"}, err: errInvalidCLIDuration},
		{flags: map[string]string{"since": "%%%"}, err: errInvalidSince},
	}

	for _, tc := range testCases {
		ctx := newContext(t, tc.flags)

		err := WithCLIConfig(ctx)(defaultConfig())
		assert.ErrorIs(t, err, tc.err)
	}
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	c := defaultConfig()
	require.NoError(t, WithCLIConfig(newContext(t, nil))(c))

	assert.True(t, c.Display.NoColor)
}

func TestPromptValidators(t *testing.T) {
	assert.Error(t, validateTitle("   "))
	assert.NoError(t, validateTitle("Waves"))
	assert.Error(t, validateLink("https://example.com"))
	assert.NoError(t, validateLink("https://youtu.be/dQw4w9WgXcQ"))
	assert.Error(t, validateFile(filepath.Join(t.TempDir(), "missing.json")))
}
