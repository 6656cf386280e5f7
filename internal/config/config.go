// Package config loads the lessons configuration from the config file, the
// environment and the command line
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Media         MediaConfig        `mapstructure:"media"`
		Export        ExportConfig       `mapstructure:"export"`
		YouTube       YouTubeConfig      `mapstructure:"youtube"`
		CLI           CLIConfig          `mapstructure:"-"`
		Player        PlayerConfig       `mapstructure:"player"`
		Editor        EditorConfig       `mapstructure:"editor"`
		Notices       NoticesConfig      `mapstructure:"notices"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// PlayerConfig tunes lesson playback.
	PlayerConfig struct {
		PollInterval time.Duration `mapstructure:"poll_interval"`
		EndEpsilon   float64       `mapstructure:"end_epsilon"`
		SeekStep     float64       `mapstructure:"seek_step"`
	}

	// EditorConfig tunes lesson editing.
	EditorConfig struct {
		NudgeStep float64 `mapstructure:"nudge_step"`
	}

	// NoticesConfig controls on-screen messages.
	NoticesConfig struct {
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// ExportConfig controls where lessons are saved.
	ExportConfig struct {
		Dir        string        `mapstructure:"dir"`
		ResetDelay time.Duration `mapstructure:"reset_delay"`
	}

	// MediaConfig selects the video player.
	MediaConfig struct {
		Backend         string        `mapstructure:"backend"`
		Command         string        `mapstructure:"command"`
		DefaultDuration time.Duration `mapstructure:"default_duration"`
	}

	// YouTubeConfig holds YouTube Data API settings.
	YouTubeConfig struct {
		APIKey    string `mapstructure:"api_key"`
		VideosURL string `mapstructure:"videos_url"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
		NoColor   bool `mapstructure:"-"`
	}

	// CLIConfig holds values that only come from the command line or the
	// setup prompts.
	CLIConfig struct {
		Since    time.Time
		Title    string
		URL      string
		Mode     string
		File     string
		Kind     string
		Sort     string
		Duration time.Duration
		JSON     bool
		Debug    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
