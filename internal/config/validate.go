package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var (
	minPollInterval = 50 * time.Millisecond
	maxPollInterval = 2 * time.Second

	minNoticeTimeout = time.Second
	maxNoticeTimeout = time.Minute

	maxResetDelay = 30 * time.Second

	minDefaultDuration = time.Second
	maxDefaultDuration = 12 * time.Hour

	minNudgeStep = 0.05
	maxNudgeStep = 10.0

	maxEndEpsilon = 5.0
	maxSeekStep   = 600.0
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}

	if c.Editor.NudgeStep < minNudgeStep || c.Editor.NudgeStep > maxNudgeStep {
		return errInvalidStep.Fmt("editor.nudge_step", minNudgeStep, maxNudgeStep)
	}

	if c.Notices.Timeout < minNoticeTimeout || c.Notices.Timeout > maxNoticeTimeout {
		return errInvalidDuration.Fmt("notices.timeout", minNoticeTimeout, maxNoticeTimeout)
	}

	if c.Export.ResetDelay < 0 || c.Export.ResetDelay > maxResetDelay {
		return errInvalidDuration.Fmt("export.reset_delay", time.Duration(0), maxResetDelay)
	}

	if err := c.validateMedia(); err != nil {
		return err
	}

	return validateSound(c.Notifications.Sound)
}

func (c *Config) validatePlayer() error {
	p := c.Player

	if p.PollInterval < minPollInterval || p.PollInterval > maxPollInterval {
		return errInvalidDuration.Fmt("player.poll_interval", minPollInterval, maxPollInterval)
	}

	if p.EndEpsilon <= 0 || p.EndEpsilon > maxEndEpsilon {
		return errInvalidStep.Fmt("player.end_epsilon", 0, maxEndEpsilon)
	}

	if p.SeekStep <= 0 || p.SeekStep > maxSeekStep {
		return errInvalidStep.Fmt("player.seek_step", 0, maxSeekStep)
	}

	return nil
}

func (c *Config) validateMedia() error {
	m := c.Media

	switch m.Backend {
	case "sim":
	case "mpv":
		if strings.TrimSpace(m.Command) == "" {
			return errEmptyCommand
		}
	default:
		return errUnknownBackend.Fmt(m.Backend)
	}

	if m.DefaultDuration < minDefaultDuration || m.DefaultDuration > maxDefaultDuration {
		return errInvalidDuration.Fmt("media.default_duration", minDefaultDuration, maxDefaultDuration)
	}

	return nil
}

// validateSound accepts the built in sounds or the path to an audio file.
func validateSound(sound string) error {
	if sound == "" || sound == "chime" || sound == "off" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	validExts := []string{".mp3", ".ogg", ".flac", ".wav"}

	if !slices.Contains(validExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return nil
}
