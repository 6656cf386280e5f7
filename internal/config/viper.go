package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LESSONS"

const (
	keyPollInterval         = "player.poll_interval"
	keyEndEpsilon           = "player.end_epsilon"
	keySeekStep             = "player.seek_step"
	keyNudgeStep            = "editor.nudge_step"
	keyNoticeTimeout        = "notices.timeout"
	keyExportDir            = "export.dir"
	keyResetDelay           = "export.reset_delay"
	keyMediaBackend         = "media.backend"
	keyMediaCommand         = "media.command"
	keyDefaultDuration      = "media.default_duration"
	keyYouTubeAPIKey        = "youtube.api_key"
	keyYouTubeVideosURL     = "youtube.videos_url"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath and LESSONS_* environment variables. A missing file is created
// with the default settings.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and environment overrides.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyPollInterval, "200ms")
	v.SetDefault(keyEndEpsilon, 0.25)
	v.SetDefault(keySeekStep, 5.0)
	v.SetDefault(keyNudgeStep, 0.5)
	v.SetDefault(keyNoticeTimeout, "5s")
	v.SetDefault(keyExportDir, ".")
	v.SetDefault(keyResetDelay, "1.5s")
	v.SetDefault(keyMediaBackend, "sim")
	v.SetDefault(keyMediaCommand, "mpv --no-terminal --force-window=yes --keep-open=yes")
	v.SetDefault(keyDefaultDuration, "10m")
	v.SetDefault(keyYouTubeAPIKey, "")
	v.SetDefault(keyYouTubeVideosURL, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, "chime")
	v.SetDefault(keyDarkTheme, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
