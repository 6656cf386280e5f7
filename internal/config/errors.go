package config

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidStep = &apperr.Error{
		Message: "%s must be between %v and %v seconds",
	}

	errUnknownBackend = &apperr.Error{
		Message: "media.backend must be sim or mpv, got %q",
	}

	errEmptyCommand = &apperr.Error{
		Message: "media.command cannot be empty when the mpv backend is selected",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --duration: %v",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value %q",
	}

	errInvalidMode = &apperr.Error{
		Message: "--mode must be full or trim, got %q",
	}

	errInvalidKind = &apperr.Error{
		Message: "--kind must be export or playback, got %q",
	}

	errInvalidSort = &apperr.Error{
		Message: "--sort must be time or title, got %q",
	}
)
