package authoring

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	ErrInvalidLocator = &apperr.Error{
		Message: "%q is not a recognised YouTube link",
	}

	ErrSessionActive = &apperr.Error{
		Message: "a lesson is already being edited: reset it first",
	}

	ErrNoSession = &apperr.Error{
		Message: "enter a title and a YouTube link first",
	}

	ErrModeLocked = &apperr.Error{
		Message: "the editing mode is already chosen: reset to change it",
	}

	ErrUnknownMode = &apperr.Error{
		Message: "unknown editing mode",
	}

	ErrNoMode = &apperr.Error{
		Message: "choose between the full video and a trimmed video first",
	}

	ErrNotTrimMode = &apperr.Error{
		Message: "trimming is only available in trim mode",
	}

	ErrNotReady = &apperr.Error{
		Message: "wait for the video to load",
	}

	ErrTrimPending = &apperr.Error{
		Message: "apply the trim before adding questions",
	}

	ErrTrackLocked = &apperr.Error{
		Message: "the progress bar is locked once the trim is applied",
	}

	errPlayback = &apperr.Error{
		Message: "the video could not be played",
	}
)
