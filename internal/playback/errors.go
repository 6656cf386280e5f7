package playback

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	ErrLessonLoaded = &apperr.Error{
		Message: "a lesson is already open: return to the start first",
	}

	ErrNoQuestion = &apperr.Error{
		Message: "no question is being asked",
	}

	ErrNotPlaying = &apperr.Error{
		Message: "the lesson is not playing",
	}

	ErrNotEnded = &apperr.Error{
		Message: "the summary is available once the lesson ends",
	}

	errPlayback = &apperr.Error{
		Message: "the video could not be played",
	}
)
