package trim

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	ErrNoStart = &apperr.Error{
		Message: "set the trim start first",
	}

	ErrNoEnd = &apperr.Error{
		Message: "set the trim end first",
	}

	ErrEndTooEarly = &apperr.Error{
		Message: "trim end (%s) must be after trim start (%s)",
	}

	ErrIncomplete = &apperr.Error{
		Message: "set both the trim start and end before applying the trim",
	}

	ErrLocked = &apperr.Error{
		Message: "the trim is applied and can no longer be changed",
	}
)
