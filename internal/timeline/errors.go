package timeline

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	ErrOutsideTrim = &apperr.Error{
		Message: "questions must be within the trimmed range (%s to %s)",
	}

	ErrTooLate = &apperr.Error{
		Message: "questions must come before %s, where playback stops",
	}

	ErrDuplicateTime = &apperr.Error{
		Message: "another question is already asked at %s",
	}

	ErrQuestionRequired = &apperr.Error{
		Message: "enter the question text",
	}

	ErrAnswerRequired = &apperr.Error{
		Message: "enter the answer text",
	}

	ErrLastQuestion = &apperr.Error{
		Message: "a lesson needs at least one question",
	}

	ErrNotFound = &apperr.Error{
		Message: "no question with id %s",
	}

	ErrNoPending = &apperr.Error{
		Message: "no question is being added",
	}

	ErrPending = &apperr.Error{
		Message: "finish the question being added first",
	}
)
