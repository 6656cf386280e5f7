package lesson

import "github.com/Tecplore-innovations/Tecplore-website-sub000/internal/apperr"

var (
	ErrTitleRequired = &apperr.Error{
		Message: "enter a lesson title",
	}

	ErrSourceRequired = &apperr.Error{
		Message: "enter a valid YouTube link",
	}

	ErrNoQuestions = &apperr.Error{
		Message: "add at least one question",
	}

	ErrQuestionRequired = &apperr.Error{
		Message: "question %d: enter the question text",
	}

	ErrAnswerRequired = &apperr.Error{
		Message: "question %d: enter the answer text",
	}

	ErrNegativeTime = &apperr.Error{
		Message: "question %d: time must not be negative",
	}

	ErrQuestionOrder = &apperr.Error{
		Message: "question %d at %s must come after the previous question",
	}

	ErrOutsideTrim = &apperr.Error{
		Message: "question %d at %s is outside the trimmed range",
	}

	ErrTrimOrder = &apperr.Error{
		Message: "trim end must be after trim start",
	}

	ErrNegativeTrim = &apperr.Error{
		Message: "trim bounds must not be negative",
	}

	ErrInvalidFile = &apperr.Error{
		Message: "invalid lesson file",
	}
)
