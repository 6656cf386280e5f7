package lesson

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Validate reports every reason the lesson cannot be exported. The returned
// error joins one error per violation, or is nil for a valid lesson.
func (l *Lesson) Validate() error {
	errs := translate(validate.Struct(l), 0)

	if (l.TrimStart == nil) != (l.TrimEnd == nil) {
		errs = append(errs, ErrTrimOrder)
	} else if l.Trimmed() && *l.TrimEnd <= *l.TrimStart {
		errs = append(errs, ErrTrimOrder)
	}

	qs := make([]Question, len(l.Questions))
	copy(qs, l.Questions)
	SortQuestions(qs)

	for i := range qs {
		q := qs[i]
		n := i + 1

		errs = append(errs, translate(validate.Struct(q), n)...)

		if i > 0 && q.Time <= qs[i-1].Time {
			errs = append(errs, ErrQuestionOrder.Fmt(n, timeutil.Clock(q.Time)))
		}

		if l.Trimmed() && (q.Time < *l.TrimStart || q.Time > *l.TrimEnd) {
			errs = append(errs, ErrOutsideTrim.Fmt(n, timeutil.Clock(q.Time)))
		}
	}

	return errors.Join(errs...)
}

// checkTrim reports a trim window the player cannot play.
func (l *Lesson) checkTrim() error {
	if (l.TrimStart == nil) != (l.TrimEnd == nil) {
		return ErrTrimOrder
	}

	if !l.Trimmed() {
		return nil
	}

	if *l.TrimStart < 0 || *l.TrimEnd < 0 {
		return ErrNegativeTrim
	}

	if *l.TrimEnd <= *l.TrimStart {
		return ErrTrimOrder
	}

	return nil
}

// translate maps validator field errors onto the package's errors. n is the
// 1-based position of the question being validated.
func translate(err error, n int) []error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}

	out := make([]error, 0, len(verrs))

	for _, fe := range verrs {
		switch fe.StructField() {
		case "Title":
			out = append(out, ErrTitleRequired)
		case "YouTubeID":
			out = append(out, ErrSourceRequired)
		case "Questions":
			out = append(out, ErrNoQuestions)
		case "TrimStart", "TrimEnd":
			out = append(out, ErrNegativeTrim)
		case "Question":
			out = append(out, ErrQuestionRequired.Fmt(n))
		case "Answer":
			out = append(out, ErrAnswerRequired.Fmt(n))
		case "Time":
			out = append(out, ErrNegativeTime.Fmt(n))
		default:
			out = append(out, err)
		}
	}

	return out
}
