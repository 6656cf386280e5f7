// Package summary reports what happened during a lesson playthrough and
// describes lesson files on the command line
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/lesson"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/timeutil"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/ui"
)

// Item is a question as it fared during a playthrough.
type Item struct {
	Question string
	Answer   string
	Time     float64
	Answered bool
}

// Summary is the end of lesson report.
type Summary struct {
	Title    string
	Items    []Item
	Answered int
}

// Build summarises l. answered reports whether the question at index i was
// answered, and may be nil when nothing was.
func Build(l *lesson.Lesson, answered func(i int) bool) *Summary {
	s := &Summary{
		Title: l.Title,
		Items: make([]Item, 0, len(l.Questions)),
	}

	for i, q := range l.Questions {
		done := answered != nil && answered(i)
		if done {
			s.Answered++
		}

		s.Items = append(s.Items, Item{
			Time:     q.Time,
			Question: q.Question,
			Answer:   q.Answer,
			Answered: done,
		})
	}

	return s
}

// Total is the number of questions in the lesson.
func (s *Summary) Total() int {
	return len(s.Items)
}

// Score formats the number of answered questions.
func (s *Summary) Score() string {
	return fmt.Sprintf("%d of %d questions answered", s.Answered, s.Total())
}

// Table returns the summary as table rows, header first.
func (s *Summary) Table() [][]string {
	data := [][]string{{"#", "TIME", "QUESTION", "ANSWER", "ANSWERED"}}

	for i, item := range s.Items {
		mark := ui.Red("no")
		if item.Answered {
			mark = ui.Green("yes")
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			timeutil.Clock(item.Time),
			item.Question,
			item.Answer,
			mark,
		})
	}

	return data
}

// Print writes the summary to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, ui.Blue(s.Title))
	fmt.Fprintln(w, s.Score())

	ui.PrintTable(s.Table(), w)
}

// Describe writes the contents of a lesson file to w.
func Describe(l *lesson.Lesson, w io.Writer) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", ui.Blue("Title:"), l.Title)
	fmt.Fprintf(&b, "%s %s\n", ui.Blue("Video:"), l.YouTubeLink)
	fmt.Fprintf(&b, "%s %s\n", ui.Blue("Video ID:"), l.YouTubeID)

	trim := "full video"
	if l.Trimmed() {
		trim = timeutil.Precise(*l.TrimStart) + " to " + timeutil.Precise(*l.TrimEnd)
	}

	fmt.Fprintf(&b, "%s %s\n", ui.Blue("Range:"), trim)

	fmt.Fprint(w, b.String())

	data := [][]string{{"#", "TIME", "QUESTION", "ANSWER"}}

	for i, q := range l.Questions {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			timeutil.Precise(q.Time),
			q.Question,
			q.Answer,
		})
	}

	ui.PrintTable(data, w)

	err := l.Validate()
	if err != nil {
		pterm.Fprintln(w, ui.Red("This lesson cannot be exported as is:"))

		for _, line := range strings.Split(err.Error(), "\n") {
			pterm.Fprintln(w, "  - "+line)
		}
	}
}
