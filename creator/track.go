package creator

import (
	"strings"

	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/authoring"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/gesture"
	"github.com/Tecplore-innovations/Tecplore-website-sub000/internal/trim"
)

// row is where a track was last drawn on screen. The zero value is not on
// screen.
type row struct {
	x, y, width int
}

func (r row) contains(x, y int) bool {
	return r.width > 0 && y == r.y && x >= r.x && x < r.x+r.width
}

// frac maps a column to a fraction of the row.
func (r row) frac(x int) float64 {
	if r.width <= 1 {
		return 0
	}

	return min(max(float64(x-r.x)/float64(r.width-1), 0), 1)
}

// column maps a fraction of the row to a column offset.
func (r row) column(frac float64) int {
	if r.width <= 1 {
		return 0
	}

	return int(min(max(frac, 0), 1)*float64(r.width-1) + 0.5)
}

// seekMapper converts columns of the progress track into positions. The
// track spans the window of the trim selection.
func seekMapper(r row, sel *trim.Selector, duration float64) gesture.Mapper {
	return func(x int) float64 {
		return sel.Unproject(r.frac(x), duration)
	}
}

// rangeMapper converts columns of the range track into positions. The range
// track always spans the whole video.
func rangeMapper(r row, duration float64) gesture.Mapper {
	return func(x int) float64 {
		return r.frac(x) * duration
	}
}

// handleAt returns the trim handle drawn within a column of x. The nearer
// handle wins, and the start handle on a tie.
func handleAt(r row, sel *trim.Selector, duration float64, x int) (authoring.Handle, bool) {
	if duration <= 0 {
		return authoring.HandleSeek, false
	}

	var (
		best  = authoring.HandleSeek
		dist  = 2
		found bool
	)

	if start, ok := sel.Start(); ok {
		if d := abs(x - r.x - r.column(start/duration)); d < dist {
			best, dist, found = authoring.HandleStart, d, true
		}
	}

	if end, ok := sel.End(); ok {
		if d := abs(x - r.x - r.column(end/duration)); d < dist {
			best, found = authoring.HandleEnd, true
		}
	}

	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// renderRange draws the whole video as a line of width cells with the trim
// candidates as brackets and the playback position as a dot.
func renderRange(width int, sel *trim.Selector, pos, duration float64) []rune {
	if width <= 0 {
		return nil
	}

	r := row{width: width}
	cells := []rune(strings.Repeat("─", width))

	if duration <= 0 {
		return cells
	}

	start, hasStart := sel.Start()
	end, hasEnd := sel.End()

	if hasStart && hasEnd {
		for i := r.column(start / duration); i <= r.column(end/duration); i++ {
			cells[i] = '━'
		}
	}

	cells[r.column(pos/duration)] = '●'

	if hasStart {
		cells[r.column(start/duration)] = '['
	}

	if hasEnd {
		cells[r.column(end/duration)] = ']'
	}

	return cells
}
