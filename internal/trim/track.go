package trim

// Window returns the part of the video the progress track spans. Once a
// start is captured the track is rescaled to [start, end], using duration
// while no end is set.
func (s *Selector) Window(duration float64) (lo, hi float64) {
	if s.start == nil {
		return 0, duration
	}

	hi = duration
	if s.end != nil {
		hi = *s.end
	}

	return *s.start, hi
}

// Project maps a position in seconds to a fraction of the track.
func (s *Selector) Project(pos, duration float64) float64 {
	lo, hi := s.Window(duration)
	if hi <= lo {
		return 0
	}

	return clamp((pos-lo)/(hi-lo), 0, 1)
}

// Unproject maps a fraction of the track back to seconds.
func (s *Selector) Unproject(frac, duration float64) float64 {
	lo, hi := s.Window(duration)

	return lo + clamp(frac, 0, 1)*(hi-lo)
}

// Marker returns where the live position marker is drawn on the track. While
// both candidates are set it sits at the middle of the range so either handle
// can be dragged precisely.
func (s *Selector) Marker(pos, duration float64) float64 {
	if s.State() == RangeCaptured {
		return 0.5
	}

	return s.Project(pos, duration)
}
