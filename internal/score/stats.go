package score

import "time"

// Stats counts what happened during one game, for the side panel.
type Stats struct {
	Taps       int
	Swipes     int
	Resets     int
	Debounced  int
	Collisions int

	gapSum   time.Duration
	gapCount int
}

// AddGap records the interval of an accepted swipe step.
func (s *Stats) AddGap(d time.Duration) {
	s.gapSum += d
	s.gapCount++
}

func (s Stats) MeanGap() time.Duration {
	if s.gapCount == 0 {
		return 0
	}
	return s.gapSum / time.Duration(s.gapCount)
}
