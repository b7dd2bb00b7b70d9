package render

import "time"

// Loop calls frame once per period until it returns false. duration is
// the time elapsed since the loop began.
func Loop(period time.Duration, frame func(duration time.Duration) bool) {
	startTime := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)

		if !frame(now.Sub(startTime)) {
			return
		}

		time.Sleep(time.Until(deadline))
	}
}
