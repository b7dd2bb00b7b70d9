package game

import "time"

// Timing bounds a swipe.
type Timing struct {
	SwipeLimit  time.Duration // first to last accepted key
	MinInterval time.Duration // anything faster is bounce or auto repeat
	MaxInterval time.Duration // anything slower is not a swipe
}

var DefaultTiming = Timing{
	SwipeLimit:  800 * time.Millisecond,
	MinInterval: 50 * time.Millisecond,
	MaxInterval: 250 * time.Millisecond,
}
