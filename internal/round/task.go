package round

import "time"

// Task is a deferred request to start the next round. Epoch is the round
// that scheduled it.
type Task struct {
	Epoch uint64
}

// Scheduler runs a task after a delay by handing it back to Controller.Fire
// on the same goroutine that drives Tick and HandleKey.
type Scheduler interface {
	After(d time.Duration, task Task)
}

// Random picks combos. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}
