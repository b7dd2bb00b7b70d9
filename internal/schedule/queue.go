package schedule

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/round"
)

type entry struct {
	due  time.Duration
	task round.Task
}

// Queue holds deferred round tasks against the frame loop clock. Nothing
// runs on its own: the loop calls Advance and fires what comes back, so
// tasks execute on the loop goroutine.
type Queue struct {
	now     time.Duration
	entries []entry
}

// After queues task to become due d after the last Advance.
func (q *Queue) After(d time.Duration, task round.Task) {
	e := entry{due: q.now + d, task: task}
	i := len(q.entries)
	for i > 0 && q.entries[i-1].due > e.due {
		i--
	}
	q.entries = append(q.entries, entry{})
	copy(q.entries[i+1:], q.entries[i:])
	q.entries[i] = e
}

// Advance moves the clock to now and returns the due tasks in order.
func (q *Queue) Advance(now time.Duration) []round.Task {
	if now > q.now {
		q.now = now
	}
	n := 0
	for n < len(q.entries) && q.entries[n].due <= q.now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]round.Task, n)
	for i := range due {
		due[i] = q.entries[i].task
	}
	q.entries = q.entries[n:]
	return due
}

func (q *Queue) Len() int {
	return len(q.entries)
}

func (q *Queue) Now() time.Duration {
	return q.now
}
