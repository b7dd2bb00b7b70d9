package gesture

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
)

// Result describes what a key down did to the recognizer.
type Result uint8

const (
	Ignored   Result = iota // not a key of the row, or no combo
	Held                    // single combo, target not held yet
	Debounced               // a different key arrived too soon, only identity was recorded
	Repeat                  // same physical key again, auto repeat or a second press
	Started                 // first symbol of the swipe matched
	Advanced                // swipe moved one key further
	Reset                   // swipe progress was thrown away
	Completed               // combo matched
)

var resultNames = [...]string{"ignored", "held", "debounced", "repeat", "started", "advanced", "reset", "completed"}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Progress is the bookkeeping of an ordered swipe.
type Progress struct {
	Matched  []game.Symbol
	Current  game.KeyCode  // last key that went through sequence handling
	Previous game.KeyCode  // key before Current, for direction
	LastCode game.KeyCode  // last key seen, debounced ones included
	LastTime time.Duration // time of the last accepted key
	Start    time.Duration // time the current attempt began
}

// Recognizer classifies key events against the active combo.
type Recognizer struct {
	row      game.KeyRow
	timing   game.Timing
	alphabet map[game.Symbol]bool

	combo    game.Combo
	progress Progress
	held     map[game.Symbol]bool
	gap      time.Duration
}

func New(row game.KeyRow, timing game.Timing) *Recognizer {
	r := &Recognizer{
		row:      row,
		timing:   timing,
		alphabet: map[game.Symbol]bool{},
		held:     map[game.Symbol]bool{},
	}
	for _, s := range row.Symbols() {
		r.alphabet[s] = true
	}
	return r
}

// Reset arms the recognizer for a new combo and forgets everything else.
func (r *Recognizer) Reset(combo game.Combo) {
	r.combo = combo
	r.progress = Progress{}
	r.held = map[game.Symbol]bool{}
	r.gap = 0
}

func (r *Recognizer) Progress() Progress {
	p := r.progress
	p.Matched = append([]game.Symbol(nil), r.progress.Matched...)
	return p
}

func (r *Recognizer) Held(s game.Symbol) bool {
	return r.held[s]
}

// Gap is the interval of the most recent accepted swipe step.
func (r *Recognizer) Gap() time.Duration {
	return r.gap
}

func (r *Recognizer) known(ev game.KeyEvent) bool {
	return r.alphabet[ev.Symbol] && r.row.Index(ev.Code) >= 0
}

func (r *Recognizer) KeyUp(ev game.KeyEvent) {
	if !r.known(ev) {
		return
	}
	r.held[ev.Symbol] = false
}

func (r *Recognizer) KeyDown(ev game.KeyEvent) Result {
	if r.combo.Len() == 0 || !r.known(ev) {
		return Ignored
	}
	r.held[ev.Symbol] = true

	if !r.combo.Swipe() {
		for _, s := range r.combo.Symbols() {
			if !r.held[s] {
				return Held
			}
		}
		return Completed
	}
	return r.swipe(ev)
}

func (r *Recognizer) swipe(ev game.KeyEvent) Result {
	p := &r.progress

	if p.LastCode != game.KeyNone && p.LastCode != ev.Code &&
		ev.Time-p.LastTime < r.timing.MinInterval {
		p.LastCode = ev.Code
		return Debounced
	}

	if ev.Code == p.Current {
		return Repeat
	}
	p.Previous, p.Current = p.Current, ev.Code

	if len(p.Matched) == 0 {
		if r.begin(ev) {
			return Started
		}
		return Reset
	}

	sinceStart := ev.Time - p.Start
	gap := ev.Time - p.LastTime
	if ev.Symbol == r.combo.At(len(p.Matched)) &&
		r.direction() == 1 &&
		sinceStart < r.timing.SwipeLimit &&
		gap >= r.timing.MinInterval &&
		gap < r.timing.MaxInterval {
		p.Matched = append(p.Matched, ev.Symbol)
		p.LastTime = ev.Time
		p.LastCode = ev.Code
		r.gap = gap
		if len(p.Matched) == r.combo.Len() {
			return Completed
		}
		return Advanced
	}

	p.Matched = p.Matched[:0]
	r.begin(ev)
	return Reset
}

// begin makes ev the start of a fresh attempt. It only joins the prefix
// when it is the first symbol of the combo.
func (r *Recognizer) begin(ev game.KeyEvent) bool {
	p := &r.progress
	p.Start = ev.Time
	p.LastTime = ev.Time
	p.LastCode = ev.Code
	if ev.Symbol != r.combo.At(0) {
		return false
	}
	p.Matched = append(p.Matched, ev.Symbol)
	return true
}

func (r *Recognizer) direction() int {
	d := r.row.Index(r.progress.Current) - r.row.Index(r.progress.Previous)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
