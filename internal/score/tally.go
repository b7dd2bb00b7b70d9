package score

import "git.lost.host/meutraa/letterfall/internal/game"

const (
	TapPoints   = 1
	SwipePoints = 3
)

// Points is what completing c is worth.
func Points(c game.Combo) int {
	if c.Swipe() {
		return SwipePoints
	}
	return TapPoints
}

// Tally keeps score and lives. Score only grows and lives only shrink.
type Tally struct {
	Score    int
	Lives    int
	WinScore int
}

func NewTally(lives, winScore int) *Tally {
	return &Tally{Lives: lives, WinScore: winScore}
}

// Award adds points and reports whether the game is won.
func (t *Tally) Award(points int) bool {
	if points > 0 {
		t.Score += points
	}
	return t.Won()
}

// LoseLife takes one life and reports whether the game is lost.
func (t *Tally) LoseLife() bool {
	if t.Lives > 0 {
		t.Lives--
	}
	return t.Lost()
}

func (t *Tally) Won() bool {
	return t.Score >= t.WinScore
}

func (t *Tally) Lost() bool {
	return t.Lives <= 0
}
