package round

import "git.lost.host/meutraa/letterfall/internal/game"

// Display is whatever shows the round to the player.
type Display interface {
	DisplayCombo(symbols []string, swipe bool)
	DisplayFallPosition(offset float64)
	DisplayScore(score int)
	DisplayLives(lives int)
	// DisplayOutcome shows the final banner and clears the combo prompt.
	DisplayOutcome(outcome game.Outcome)
}

// CollisionProbe answers whether the falling element has reached the
// lose line. The geometry belongs to the implementation.
type CollisionProbe interface {
	QueryCollision() bool
}

// Displays sends every call to each display in order.
type Displays []Display

func (ds Displays) DisplayCombo(symbols []string, swipe bool) {
	for _, d := range ds {
		d.DisplayCombo(symbols, swipe)
	}
}

func (ds Displays) DisplayFallPosition(offset float64) {
	for _, d := range ds {
		d.DisplayFallPosition(offset)
	}
}

func (ds Displays) DisplayScore(score int) {
	for _, d := range ds {
		d.DisplayScore(score)
	}
}

func (ds Displays) DisplayLives(lives int) {
	for _, d := range ds {
		d.DisplayLives(lives)
	}
}

func (ds Displays) DisplayOutcome(outcome game.Outcome) {
	for _, d := range ds {
		d.DisplayOutcome(outcome)
	}
}
