package game

// Phase is the game level state.
type Phase uint8

const (
	Playing Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}

// Outcome is the banner shown once the game ends.
type Outcome string

const (
	OutcomeWin  Outcome = "You win!"
	OutcomeLose Outcome = "Game over!"
)

func (p Phase) Outcome() Outcome {
	switch p {
	case Won:
		return OutcomeWin
	case Lost:
		return OutcomeLose
	}
	return ""
}
