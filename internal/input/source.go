package input

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
)

// Source delivers key events on a channel. Events are sent from a reader
// goroutine; whoever drains the channel owns all game state.
type Source interface {
	Events() <-chan game.KeyEvent
	Close() error
}

const bufferSize = 128

// fromRune turns a typed rune into a key down for terminal backends,
// which only know the character. The physical key is looked up from the
// symbol so shifted and unshifted letters share one code.
func fromRune(r rune, at time.Duration) (game.KeyEvent, bool) {
	sym := game.NormalizeRune(r)
	code, ok := game.CodeOf(sym)
	if !ok {
		return game.KeyEvent{}, false
	}
	return game.KeyEvent{
		Action: game.KeyDown,
		Symbol: sym,
		Code:   code,
		Time:   at,
	}, true
}
