package input

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"github.com/gdamore/tcell/v2"
)

// TcellSource polls key events from a tcell screen. The screen is owned by
// the renderer, which also finalizes it.
type TcellSource struct {
	events chan game.KeyEvent
}

func NewTcellSource(screen tcell.Screen, start time.Time) *TcellSource {
	s := &TcellSource{events: make(chan game.KeyEvent, bufferSize)}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if out, ok := fromTcell(key, key.When().Sub(start)); ok {
					s.events <- out
				}
			}
		}
	}()
	return s
}

func fromTcell(key *tcell.EventKey, at time.Duration) (game.KeyEvent, bool) {
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyEvent{Action: game.Quit, Code: game.KeyEsc, Time: at}, true
	case tcell.KeyRune:
		return fromRune(key.Rune(), at)
	}
	return game.KeyEvent{}, false
}

func (s *TcellSource) Events() <-chan game.KeyEvent {
	return s.events
}

func (s *TcellSource) Close() error {
	return nil
}
