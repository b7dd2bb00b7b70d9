package input

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"github.com/eiannone/keyboard"
)

// KeyboardSource reads the controlling terminal. Terminals report neither
// key up nor physical keys, so every rune is a key down.
type KeyboardSource struct {
	events chan game.KeyEvent
}

func NewKeyboardSource(start time.Time) (*KeyboardSource, error) {
	keyChannel, err := keyboard.GetKeys(bufferSize)
	if nil != err {
		return nil, err
	}
	s := &KeyboardSource{events: make(chan game.KeyEvent, bufferSize)}
	go func() {
		for key := range keyChannel {
			if nil != key.Err {
				continue
			}
			if ev, ok := fromKeyboard(key, time.Since(start)); ok {
				s.events <- ev
			}
		}
	}()
	return s, nil
}

func fromKeyboard(key keyboard.KeyEvent, at time.Duration) (game.KeyEvent, bool) {
	if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
		return game.KeyEvent{Action: game.Quit, Code: game.KeyEsc, Time: at}, true
	}
	if key.Rune == 0 {
		return game.KeyEvent{}, false
	}
	return fromRune(key.Rune, at)
}

func (s *KeyboardSource) Events() <-chan game.KeyEvent {
	return s.events
}

func (s *KeyboardSource) Close() error {
	return keyboard.Close()
}
