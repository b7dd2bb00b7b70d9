package input

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"syscall"
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"github.com/rs/zerolog/log"
)

// from linux/input-event-codes.h
const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EvdevSource reads a keyboard device directly, which gives real key up
// events and physical codes.
type EvdevSource struct {
	file   *os.File
	events chan game.KeyEvent
}

func NewEvdevSource(device string, start time.Time) (*EvdevSource, error) {
	file, err := os.Open(device)
	if nil != err {
		return nil, err
	}
	s := &EvdevSource{
		file:   file,
		events: make(chan game.KeyEvent, bufferSize),
	}
	go func() {
		if err := readEvents(file, start, s.events); nil != err {
			log.Error().Err(err).Str("device", device).Msg("unable to read keyboard input")
		}
	}()
	return s, nil
}

func (s *EvdevSource) Events() <-chan game.KeyEvent {
	return s.events
}

func (s *EvdevSource) Close() error {
	return s.file.Close()
}

func readEvents(r io.Reader, start time.Time, events chan<- game.KeyEvent) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
		if out, ok := convert(&ev, start); ok {
			events <- out
		}
	}
}

func convert(ev *keyEvent, start time.Time) (game.KeyEvent, bool) {
	if ev.Type != evKey {
		return game.KeyEvent{}, false
	}
	at := time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond)).Sub(start)
	code := game.KeyCode(ev.Code)

	if code == game.KeyEsc {
		if ev.Value != keyPressed {
			return game.KeyEvent{}, false
		}
		return game.KeyEvent{Action: game.Quit, Code: code, Time: at}, true
	}

	sym, ok := game.SymbolOf(code)
	if !ok {
		return game.KeyEvent{}, false
	}
	out := game.KeyEvent{Symbol: sym, Code: code, Time: at}
	switch ev.Value {
	case keyPressed, keyRepeated:
		out.Action = game.KeyDown
	case keyReleased:
		out.Action = game.KeyUp
	default:
		return game.KeyEvent{}, false
	}
	return out, true
}
