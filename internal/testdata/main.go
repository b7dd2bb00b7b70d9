package testdata

import (
	"encoding/json"
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
)

// Step is one scripted key transition.
type Step struct {
	Key string `json:"key"`
	At  int64  `json:"at"` // milliseconds
	Up  bool   `json:"up"`
}

// Script is a key sequence against one combo and the recognizer result
// expected after each step ("-" for key up).
type Script struct {
	Name    string   `json:"name"`
	Combo   string   `json:"combo"`
	Steps   []Step   `json:"steps"`
	Results []string `json:"results"`
}

func (s Step) Event() game.KeyEvent {
	sym := game.NormalizeRune([]rune(s.Key)[0])
	code, _ := game.CodeOf(sym)
	action := game.KeyDown
	if s.Up {
		action = game.KeyUp
	}
	return game.KeyEvent{
		Action: action,
		Symbol: sym,
		Code:   code,
		Time:   time.Duration(s.At) * time.Millisecond,
	}
}

func (s Script) Target() game.Combo {
	syms := []game.Symbol{}
	for _, r := range s.Combo {
		syms = append(syms, game.NormalizeRune(r))
	}
	return game.NewCombo(syms...)
}

func GetScripts() ([]Script, error) {
	var scripts []Script
	if err := json.Unmarshal([]byte(data), &scripts); nil != err {
		return nil, err
	}
	return scripts, nil
}
