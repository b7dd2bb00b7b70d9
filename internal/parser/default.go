package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"git.lost.host/meutraa/letterfall/internal/game"
)

type DefaultParser struct{}

func (p *DefaultParser) symbols(s string) ([]game.Symbol, error) {
	syms := []game.Symbol{}
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sym := game.NormalizeRune(r)
		if _, ok := game.CodeOf(sym); !ok {
			return nil, fmt.Errorf("%q is not a letter key", r)
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// ParseRow reads the left to right key row, e.g. "ASDFGHJKL".
func (p *DefaultParser) ParseRow(s string) (game.KeyRow, error) {
	syms, err := p.symbols(s)
	if nil != err {
		return nil, fmt.Errorf("key row: %w", err)
	}
	if len(syms) < 2 {
		return nil, errors.New("key row: need at least two keys")
	}
	row := make(game.KeyRow, 0, len(syms))
	for _, sym := range syms {
		code, _ := game.CodeOf(sym)
		if row.Index(code) >= 0 {
			return nil, fmt.Errorf("key row: %v appears twice", sym)
		}
		row = append(row, code)
	}
	return row, nil
}

// ParseSingles reads the tap alphabet, one combo per letter.
func (p *DefaultParser) ParseSingles(s string, row game.KeyRow) ([]game.Combo, error) {
	syms, err := p.symbols(s)
	if nil != err {
		return nil, fmt.Errorf("singles: %w", err)
	}
	combos := make([]game.Combo, 0, len(syms))
	for _, sym := range syms {
		code, _ := game.CodeOf(sym)
		if row.Index(code) < 0 {
			return nil, fmt.Errorf("singles: %v is not on the key row", sym)
		}
		combos = append(combos, game.NewCombo(sym))
	}
	return combos, nil
}

// ParseSwipes reads comma separated swipes, e.g. "DFG,FGH". Each swipe
// must walk the key row left to right without skipping a key.
func (p *DefaultParser) ParseSwipes(s string, row game.KeyRow) ([]game.Combo, error) {
	combos := []game.Combo{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		syms, err := p.symbols(part)
		if nil != err {
			return nil, fmt.Errorf("swipe %q: %w", part, err)
		}
		if len(syms) < 2 {
			return nil, fmt.Errorf("swipe %q: need at least two keys", part)
		}
		prev := -1
		for i, sym := range syms {
			code, _ := game.CodeOf(sym)
			idx := row.Index(code)
			if idx < 0 {
				return nil, fmt.Errorf("swipe %q: %v is not on the key row", part, sym)
			}
			if i > 0 && idx != prev+1 {
				return nil, fmt.Errorf("swipe %q: %v does not follow %v on the key row", part, sym, syms[i-1])
			}
			prev = idx
		}
		combos = append(combos, game.NewCombo(syms...))
	}
	return combos, nil
}
