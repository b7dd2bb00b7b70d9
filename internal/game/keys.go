package game

import (
	"strings"
	"time"
	"unicode"
)

// Symbol is the logical, case normalized letter a key produces.
type Symbol string

// KeyCode identifies a physical key independent of modifier state.
// Values follow linux/input-event-codes.h so every backend agrees.
type KeyCode uint16

const (
	KeyNone KeyCode = 0
	KeyEsc  KeyCode = 1
)

// evdev codes for the letter keys of a QWERTY board
var qwerty = map[Symbol]KeyCode{
	"Q": 16, "W": 17, "E": 18, "R": 19, "T": 20, "Y": 21, "U": 22, "I": 23, "O": 24, "P": 25,
	"A": 30, "S": 31, "D": 32, "F": 33, "G": 34, "H": 35, "J": 36, "K": 37, "L": 38,
	"Z": 44, "X": 45, "C": 46, "V": 47, "B": 48, "N": 49, "M": 50,
}

var qwertyByCode = func() map[KeyCode]Symbol {
	m := make(map[KeyCode]Symbol, len(qwerty))
	for s, c := range qwerty {
		m[c] = s
	}
	return m
}()

// NormalizeRune maps a typed rune to its symbol, so 'd' and 'D' agree.
func NormalizeRune(r rune) Symbol {
	return Symbol(string(unicode.ToUpper(r)))
}

// CodeOf returns the physical key that produces s.
func CodeOf(s Symbol) (KeyCode, bool) {
	c, ok := qwerty[Symbol(strings.ToUpper(string(s)))]
	return c, ok
}

// SymbolOf returns the symbol a physical key produces.
func SymbolOf(c KeyCode) (Symbol, bool) {
	s, ok := qwertyByCode[c]
	return s, ok
}

// KeyRow is the left to right ordering of physical keys used to judge
// the direction of a swipe.
type KeyRow []KeyCode

// Index returns the position of c in the row or -1.
func (r KeyRow) Index(c KeyCode) int {
	for i, k := range r {
		if k == c {
			return i
		}
	}
	return -1
}

func (r KeyRow) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(r))
	for _, c := range r {
		if s, ok := SymbolOf(c); ok {
			syms = append(syms, s)
		}
	}
	return syms
}

// Action is what happened to a key.
type Action uint8

const (
	KeyDown Action = iota
	KeyUp
	Quit
)

// KeyEvent is a raw key transition. Time is measured from an arbitrary
// origin that stays fixed for the lifetime of one input source.
type KeyEvent struct {
	Action Action
	Symbol Symbol
	Code   KeyCode
	Time   time.Duration
}
