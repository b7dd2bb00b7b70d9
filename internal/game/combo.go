package game

import "strings"

// Combo is the target for one round. A single symbol is tapped, two or
// more symbols are swiped in order.
type Combo struct {
	symbols []Symbol
}

func NewCombo(symbols ...Symbol) Combo {
	s := make([]Symbol, len(symbols))
	copy(s, symbols)
	return Combo{symbols: s}
}

func (c Combo) Len() int {
	return len(c.symbols)
}

func (c Combo) At(i int) Symbol {
	return c.symbols[i]
}

// Swipe reports whether the combo is an ordered multi key gesture.
func (c Combo) Swipe() bool {
	return len(c.symbols) > 1
}

func (c Combo) Symbols() []Symbol {
	s := make([]Symbol, len(c.symbols))
	copy(s, c.symbols)
	return s
}

func (c Combo) Strings() []string {
	s := make([]string, len(c.symbols))
	for i, sym := range c.symbols {
		s[i] = string(sym)
	}
	return s
}

func (c Combo) String() string {
	return strings.Join(c.Strings(), " ")
}
