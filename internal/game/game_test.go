package game

import "testing"

func TestCombo(t *testing.T) {
	syms := []Symbol{"D", "F", "G"}
	c := NewCombo(syms...)
	syms[0] = "A"
	if c.At(0) != "D" {
		t.Error("combo shares its input")
	}
	c.Symbols()[1] = "A"
	if c.At(1) != "F" {
		t.Error("combo shares its output")
	}
	if !c.Swipe() || c.String() != "D F G" || c.Len() != 3 {
		t.Error("combo", c)
	}
	if NewCombo("A").Swipe() {
		t.Error("single is a swipe")
	}
}

func TestKeys(t *testing.T) {
	row := KeyRow{30, 31, 32}
	if row.Index(31) != 1 || row.Index(33) != -1 {
		t.Error("index")
	}
	syms := row.Symbols()
	if len(syms) != 3 || syms[2] != "D" {
		t.Error("symbols", syms)
	}
	if NormalizeRune('j') != "J" {
		t.Error("normalize")
	}
	code, ok := CodeOf("k")
	if !ok || code != 37 {
		t.Error("code of k", code)
	}
	if s, _ := SymbolOf(code); s != "K" {
		t.Error("symbol of 37", s)
	}
	if _, ok := SymbolOf(KeyEsc); ok {
		t.Error("escape has a symbol")
	}
}

func TestPhase(t *testing.T) {
	if Playing.Outcome() != "" || Won.Outcome() != "You win!" || Lost.Outcome() != "Game over!" {
		t.Error("outcomes")
	}
}
