package parser

import (
	"testing"

	"git.lost.host/meutraa/letterfall/internal/game"
)

func TestParseRow(t *testing.T) {
	p := DefaultParser{}
	row, err := p.ParseRow("asd fgh")
	if nil != err {
		t.Fatal(err)
	}
	expected := game.KeyRow{30, 31, 32, 33, 34, 35}
	if len(row) != len(expected) {
		t.Fatal("row", row)
	}
	for i := range row {
		if row[i] != expected[i] {
			t.Fatal("row", row)
		}
	}

	for _, bad := range []string{"", "A", "AS1", "ASA"} {
		if _, err := p.ParseRow(bad); nil == err {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

var swipeTests = map[string]bool{
	"DFG":               true,
	"dfg, fgh ,":        true,
	game.DefaultTriples: true,
	"DF":                true,
	"DGF":               false, // out of order
	"GFD":               false, // right to left
	"DGH":               false, // skips F
	"QWE":               false, // off the row
	"D":                 false, // too short
	"D-F":               false,
}

func TestParseSwipes(t *testing.T) {
	p := DefaultParser{}
	row, _ := p.ParseRow(game.DefaultRow)
	for in, ok := range swipeTests {
		_, err := p.ParseSwipes(in, row)
		if (nil == err) != ok {
			t.Log("in      ", in)
			t.Log("err     ", err)
			t.Log("expected", ok)
			t.Fail()
		}
	}

	combos, _ := p.ParseSwipes("dfg, jkl", row)
	if len(combos) != 2 || combos[0].String() != "D F G" || combos[1].String() != "J K L" {
		t.Error("combos", combos)
	}
}

func TestParseSingles(t *testing.T) {
	p := DefaultParser{}
	row, _ := p.ParseRow("ASDF")
	combos, err := p.ParseSingles("a s", row)
	if nil != err || len(combos) != 2 || combos[1].String() != "S" || combos[1].Swipe() {
		t.Fatal("combos", combos, err)
	}
	if _, err := p.ParseSingles("AL", row); nil == err {
		t.Error("accepted a letter off the row")
	}
}
