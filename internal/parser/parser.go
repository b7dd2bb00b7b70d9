package parser

import "git.lost.host/meutraa/letterfall/internal/game"

type Parser interface {
	ParseRow(s string) (game.KeyRow, error)
	ParseSingles(s string, row game.KeyRow) ([]game.Combo, error)
	ParseSwipes(s string, row game.KeyRow) ([]game.Combo, error)
}
