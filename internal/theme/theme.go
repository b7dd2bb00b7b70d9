package theme

import (
	"image/color"

	"git.lost.host/meutraa/letterfall/internal/game"
)

type Theme interface {
	RenderCombo(symbols []string, swipe bool) string
	ComboColor(length int) color.RGBA
	LoseLine(width int) string
	LineColor() color.RGBA
	OutcomeColor(outcome game.Outcome) color.RGBA
	GainColor() color.RGBA
	MissColor() color.RGBA
}
