package theme

import (
	"image/color"
	"strings"

	"git.lost.host/meutraa/letterfall/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderCombo(symbols []string, swipe bool) string {
	if swipe {
		return strings.Join(symbols, " ") + " " + swipeSym
	}
	return strings.Join(symbols, "")
}

func (t *DefaultTheme) ComboColor(length int) color.RGBA {
	col, ok := comboColors[length]
	if !ok {
		return comboColors[-1]
	}
	return col
}

func (t *DefaultTheme) LoseLine(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat(lineSym, width)
}

func (t *DefaultTheme) LineColor() color.RGBA {
	return color.RGBA{236, 30, 0, 255}
}

func (t *DefaultTheme) OutcomeColor(outcome game.Outcome) color.RGBA {
	if outcome == game.OutcomeWin {
		return color.RGBA{0, 236, 128, 255}
	}
	return color.RGBA{236, 30, 0, 255}
}

func (t *DefaultTheme) GainColor() color.RGBA {
	return color.RGBA{236, 195, 0, 255}
}

func (t *DefaultTheme) MissColor() color.RGBA {
	return color.RGBA{236, 0, 106, 255}
}

const (
	lineSym  = "─"
	swipeSym = "→"
)

var comboColors = map[int]color.RGBA{
	1:  {0, 118, 236, 255},   // tap blue
	2:  {106, 0, 236, 255},   // short swipe purple
	3:  {236, 128, 0, 255},   // triple orange
	-1: {255, 255, 255, 255}, // other white
}
