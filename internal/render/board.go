package render

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"git.lost.host/meutraa/letterfall/internal/game"
	"git.lost.host/meutraa/letterfall/internal/score"
	"git.lost.host/meutraa/letterfall/internal/theme"
)

const decorationFrames = 60

type decoration struct {
	row, col int
	content  string
	color    color.RGBA
	frames   int // remaining frames until removed
}

// Board is the on screen side of a round. The controller writes to it
// through the display methods and Draw only reads it back.
type Board struct {
	theme     theme.Theme
	rowHeight float64
	barRow    int

	width, height int

	combo   []string
	swipe   bool
	offset  float64
	score   int
	lives   int
	outcome game.Outcome
	stats   score.Stats

	scoreSeen, livesSeen bool
	decorations          []*decoration
}

func NewBoard(th theme.Theme, rowHeight float64, barRow int) *Board {
	return &Board{
		theme:     th,
		rowHeight: rowHeight,
		barRow:    barRow,
	}
}

func (b *Board) Resize(width, height int) {
	b.width, b.height = width, height
}

// LoseLine is the row of the lose line.
func (b *Board) LoseLine() int {
	return b.height - b.barRow
}

// FallRow is the row the combo occupies at the current offset.
func (b *Board) FallRow() int {
	return int(b.offset / b.rowHeight)
}

// QueryCollision reports whether the bottom of the falling combo has
// reached the top of the lose line.
func (b *Board) QueryCollision() bool {
	if b.height == 0 {
		return false
	}
	return b.FallRow()+1 >= b.LoseLine()
}

func (b *Board) DisplayCombo(symbols []string, swipe bool) {
	b.combo = append([]string(nil), symbols...)
	b.swipe = swipe
}

func (b *Board) DisplayFallPosition(offset float64) {
	b.offset = offset
}

func (b *Board) DisplayScore(s int) {
	if b.scoreSeen && s > b.score {
		text := fmt.Sprintf("+%v", s-b.score)
		b.AddDecoration(b.FallRow(), b.width/2+4, text, b.theme.GainColor())
	}
	b.score = s
	b.scoreSeen = true
}

func (b *Board) DisplayLives(l int) {
	if b.livesSeen && l < b.lives {
		b.AddDecoration(b.LoseLine()+1, center(b.width, "miss"), "miss", b.theme.MissColor())
	}
	b.lives = l
	b.livesSeen = true
}

func (b *Board) DisplayOutcome(outcome game.Outcome) {
	b.outcome = outcome
	b.combo = nil
}

func (b *Board) SetStats(s score.Stats) {
	b.stats = s
}

func (b *Board) AddDecoration(row, col int, content string, c color.RGBA) {
	b.decorations = append(b.decorations, &decoration{
		row:     row,
		col:     col,
		content: content,
		color:   c,
		frames:  decorationFrames,
	})
}

func center(width int, text string) int {
	col := (width - utf8.RuneCountInString(text)) / 2
	if col < 0 {
		return 0
	}
	return col
}

// Draw renders the current state as one frame.
func (b *Board) Draw(r Renderer) {
	r.Clear()

	r.FillColor(b.LoseLine(), 0, b.theme.LineColor(), b.theme.LoseLine(b.width))

	if b.outcome != "" {
		msg := string(b.outcome)
		r.FillColor(b.height/2, center(b.width, msg), b.theme.OutcomeColor(b.outcome), msg)
	} else if len(b.combo) > 0 {
		text := b.theme.RenderCombo(b.combo, b.swipe)
		r.FillColor(b.FallRow(), center(b.width, text), b.theme.ComboColor(len(b.combo)), text)
	}

	r.Fill(0, 1, fmt.Sprintf("Score: %v", b.score))
	lives := fmt.Sprintf("Lives: %v", b.lives)
	r.Fill(0, b.width-utf8.RuneCountInString(lives)-1, lives)

	if b.width >= 40 {
		r.Fill(3, 1, fmt.Sprintf("   Taps: %4v", b.stats.Taps))
		r.Fill(4, 1, fmt.Sprintf(" Swipes: %4v", b.stats.Swipes))
		r.Fill(5, 1, fmt.Sprintf(" Resets: %4v", b.stats.Resets))
		r.Fill(6, 1, fmt.Sprintf(" Bounce: %4v", b.stats.Debounced))
		r.Fill(7, 1, fmt.Sprintf(" Misses: %4v", b.stats.Collisions))
		r.Fill(8, 1, fmt.Sprintf("    Gap: %4v ms", b.stats.MeanGap().Milliseconds()))
	}

	b.tickDecorations(r)
	r.Flush()
}

func (b *Board) tickDecorations(r Renderer) {
	nd := make([]*decoration, 0, len(b.decorations))
	for _, d := range b.decorations {
		if d.frames == 0 {
			continue
		}
		r.FillColor(d.row, d.col, d.color, d.content)
		d.frames--
		nd = append(nd, d)
	}
	b.decorations = nd
}
