package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TcellRenderer draws onto a tcell screen. The same screen delivers key
// events to input.TcellSource.
type TcellRenderer struct {
	screen tcell.Screen
}

func NewTcellRenderer() (*TcellRenderer, error) {
	screen, err := tcell.NewScreen()
	if nil != err {
		return nil, err
	}
	return &TcellRenderer{screen: screen}, nil
}

// NewTcellRendererWith wraps an existing screen, such as a simulation screen.
func NewTcellRendererWith(screen tcell.Screen) *TcellRenderer {
	return &TcellRenderer{screen: screen}
}

func (r *TcellRenderer) Screen() tcell.Screen {
	return r.screen
}

func (r *TcellRenderer) Init() error {
	if err := r.screen.Init(); nil != err {
		return err
	}
	r.screen.HideCursor()
	r.screen.Clear()
	return nil
}

func (r *TcellRenderer) Deinit() error {
	r.screen.Fini()
	return nil
}

func (r *TcellRenderer) Size() (int, int) {
	return r.screen.Size()
}

func (r *TcellRenderer) Clear() {
	r.screen.Clear()
}

func (r *TcellRenderer) fill(row, column int, style tcell.Style, message string) {
	for _, ch := range message {
		r.screen.SetContent(column, row, ch, nil, style)
		column++
	}
}

func (r *TcellRenderer) Fill(row, column int, message string) {
	r.fill(row, column, tcell.StyleDefault, message)
}

func (r *TcellRenderer) FillColor(row, column int, c color.RGBA, message string) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	r.fill(row, column, style, message)
}

func (r *TcellRenderer) Flush() {
	r.screen.Show()
}
