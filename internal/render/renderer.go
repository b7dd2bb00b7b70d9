package render

import (
	"image/color"
)

// Renderer draws text cells. Rows and columns start at zero.
type Renderer interface {
	Init() error
	Deinit() error
	Size() (width, height int)
	Clear()
	Fill(row, column int, message string)
	FillColor(row, column int, color color.RGBA, message string)
	Flush()
}
