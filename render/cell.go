package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// contRune marks the trailing cell of a double-width rune; flush skips it
const contRune rune = -1

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Attrs tcell.AttrMask
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(c.Fg)).
		Background(ToTcell(c.Bg)).
		Attributes(c.Attrs)
}
