package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pillcut/render"
)

// DefaultGridSpacing is the dot pitch of the background, in canvas units
const DefaultGridSpacing = 20

// GridRenderer draws the dotted canvas background
type GridRenderer struct {
	spacing int
}

// NewGridRenderer creates a grid renderer with dots every spacing canvas units
func NewGridRenderer(spacing int) *GridRenderer {
	if spacing <= 0 {
		spacing = DefaultGridSpacing
	}
	return &GridRenderer{spacing: spacing}
}

// Render places a dot in every cell whose canvas span holds a grid line
// crossing on both axes
func (g *GridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.CanvasHeight; y++ {
		if !g.hasLine(y, ctx.CellHeight) {
			continue
		}
		for x := 0; x < ctx.ScreenWidth; x++ {
			if g.hasLine(x, ctx.CellWidth) {
				buf.SetFgOnly(x, y, '·', render.RgbGridDot, tcell.AttrNone)
			}
		}
	}
}

// hasLine reports whether [c*size, (c+1)*size) contains a multiple of spacing
func (g *GridRenderer) hasLine(c, size int) bool {
	lo := c * size
	next := (lo + g.spacing - 1) / g.spacing * g.spacing
	return next < lo+size
}
