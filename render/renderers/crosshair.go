package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pillcut/render"
)

const crosshairAlpha = 0.12

// CrosshairRenderer tints the pointer's row and column
type CrosshairRenderer struct{}

// NewCrosshairRenderer creates a crosshair renderer
func NewCrosshairRenderer() *CrosshairRenderer {
	return &CrosshairRenderer{}
}

// Render implements SystemRenderer
func (c *CrosshairRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.CursorVisible || !ctx.InCanvas(ctx.CursorX, ctx.CursorY) {
		return
	}

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, ctx.CursorY, 0, render.RgbCrosshair, render.RgbCrosshair, render.BlendAlphaBg, crosshairAlpha, tcell.AttrNone)
	}
	for y := 0; y < ctx.CanvasHeight; y++ {
		if y == ctx.CursorY {
			continue
		}
		buf.Set(ctx.CursorX, y, 0, render.RgbCrosshair, render.RgbCrosshair, render.BlendAlphaBg, crosshairAlpha, tcell.AttrNone)
	}

	buf.SetFgOnly(ctx.CursorX, ctx.CursorY, '┼', render.RgbCursorMark, tcell.AttrBold)
}
