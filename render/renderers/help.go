package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pillcut/render"
)

// HelpText lists the pointer gestures and keys
const HelpText = " drag empty: draw │ click: cut │ drag pill: move │ m: mute │ s: snapshot │ ?: help │ q: quit "

// HelpRenderer draws the key help line above the status bar when enabled
type HelpRenderer struct{}

// NewHelpRenderer creates a help line renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Render implements SystemRenderer
func (h *HelpRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.ShowHelp || ctx.CanvasHeight <= 0 {
		return
	}
	y := ctx.CanvasHeight - 1
	text := runewidth.Truncate(HelpText, ctx.ScreenWidth, "…")
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', render.RgbStatusText, render.RgbHelpBg)
	}
	buf.DrawString(0, y, text, render.RgbWhite, render.RgbHelpBg)
}
