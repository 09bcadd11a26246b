package renderers

import (
	"github.com/lixenwraith/pillcut/geom"
	"github.com/lixenwraith/pillcut/render"
)

// PreviewOpacity is the fill alpha of the in-progress draw
const PreviewOpacity = 0.3

// PreviewRenderer draws the dashed outline of a draw gesture
type PreviewRenderer struct{}

// NewPreviewRenderer creates a preview renderer
func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{}
}

// Render implements SystemRenderer
func (p *PreviewRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.HasPreview {
		return
	}
	drawBox(ctx, buf, ctx.Preview, geom.Uniform(ctx.DefaultRadius), ctx.PreviewColor, PreviewOpacity, dashedBorder)
}
