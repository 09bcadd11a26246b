package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/geom"
	"github.com/lixenwraith/pillcut/render"
)

// PillOpacity is the fill alpha of committed pills
const PillOpacity = 0.6

// Border glyph sets
var (
	solidBorder = borderGlyphs{
		h: '─', v: '│',
		tl: '┌', tr: '┐', bl: '└', br: '┘',
		rtl: '╭', rtr: '╮', rbl: '╰', rbr: '╯',
	}
	dashedBorder = borderGlyphs{
		h: '╌', v: '╎',
		tl: '┌', tr: '┐', bl: '└', br: '┘',
		rtl: '╭', rtr: '╮', rbl: '╰', rbr: '╯',
	}
)

type borderGlyphs struct {
	h, v               rune
	tl, tr, bl, br     rune // Square corners
	rtl, rtr, rbl, rbr rune // Rounded corners
}

func (g borderGlyphs) corners(r geom.Radii) (tl, tr, bl, br rune) {
	pick := func(radius int, square, round rune) rune {
		if radius > 0 {
			return round
		}
		return square
	}
	return pick(r.TL, g.tl, g.rtl), pick(r.TR, g.tr, g.rtr), pick(r.BL, g.bl, g.rbl), pick(r.BR, g.br, g.rbr)
}

// PillsRenderer draws the region set, bottom to top
type PillsRenderer struct{}

// NewPillsRenderer creates a pills renderer
func NewPillsRenderer() *PillsRenderer {
	return &PillsRenderer{}
}

// Render implements SystemRenderer
func (p *PillsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, pill := range ctx.Pills {
		drawBox(ctx, buf, pill.Rect, pill.RadiiOr(ctx.DefaultRadius), pill.Color, PillOpacity, solidBorder)
	}
}

// drawBox fills the cells covering rect with color at alpha and traces a
// border whose corners are rounded where radii are non-zero
func drawBox(ctx render.RenderContext, buf *render.RenderBuffer, rect geom.Rect, radii geom.Radii, color colorful.Color, alpha float64, glyphs borderGlyphs) {
	x0, y0, x1, y1, ok := ctx.CellSpan(rect)
	if !ok {
		return
	}

	// Cells past the canvas edge are clipped, not folded inward
	edge := render.Darken(color, 0.35)
	glyph := func(x, y int, r rune) {
		if ctx.InCanvas(x, y) {
			buf.SetFgOnly(x, y, r, edge, tcell.AttrNone)
		}
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if ctx.InCanvas(x, y) {
				buf.Set(x, y, 0, color, color, render.BlendAlphaBg, alpha, tcell.AttrNone)
			}
		}
	}

	// Too thin for a border
	if x1 == x0 || y1 == y0 {
		return
	}

	for x := x0 + 1; x < x1; x++ {
		glyph(x, y0, glyphs.h)
		glyph(x, y1, glyphs.h)
	}
	for y := y0 + 1; y < y1; y++ {
		glyph(x0, y, glyphs.v)
		glyph(x1, y, glyphs.v)
	}

	tl, tr, bl, br := glyphs.corners(radii)
	glyph(x0, y0, tl)
	glyph(x1, y0, tr)
	glyph(x0, y1, bl)
	glyph(x1, y1, br)
}
