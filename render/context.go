package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Rows given to the canvas; the rest belong to the status bar
	CanvasHeight int

	// Canvas units per cell
	CellWidth  int
	CellHeight int

	// Crosshair position in cells
	CursorX       int
	CursorY       int
	CursorVisible bool

	// Bottom to top
	Pills         []canvas.Pill
	DefaultRadius int

	// Draw gesture in progress
	HasPreview   bool
	Preview      geom.Rect
	PreviewColor colorful.Color

	State    string
	Muted    bool
	ShowHelp bool
}

// CellCenter returns the canvas point a pointer in cell (cx, cy) maps to
func (rc *RenderContext) CellCenter(cx, cy int) geom.Point {
	return geom.Point{
		X: cx*rc.CellWidth + rc.CellWidth/2,
		Y: cy*rc.CellHeight + rc.CellHeight/2,
	}
}

// CanvasToCell returns the cell containing canvas point p
func (rc *RenderContext) CanvasToCell(p geom.Point) (int, int) {
	return floorDiv(p.X, rc.CellWidth), floorDiv(p.Y, rc.CellHeight)
}

// CellSpan returns the inclusive cell range whose centers lie inside r
// ok is false when no cell center falls in r
// A pointer over any cell of the span hit-tests to r
func (rc *RenderContext) CellSpan(r geom.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = ceilDiv(r.X-rc.CellWidth/2, rc.CellWidth)
	x1 = ceilDiv(r.Right()-rc.CellWidth/2, rc.CellWidth) - 1
	y0 = ceilDiv(r.Y-rc.CellHeight/2, rc.CellHeight)
	y1 = ceilDiv(r.Bottom()-rc.CellHeight/2, rc.CellHeight) - 1
	return x0, y0, x1, y1, x1 >= x0 && y1 >= y0
}

// InCanvas reports whether cell (x, y) lies in the canvas area
func (rc *RenderContext) InCanvas(x, y int) bool {
	return x >= 0 && x < rc.ScreenWidth && y >= 0 && y < rc.CanvasHeight
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
