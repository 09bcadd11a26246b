// Package raster renders a region set to an image with fogleman/gg, at
// canvas resolution and with exact per-corner radii
package raster

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
)

// Options controls snapshot appearance
type Options struct {
	Scale         float64 // Pixels per canvas unit
	DefaultRadius int     // Radius for pills with unset radii
	Opacity       float64 // Pill fill alpha
	GridSpacing   int     // Dot pitch in canvas units, 0 disables the grid
	Background    color.Color
	GridColor     color.Color
}

// DefaultOptions matches the terminal presentation
func DefaultOptions() Options {
	return Options{
		Scale:         1,
		DefaultRadius: 20,
		Opacity:       0.6,
		GridSpacing:   20,
		Background:    colornames.Ghostwhite,
		GridColor:     colornames.Lightsteelblue,
	}
}

// Render draws pills bottom to top onto an image of size canvas units
func Render(pills []canvas.Pill, size image.Point, opts Options) image.Image {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := max(1, int(float64(size.X)*opts.Scale))
	h := max(1, int(float64(size.Y)*opts.Scale))

	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)

	if opts.GridSpacing > 0 {
		drawGrid(dc, size, opts)
	}

	for _, p := range pills {
		drawPill(dc, p.Rect, p.RadiiOr(opts.DefaultRadius), p.Color, opts.Opacity)
	}
	return dc.Image()
}

// SavePNG renders pills and writes the result to path
func SavePNG(path string, pills []canvas.Pill, size image.Point, opts Options) error {
	img := Render(pills, size, opts)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// SnapshotPath names a snapshot file in dir by timestamp
func SnapshotPath(dir string, now time.Time) string {
	return filepath.Join(dir, "pillcut-"+now.Format("20060102-150405.000")+".png")
}

// Extent returns the smallest size containing every pill, at least floor
func Extent(pills []canvas.Pill, floor image.Point) image.Point {
	ext := floor
	for _, p := range pills {
		ext.X = max(ext.X, p.Rect.Right())
		ext.Y = max(ext.Y, p.Rect.Bottom())
	}
	return ext
}

func drawGrid(dc *gg.Context, size image.Point, opts Options) {
	dc.SetColor(opts.GridColor)
	for y := 0; y <= size.Y; y += opts.GridSpacing {
		for x := 0; x <= size.X; x += opts.GridSpacing {
			dc.DrawCircle(float64(x), float64(y), 1)
		}
	}
	dc.Fill()
}

func drawPill(dc *gg.Context, r geom.Rect, radii geom.Radii, c colorful.Color, opacity float64) {
	pillPath(dc, r, radii)
	dc.SetRGBA(c.R, c.G, c.B, opacity)
	dc.FillPreserve()

	edge := c.BlendLab(colorful.Color{}, 0.35).Clamped()
	dc.SetRGB(edge.R, edge.G, edge.B)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// pillPath traces r clockwise from the top-left, with an arc at each
// corner whose radius is positive
func pillPath(dc *gg.Context, r geom.Rect, radii geom.Radii) {
	x, y := float64(r.X), float64(r.Y)
	w, h := float64(r.W), float64(r.H)
	limit := min(w, h) / 2
	clamp := func(v int) float64 { return min(float64(max(v, 0)), limit) }
	tl, tr, br, bl := clamp(radii.TL), clamp(radii.TR), clamp(radii.BR), clamp(radii.BL)

	dc.NewSubPath()
	dc.MoveTo(x+tl, y)
	dc.LineTo(x+w-tr, y)
	if tr > 0 {
		dc.DrawArc(x+w-tr, y+tr, tr, gg.Radians(-90), 0)
	}
	dc.LineTo(x+w, y+h-br)
	if br > 0 {
		dc.DrawArc(x+w-br, y+h-br, br, 0, gg.Radians(90))
	}
	dc.LineTo(x+bl, y+h)
	if bl > 0 {
		dc.DrawArc(x+bl, y+h-bl, bl, gg.Radians(90), gg.Radians(180))
	}
	dc.LineTo(x, y+tl)
	if tl > 0 {
		dc.DrawArc(x+tl, y+tl, tl, gg.Radians(180), gg.Radians(270))
	}
	dc.ClosePath()
}
