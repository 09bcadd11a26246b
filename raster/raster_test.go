package raster

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
)

func near(t *testing.T, got color.Color, want colorful.Color, what string) {
	t.Helper()
	g, _ := colorful.MakeColor(got)
	if d := math.Max(math.Abs(g.R-want.R), math.Max(math.Abs(g.G-want.G), math.Abs(g.B-want.B))); d > 0.02 {
		t.Errorf("%s = %s, want %s", what, g.Hex(), want.Hex())
	}
}

func plainOptions() Options {
	opts := DefaultOptions()
	opts.GridSpacing = 0
	return opts
}

func TestRenderFillOpacity(t *testing.T) {
	red := colorful.Color{R: 1}
	pills := []canvas.Pill{{ID: "p1", Rect: geom.Rect{X: 10, Y: 10, W: 40, H: 40}, Color: red}}
	opts := plainOptions()

	img := Render(pills, image.Pt(60, 60), opts)
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Fatalf("bounds = %v", b)
	}

	bg, _ := colorful.MakeColor(opts.Background)
	near(t, img.At(30, 30), bg.BlendRgb(red, opts.Opacity), "interior")
	near(t, img.At(55, 55), bg, "outside")
}

func TestRenderPerCornerRadii(t *testing.T) {
	blue := colorful.Color{B: 1}
	radii := geom.Radii{TL: 20}
	pills := []canvas.Pill{{ID: "p2", Rect: geom.Rect{X: 10, Y: 10, W: 40, H: 40}, Color: blue, Radii: &radii}}
	opts := plainOptions()
	bg, _ := colorful.MakeColor(opts.Background)
	fill := bg.BlendRgb(blue, opts.Opacity)

	img := Render(pills, image.Pt(60, 60), opts)

	// Rounded top-left leaves its corner empty
	near(t, img.At(12, 12), bg, "rounded corner")
	// Square corners are filled right up to the edge
	near(t, img.At(47, 12), fill, "square top-right")
	near(t, img.At(47, 47), fill, "square bottom-right")
	near(t, img.At(12, 47), fill, "square bottom-left")
}

func TestRenderUnsetRadiiUseDefault(t *testing.T) {
	green := colorful.Color{G: 1}
	pills := []canvas.Pill{{ID: "p3", Rect: geom.Rect{X: 10, Y: 10, W: 40, H: 40}, Color: green}}
	opts := plainOptions()
	bg, _ := colorful.MakeColor(opts.Background)

	img := Render(pills, image.Pt(60, 60), opts)
	for _, p := range []image.Point{{12, 12}, {47, 12}, {47, 47}, {12, 47}} {
		near(t, img.At(p.X, p.Y), bg, "default-rounded corner "+p.String())
	}
}

func TestRenderScale(t *testing.T) {
	opts := plainOptions()
	opts.Scale = 2
	img := Render(nil, image.Pt(30, 20), opts)
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Errorf("scaled bounds = %v", b)
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := SnapshotPath(dir, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if !strings.HasPrefix(filepath.Base(path), "pillcut-20260102-030405") {
		t.Errorf("unexpected name %s", path)
	}

	pills := []canvas.Pill{{ID: "p1", Rect: geom.Rect{W: 40, H: 20}, Color: colorful.Color{R: 1, G: 1}}}
	if err := SavePNG(path, pills, Extent(pills, image.Pt(10, 10)), DefaultOptions()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("bounds = %v, want 40x20", b)
	}
}

func TestSavePNGBadDir(t *testing.T) {
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), nil, image.Pt(4, 4), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestExtent(t *testing.T) {
	pills := []canvas.Pill{
		{Rect: geom.Rect{X: 10, Y: 5, W: 20, H: 20}},
		{Rect: geom.Rect{X: 0, Y: 40, W: 5, H: 30}},
	}
	if got := Extent(pills, image.Pt(8, 8)); got != image.Pt(30, 70) {
		t.Errorf("Extent = %v", got)
	}
	if got := Extent(nil, image.Pt(8, 8)); got != image.Pt(8, 8) {
		t.Errorf("empty Extent = %v", got)
	}
}
