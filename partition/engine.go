// Package partition splits pills along the two lines through a cut point
package partition

import (
	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
)

// Default thresholds, in canvas units
const (
	DefaultFragmentMin   = 20
	DefaultNudgeGap      = 2
	DefaultInitialRadius = 20
)

// Config holds the partition policy
type Config struct {
	FragmentMin   int // Smallest width/height a fragment may have
	NudgeGap      int // Distance kept from the cut line after a nudge
	InitialRadius int // Radius assumed for pills whose radii are unset
}

// DefaultConfig returns the stock thresholds
func DefaultConfig() Config {
	return Config{
		FragmentMin:   DefaultFragmentMin,
		NudgeGap:      DefaultNudgeGap,
		InitialRadius: DefaultInitialRadius,
	}
}

// Engine applies cuts to pill sets
// Holds no state beyond its policy and ID source
type Engine struct {
	cfg Config
	ids canvas.IDSource
}

// NewEngine creates an engine minting fragment IDs from ids
func NewEngine(cfg Config, ids canvas.IDSource) *Engine {
	return &Engine{cfg: cfg, ids: ids}
}

// Config returns the engine policy
func (e *Engine) Config() Config {
	return e.cfg
}

// Partition cuts every pill crossed by the vertical line at cutX or the
// horizontal line at cutY. The input slice is not modified
func (e *Engine) Partition(pills []canvas.Pill, cutX, cutY int) Result {
	res := Result{
		Pills:    make([]canvas.Pill, 0, len(pills)),
		Outcomes: make([]Outcome, 0, len(pills)),
	}

	for _, p := range pills {
		hitV := geom.IntersectsVertical(p.Rect, cutX)
		hitH := geom.IntersectsHorizontal(p.Rect, cutY)

		switch {
		case hitV && hitH:
			e.cross(&res, p, cutX, cutY)
		case hitV:
			e.vertical(&res, p, cutX)
		case hitH:
			e.horizontal(&res, p, cutY)
		default:
			res.Pills = append(res.Pills, p)
			res.Outcomes = append(res.Outcomes, Outcome{Kind: Untouched, SourceID: p.ID})
		}
	}
	return res
}

func (e *Engine) cross(res *Result, p canvas.Pill, cutX, cutY int) {
	r := p.Rect
	leftW, rightW := cutX-r.X, r.Right()-cutX
	topH, bottomH := cutY-r.Y, r.Bottom()-cutY

	// Every quadrant pairs one width with one height, so checking the four
	// extents covers all four fragments
	if e.tooSmall(leftW, rightW) || e.tooSmall(topH, bottomH) {
		p.Rect.X = e.nudge(r.W, leftW, rightW, cutX)
		p.Rect.Y = e.nudge(r.H, topH, bottomH, cutY)
		e.emitNudge(res, p)
		return
	}

	e.emitSplit(res, SplitCross, p,
		geom.Rect{X: r.X, Y: r.Y, W: leftW, H: topH},
		geom.Rect{X: cutX, Y: r.Y, W: rightW, H: topH},
		geom.Rect{X: r.X, Y: cutY, W: leftW, H: bottomH},
		geom.Rect{X: cutX, Y: cutY, W: rightW, H: bottomH},
	)
}

func (e *Engine) vertical(res *Result, p canvas.Pill, cutX int) {
	r := p.Rect
	leftW, rightW := cutX-r.X, r.Right()-cutX
	if e.tooSmall(leftW, rightW) {
		p.Rect.X = e.nudge(r.W, leftW, rightW, cutX)
		e.emitNudge(res, p)
		return
	}

	e.emitSplit(res, SplitVertical, p,
		geom.Rect{X: r.X, Y: r.Y, W: leftW, H: r.H},
		geom.Rect{X: cutX, Y: r.Y, W: rightW, H: r.H},
	)
}

func (e *Engine) horizontal(res *Result, p canvas.Pill, cutY int) {
	r := p.Rect
	topH, bottomH := cutY-r.Y, r.Bottom()-cutY
	if e.tooSmall(topH, bottomH) {
		p.Rect.Y = e.nudge(r.H, topH, bottomH, cutY)
		e.emitNudge(res, p)
		return
	}

	e.emitSplit(res, SplitHorizontal, p,
		geom.Rect{X: r.X, Y: r.Y, W: r.W, H: topH},
		geom.Rect{X: r.X, Y: cutY, W: r.W, H: bottomH},
	)
}

func (e *Engine) tooSmall(a, b int) bool {
	return a < e.cfg.FragmentMin || b < e.cfg.FragmentMin
}

// nudge returns the new origin along one axis for a pill of the given size,
// so it clears the cut line on the side with more room. Ties move toward
// the origin
func (e *Engine) nudge(size, before, after, cut int) int {
	if after > before {
		return cut + e.cfg.NudgeGap
	}
	return max(0, cut-size-e.cfg.NudgeGap)
}

func (e *Engine) emitNudge(res *Result, p canvas.Pill) {
	res.Pills = append(res.Pills, p)
	res.Outcomes = append(res.Outcomes, Outcome{Kind: Nudged, SourceID: p.ID})
}

func (e *Engine) emitSplit(res *Result, kind Kind, parent canvas.Pill, frags ...geom.Rect) {
	radii := parent.RadiiOr(e.cfg.InitialRadius)
	out := Outcome{Kind: kind, SourceID: parent.ID, FragmentIDs: make([]string, 0, len(frags))}

	for _, r := range frags {
		frag := canvas.Pill{
			ID:    e.ids.NextID(),
			Rect:  r,
			Color: parent.Color,
		}.WithRadii(geom.ComputeRadii(parent.Rect, radii, r))

		res.Pills = append(res.Pills, frag)
		out.FragmentIDs = append(out.FragmentIDs, frag.ID)
	}
	res.Outcomes = append(res.Outcomes, out)
}
