package input

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
	"github.com/lixenwraith/pillcut/partition"
)

// Default gesture thresholds, in canvas units
const (
	DefaultCreateMin = 40
	DefaultClickSlop = 5
)

// Config holds gesture thresholds
type Config struct {
	CreateMin     int // Smallest |w| and |h| a drawn pill may have
	ClickSlop     int // Movement beyond this turns a press into a draw
	InitialRadius int // Corner radius of freshly drawn pills
}

// DefaultConfig returns the stock gesture thresholds
func DefaultConfig() Config {
	return Config{
		CreateMin:     DefaultCreateMin,
		ClickSlop:     DefaultClickSlop,
		InitialRadius: partition.DefaultInitialRadius,
	}
}

// Capture is an optional pointer capture released when a drag ends
// Release is best-effort; failures are logged and ignored
type Capture interface {
	Release() error
}

// Controller turns press/move/release into canvas mutations
// It is the single writer of its pill set; calls must not overlap
type Controller struct {
	cfg     Config
	set     *canvas.Set
	engine  *partition.Engine
	ids     canvas.IDSource
	colors  ColorSource
	capture Capture

	state  GestureState
	cursor geom.Point
	start  geom.Point
	moved  bool

	// Drawing
	drawW, drawH int // Signed extent from start
	drawColor    colorful.Color

	// Dragging
	dragID string
	grab   geom.Point // Pointer offset from pill origin
}

// NewController creates a controller over set
// colors may be nil, in which case drawn pills get a random pastel color
func NewController(cfg Config, set *canvas.Set, engine *partition.Engine, ids canvas.IDSource, colors ColorSource) *Controller {
	if colors == nil {
		colors = func() colorful.Color { return canvas.RandomColor(nil) }
	}
	return &Controller{
		cfg:    cfg,
		set:    set,
		engine: engine,
		ids:    ids,
		colors: colors,
		state:  StateIdle,
	}
}

// SetCapture installs the pointer capture released at the end of drags
func (c *Controller) SetCapture(cp Capture) {
	c.capture = cp
}

// State returns the current gesture state
func (c *Controller) State() GestureState {
	return c.state
}

// Cursor returns the last known pointer position
func (c *Controller) Cursor() geom.Point {
	return c.cursor
}

// Set returns the owned pill set
func (c *Controller) Set() *canvas.Set {
	return c.set
}

// Dragging returns the ID of the pill being dragged
func (c *Controller) Dragging() (string, bool) {
	return c.dragID, c.state == StateDragging
}

// Preview returns the in-progress draw rectangle, normalized to positive size
func (c *Controller) Preview() (geom.Rect, colorful.Color, bool) {
	if c.state != StateDrawing {
		return geom.Rect{}, colorful.Color{}, false
	}
	end := geom.Point{X: c.start.X + c.drawW, Y: c.start.Y + c.drawH}
	return geom.FromCorners(c.start, end), c.drawColor, true
}

// Hover updates the crosshair without affecting any gesture
func (c *Controller) Hover(pt geom.Point) {
	c.cursor = pt
}

// Press starts a gesture at pt
// A press that abandons an unreleased gesture reports ActionCancelled,
// carrying the pill when the new gesture is a drag
func (c *Controller) Press(pt geom.Point) Action {
	var cancelled bool
	if c.state != StateIdle {
		// Release was lost (e.g. outside the terminal); drop the old gesture
		log.Printf("input: press while %s, abandoning gesture", c.state)
		c.endGesture()
		cancelled = true
	}

	c.cursor = pt
	c.start = pt
	c.moved = false

	if p, ok := c.set.TopAt(pt); ok {
		c.set.BringToFront(p.ID)
		c.transition(StateDragging)
		c.dragID = p.ID
		c.grab = geom.Point{X: pt.X - p.Rect.X, Y: pt.Y - p.Rect.Y}
		if cancelled {
			return Action{Type: ActionCancelled, At: pt, Pill: p}
		}
		return Action{Type: ActionDragStarted, At: pt, Pill: p}
	}

	c.transition(StateDrawing)
	c.drawW, c.drawH = 0, 0
	c.drawColor = c.colors()
	if cancelled {
		return Action{Type: ActionCancelled, At: pt}
	}
	return Action{Type: ActionDrawStarted, At: pt}
}

// Move tracks the pointer; the crosshair always follows it
func (c *Controller) Move(pt geom.Point) {
	c.cursor = pt

	switch c.state {
	case StateDrawing:
		dx, dy := pt.X-c.start.X, pt.Y-c.start.Y
		if !c.moved && (abs(dx) > c.cfg.ClickSlop || abs(dy) > c.cfg.ClickSlop) {
			c.moved = true
		}
		if c.moved {
			c.drawW, c.drawH = dx, dy
		}

	case StateDragging:
		if pt != c.start {
			c.moved = true
		}
		if c.moved {
			c.set.MoveTo(c.dragID, pt.X-c.grab.X, pt.Y-c.grab.Y)
		}
	}
}

// Release finishes the gesture at pt
// A gesture that never moved is a click and partitions the canvas at pt
func (c *Controller) Release(pt geom.Point) Action {
	if c.state == StateIdle {
		c.cursor = pt
		return Action{Type: ActionNone, At: pt}
	}

	c.Move(pt)
	state, moved, dragID := c.state, c.moved, c.dragID
	act := Action{At: pt}

	switch {
	case !moved:
		act.Type = ActionPartitioned
		act.Result = c.partition(pt)

	case state == StateDrawing:
		if p, ok := c.commit(); ok {
			act.Type = ActionCreated
			act.Pill = p
		} else {
			act.Type = ActionDiscarded
		}

	case state == StateDragging:
		act.Type = ActionDragEnded
		act.Pill, _ = c.set.Get(dragID)
	}

	c.endGesture()
	return act
}

func (c *Controller) partition(pt geom.Point) partition.Result {
	res := c.engine.Partition(c.set.Pills(), pt.X, pt.Y)
	if err := c.set.Replace(res.Pills); err != nil {
		// Engine output always satisfies the set invariants
		log.Printf("input: partition at %v rejected: %v", pt, err)
	}
	return res
}

// commit adds the drawn pill if it meets the creation threshold
func (c *Controller) commit() (canvas.Pill, bool) {
	if abs(c.drawW) < c.cfg.CreateMin || abs(c.drawH) < c.cfg.CreateMin {
		return canvas.Pill{}, false
	}

	rect, color, _ := c.Preview()
	p := canvas.Pill{
		ID:    c.ids.NextID(),
		Rect:  rect,
		Color: color,
	}.WithRadii(geom.Uniform(c.cfg.InitialRadius))

	if err := c.set.Add(p); err != nil {
		log.Printf("input: commit %v: %v", p, err)
		return canvas.Pill{}, false
	}
	return p, true
}

// endGesture returns to Idle, releasing pointer capture after a drag
func (c *Controller) endGesture() {
	if c.state == StateDragging && c.capture != nil {
		if err := c.capture.Release(); err != nil {
			log.Printf("input: release pointer capture: %v", err)
		}
	}
	c.transition(StateIdle)
	c.moved = false
	c.dragID = ""
	c.drawW, c.drawH = 0, 0
}

func (c *Controller) transition(to GestureState) {
	if !CanTransition(c.state, to) {
		log.Printf("input: invalid transition %s -> %s", c.state, to)
	}
	c.state = to
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
