package input

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/geom"
	"github.com/lixenwraith/pillcut/partition"
)

// ActionType discriminates what a pointer event did to the canvas
type ActionType uint8

const (
	ActionNone ActionType = iota

	ActionDrawStarted // Press on empty canvas
	ActionDragStarted // Press on a pill, pill raised to top
	ActionDragEnded   // Release after moving a pill

	ActionCreated     // Draw gesture committed a pill
	ActionDiscarded   // Draw gesture too small, nothing created
	ActionPartitioned // Click cut the canvas
	ActionCancelled   // Gesture abandoned by a press without release
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionDrawStarted: "draw-started",
	ActionDragStarted: "drag-started",
	ActionDragEnded:   "drag-ended",
	ActionCreated:     "created",
	ActionDiscarded:   "discarded",
	ActionPartitioned: "partitioned",
	ActionCancelled:   "cancelled",
}

func (t ActionType) String() string {
	if int(t) < len(actionNames) {
		return actionNames[t]
	}
	return "unknown"
}

// Action describes the effect of one pointer event
type Action struct {
	Type ActionType
	At   geom.Point

	// Pill is the created or dragged pill
	Pill canvas.Pill

	// Result is set for ActionPartitioned
	Result partition.Result
}

// ColorSource picks the color of a pill about to be drawn
type ColorSource func() colorful.Color
