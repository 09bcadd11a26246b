package input

import "fmt"

// GestureState tracks the pointer gesture state machine
type GestureState uint8

const (
	StateIdle     GestureState = iota // No button held
	StateDrawing                      // Pressed on empty canvas: click or draw-to-create
	StateDragging                     // Pressed on a pill: click or drag-to-reposition
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateDragging:
		return "dragging"
	}
	return fmt.Sprintf("GestureState(%d)", uint8(s))
}

// validTransitions lists the edges of the gesture machine
// Press leaves Idle; release always returns to it
var validTransitions = map[GestureState][]GestureState{
	StateIdle:     {StateDrawing, StateDragging},
	StateDrawing:  {StateIdle},
	StateDragging: {StateIdle},
}

// CanTransition reports whether from -> to is an edge of the gesture machine
func CanTransition(from, to GestureState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
