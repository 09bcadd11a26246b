// Package modes bridges tcell events to the gesture controller
package modes

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pillcut/geom"
	"github.com/lixenwraith/pillcut/input"
	"github.com/lixenwraith/pillcut/status"
)

// SoundPlayer receives cues for canvas changes
type SoundPlayer interface {
	PlayCreate() bool
	PlaySplit() bool
	PlayNudge() bool
	PlayDiscard() bool
	ToggleMute() bool
	IsMuted() bool
}

// Snapshotter writes an image of the canvas, returning where it went
type Snapshotter func() (string, error)

// InputHandler processes user input events
type InputHandler struct {
	ctrl     *input.Controller
	sound    SoundPlayer
	reg      *status.Registry
	snapshot Snapshotter
	keys     *KeyTable

	cellW, cellH int

	buttonDown bool
	showHelp   bool

	// Last pointer cell
	mouseX, mouseY int
	mouseSeen      bool
}

// NewInputHandler creates an input handler mapping one cell to
// cellW x cellH canvas units. snapshot may be nil; nil keys uses the defaults
func NewInputHandler(ctrl *input.Controller, sound SoundPlayer, reg *status.Registry, snapshot Snapshotter, keys *KeyTable, cellW, cellH int) *InputHandler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &InputHandler{
		ctrl:     ctrl,
		sound:    sound,
		reg:      reg,
		snapshot: snapshot,
		keys:     keys,
		cellW:    cellW,
		cellH:    cellH,
	}
}

// ShowHelp reports whether the help line is toggled on
func (h *InputHandler) ShowHelp() bool {
	return h.showHelp
}

// MouseCell returns the last cell the pointer was seen in
func (h *InputHandler) MouseCell() (int, int, bool) {
	return h.mouseX, h.mouseY, h.mouseSeen
}

// CellToCanvas maps a cell to the canvas point at its center
func (h *InputHandler) CellToCanvas(x, y int) geom.Point {
	return geom.Point{X: x*h.cellW + h.cellW/2, Y: y*h.cellH + h.cellH/2}
}

// HandleEvent processes a tcell event and returns false if the app should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	}
	return true
}

// handleMouseEvent derives press/move/release from button-1 transitions
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	h.mouseX, h.mouseY, h.mouseSeen = x, y, true
	pt := h.CellToCanvas(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.buttonDown:
		h.buttonDown = true
		h.dispatch(h.ctrl.Press(pt))
	case !down && h.buttonDown:
		h.buttonDown = false
		h.dispatch(h.ctrl.Release(pt))
	default:
		h.ctrl.Move(pt)
	}
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	return h.runAction(h.keys.Lookup(ev.Key(), ev.Rune()))
}

// runAction applies a key action, returning false on quit
func (h *InputHandler) runAction(a KeyAction) bool {
	switch a {
	case KeyActionQuit:
		return false
	case KeyActionToggleMute:
		on := h.sound.ToggleMute()
		log.Printf("audio: sound on=%v", on)
	case KeyActionToggleHelp:
		h.showHelp = !h.showHelp
	case KeyActionSnapshot:
		h.takeSnapshot()
	}
	return true
}

func (h *InputHandler) takeSnapshot() {
	if h.snapshot == nil {
		return
	}
	path, err := h.snapshot()
	if err != nil {
		log.Printf("snapshot: %v", err)
		h.reg.SetString(status.KeyLastAction, "snapshot failed")
		return
	}
	h.reg.Add(status.KeySnapshots, 1)
	h.reg.SetString(status.KeyLastAction, "saved "+path)
	log.Printf("snapshot: wrote %s", path)
}

// dispatch records an action in the status registry, the log, and audio
func (h *InputHandler) dispatch(act input.Action) {
	var last string

	switch act.Type {
	case input.ActionCreated:
		h.reg.Add(status.KeyCreated, 1)
		h.sound.PlayCreate()
		last = "created " + act.Pill.ID
		log.Printf("input: created %v", act.Pill)

	case input.ActionDiscarded:
		h.reg.Add(status.KeyDiscarded, 1)
		h.sound.PlayDiscard()
		last = "too small, discarded"
		log.Printf("input: draw at %v discarded", act.At)

	case input.ActionPartitioned:
		counts := act.Result.Counts()
		h.reg.Add(status.KeyCuts, 1)
		h.reg.Add(status.KeySplits, int64(counts.Split))
		h.reg.Add(status.KeyNudges, int64(counts.Nudged))
		h.reg.Add(status.KeyFragments, int64(counts.Fragments))
		if counts.Split > 0 {
			h.sound.PlaySplit()
		}
		if counts.Nudged > 0 {
			h.sound.PlayNudge()
		}
		last = fmt.Sprintf("cut %d,%d: %d split %d nudged", act.At.X, act.At.Y, counts.Split, counts.Nudged)
		log.Printf("input: cut at %v: %s", act.At, counts)

	case input.ActionDragEnded:
		h.reg.Add(status.KeyDrags, 1)
		last = "moved " + act.Pill.ID
		log.Printf("input: moved %v", act.Pill)

	case input.ActionCancelled:
		last = "gesture cancelled"

	default:
		return
	}

	h.reg.Ints.Get(status.KeyPills).Store(int64(h.ctrl.Set().Len()))
	h.reg.SetString(status.KeyLastAction, last)
}
