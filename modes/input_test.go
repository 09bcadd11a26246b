package modes

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/input"
	"github.com/lixenwraith/pillcut/partition"
	"github.com/lixenwraith/pillcut/status"
)

type fakeSound struct {
	create, split, nudge, discard int
	muted                         bool
}

func (f *fakeSound) PlayCreate() bool  { f.create++; return true }
func (f *fakeSound) PlaySplit() bool   { f.split++; return true }
func (f *fakeSound) PlayNudge() bool   { f.nudge++; return true }
func (f *fakeSound) PlayDiscard() bool { f.discard++; return true }
func (f *fakeSound) ToggleMute() bool  { f.muted = !f.muted; return !f.muted }
func (f *fakeSound) IsMuted() bool     { return f.muted }

type harness struct {
	h     *InputHandler
	ctrl  *input.Controller
	sound *fakeSound
	reg   *status.Registry
}

func newHarness(snap Snapshotter) *harness {
	ids := canvas.NewIDGen()
	ctrl := input.NewController(
		input.DefaultConfig(),
		canvas.NewSet(),
		partition.NewEngine(partition.DefaultConfig(), ids),
		ids,
		func() colorful.Color { return colorful.Hsl(200, 0.65, 0.65) },
	)
	sound := &fakeSound{}
	reg := status.NewRegistry()
	return &harness{
		h:     NewInputHandler(ctrl, sound, reg, snap, nil, 4, 8),
		ctrl:  ctrl,
		sound: sound,
		reg:   reg,
	}
}

// handleRune feeds a rune key through the binding table
func (h *InputHandler) handleRune(r rune) bool {
	return h.runAction(h.keys.Lookup(tcell.KeyRune, r))
}

func (hs *harness) mouse(x, y int, btn tcell.ButtonMask) {
	if !hs.h.HandleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone)) {
		panic("mouse event requested exit")
	}
}

// drag presses at (x0, y0), moves through (x1, y1), and releases there
func (hs *harness) drag(x0, y0, x1, y1 int) {
	hs.mouse(x0, y0, tcell.Button1)
	hs.mouse(x1, y1, tcell.Button1)
	hs.mouse(x1, y1, tcell.ButtonNone)
}

func (hs *harness) click(x, y int) {
	hs.mouse(x, y, tcell.Button1)
	hs.mouse(x, y, tcell.ButtonNone)
}

func TestCellToCanvasCenters(t *testing.T) {
	hs := newHarness(nil)
	if got := hs.h.CellToCanvas(0, 0); got.X != 2 || got.Y != 4 {
		t.Errorf("cell (0,0) -> %v, want (2,4)", got)
	}
	if got := hs.h.CellToCanvas(3, 2); got.X != 14 || got.Y != 20 {
		t.Errorf("cell (3,2) -> %v, want (14,20)", got)
	}
}

func TestDrawCreatesPill(t *testing.T) {
	hs := newHarness(nil)
	hs.drag(2, 2, 15, 10)

	pills := hs.ctrl.Set().Pills()
	if len(pills) != 1 {
		t.Fatalf("got %d pills, want 1", len(pills))
	}
	r := pills[0].Rect
	if r.X != 10 || r.Y != 20 || r.W != 52 || r.H != 64 {
		t.Errorf("rect = %+v", r)
	}
	if hs.sound.create != 1 {
		t.Errorf("create cues = %d", hs.sound.create)
	}
	if hs.reg.Int(status.KeyCreated) != 1 || hs.reg.Int(status.KeyPills) != 1 {
		t.Errorf("counters created=%d pills=%d", hs.reg.Int(status.KeyCreated), hs.reg.Int(status.KeyPills))
	}
	if got := hs.reg.String(status.KeyLastAction); got != "created p1" {
		t.Errorf("last action = %q", got)
	}
	if hs.ctrl.State() != input.StateIdle {
		t.Errorf("state = %s after release", hs.ctrl.State())
	}
}

func TestSmallDrawDiscarded(t *testing.T) {
	hs := newHarness(nil)
	hs.drag(0, 0, 5, 3)

	if hs.ctrl.Set().Len() != 0 {
		t.Fatal("small draw created a pill")
	}
	if hs.sound.discard != 1 || hs.reg.Int(status.KeyDiscarded) != 1 {
		t.Errorf("discard cue=%d counter=%d", hs.sound.discard, hs.reg.Int(status.KeyDiscarded))
	}
}

func TestClickOnPillCrossSplits(t *testing.T) {
	hs := newHarness(nil)
	hs.drag(2, 2, 15, 10) // p1 at (10,20) 52x64
	hs.click(8, 5)        // canvas (34,44)

	if got := hs.ctrl.Set().Len(); got != 4 {
		t.Fatalf("got %d pills after cross cut, want 4", got)
	}
	if hs.sound.split != 1 || hs.sound.nudge != 0 {
		t.Errorf("split cues=%d nudge cues=%d", hs.sound.split, hs.sound.nudge)
	}
	if hs.reg.Int(status.KeyCuts) != 1 || hs.reg.Int(status.KeySplits) != 1 || hs.reg.Int(status.KeyFragments) != 4 {
		t.Errorf("cuts=%d splits=%d fragments=%d",
			hs.reg.Int(status.KeyCuts), hs.reg.Int(status.KeySplits), hs.reg.Int(status.KeyFragments))
	}
	if hs.reg.Int(status.KeyPills) != 4 {
		t.Errorf("pills counter = %d", hs.reg.Int(status.KeyPills))
	}
	if last := hs.reg.String(status.KeyLastAction); !strings.HasPrefix(last, "cut 34,44") {
		t.Errorf("last action = %q", last)
	}
}

func TestClickNearEdgeNudges(t *testing.T) {
	hs := newHarness(nil)
	hs.drag(2, 2, 15, 10) // p1 at (10,20) 52x64
	hs.click(3, 5)        // canvas (14,44): left fragment only 4 wide

	if hs.ctrl.Set().Len() != 1 {
		t.Fatalf("nudge should keep one pill, got %d", hs.ctrl.Set().Len())
	}
	if hs.sound.nudge != 1 {
		t.Errorf("nudge cues = %d", hs.sound.nudge)
	}
	if hs.reg.Int(status.KeyNudges) != 1 {
		t.Errorf("nudges counter = %d", hs.reg.Int(status.KeyNudges))
	}
}

func TestDragMovesPill(t *testing.T) {
	hs := newHarness(nil)
	hs.drag(2, 2, 15, 10)
	hs.drag(4, 4, 6, 5)

	p, ok := hs.ctrl.Set().Get("p1")
	if !ok {
		t.Fatal("p1 missing")
	}
	// Moved by 2 cells right and 1 down
	if p.Rect.X != 18 || p.Rect.Y != 28 {
		t.Errorf("moved to (%d,%d), want (18,28)", p.Rect.X, p.Rect.Y)
	}
	if hs.reg.Int(status.KeyDrags) != 1 {
		t.Errorf("drags = %d", hs.reg.Int(status.KeyDrags))
	}
	if hs.sound.split != 0 {
		t.Error("drag must not cut")
	}
}

func TestHoverTracksPointer(t *testing.T) {
	hs := newHarness(nil)
	if _, _, ok := hs.h.MouseCell(); ok {
		t.Fatal("no pointer seen yet")
	}
	hs.mouse(7, 3, tcell.ButtonNone)

	x, y, ok := hs.h.MouseCell()
	if !ok || x != 7 || y != 3 {
		t.Errorf("MouseCell = (%d,%d,%v)", x, y, ok)
	}
	if c := hs.ctrl.Cursor(); c != hs.h.CellToCanvas(7, 3) {
		t.Errorf("cursor = %v", c)
	}
	if hs.ctrl.State() != input.StateIdle {
		t.Error("hover changed gesture state")
	}
}

func TestRuneKeys(t *testing.T) {
	var snaps int
	hs := newHarness(func() (string, error) {
		snaps++
		return "/tmp/x.png", nil
	})

	if hs.h.handleRune('q') {
		t.Error("q should quit")
	}

	hs.h.handleRune('m')
	if !hs.sound.muted {
		t.Error("m should mute")
	}
	hs.h.handleRune('m')
	if hs.sound.muted {
		t.Error("second m should unmute")
	}

	hs.h.handleRune('?')
	if !hs.h.ShowHelp() {
		t.Error("? should show help")
	}

	hs.h.handleRune('s')
	if snaps != 1 || hs.reg.Int(status.KeySnapshots) != 1 {
		t.Errorf("snapshots = %d, counter = %d", snaps, hs.reg.Int(status.KeySnapshots))
	}
	if got := hs.reg.String(status.KeyLastAction); got != "saved /tmp/x.png" {
		t.Errorf("last action = %q", got)
	}

	if !hs.h.handleRune('x') {
		t.Error("unbound key should not quit")
	}
}

func TestSnapshotFailure(t *testing.T) {
	hs := newHarness(func() (string, error) { return "", errors.New("disk full") })
	hs.h.handleRune('s')
	if hs.reg.Int(status.KeySnapshots) != 0 {
		t.Error("failed snapshot counted")
	}
	if got := hs.reg.String(status.KeyLastAction); got != "snapshot failed" {
		t.Errorf("last action = %q", got)
	}

	// No snapshotter configured
	newHarness(nil).h.handleRune('s')
}

func TestResizeIgnored(t *testing.T) {
	hs := newHarness(nil)
	if !hs.h.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize should not quit")
	}
}

func TestKeyTableDefaults(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		key  tcell.Key
		r    rune
		want KeyAction
	}{
		{tcell.KeyRune, 'q', KeyActionQuit},
		{tcell.KeyRune, 'm', KeyActionToggleMute},
		{tcell.KeyRune, 's', KeyActionSnapshot},
		{tcell.KeyRune, '?', KeyActionToggleHelp},
		{tcell.KeyRune, 'z', KeyActionNone},
		{tcell.KeyEscape, 0, KeyActionQuit},
		{tcell.KeyCtrlC, 0, KeyActionQuit},
		{tcell.KeyEnter, 0, KeyActionNone},
	}
	for _, tt := range tests {
		if got := kt.Lookup(tt.key, tt.r); got != tt.want {
			t.Errorf("Lookup(%v, %q) = %d, want %d", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestKeyTableApply(t *testing.T) {
	kt := DefaultKeyTable()
	err := kt.Apply(map[string]string{
		"x":      "quit",
		"q":      "none",
		"space":  "snapshot",
		"esc":    "toggle_help",
		"ctrl-c": "none",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if kt.Lookup(tcell.KeyRune, 'x') != KeyActionQuit {
		t.Error("x should quit")
	}
	if kt.Lookup(tcell.KeyRune, 'q') != KeyActionNone {
		t.Error("q should be unbound")
	}
	if kt.Lookup(tcell.KeyRune, ' ') != KeyActionSnapshot {
		t.Error("space should snapshot")
	}
	if kt.Lookup(tcell.KeyEscape, 0) != KeyActionToggleHelp {
		t.Error("esc should toggle help")
	}
	if kt.Lookup(tcell.KeyCtrlC, 0) != KeyActionQuit {
		t.Error("ctrl-c must keep quitting")
	}
}

func TestKeyTableApplyErrors(t *testing.T) {
	tests := []map[string]string{
		{"x": "explode"},
		{"xy": "quit"},
		{"": "quit"},
	}
	for _, bindings := range tests {
		if err := DefaultKeyTable().Apply(bindings); err == nil {
			t.Errorf("Apply(%v) accepted", bindings)
		}
	}
}
