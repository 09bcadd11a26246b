package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pillcut/audio"
	"github.com/lixenwraith/pillcut/canvas"
	"github.com/lixenwraith/pillcut/config"
	"github.com/lixenwraith/pillcut/input"
	"github.com/lixenwraith/pillcut/modes"
	"github.com/lixenwraith/pillcut/partition"
	"github.com/lixenwraith/pillcut/raster"
	"github.com/lixenwraith/pillcut/render"
	"github.com/lixenwraith/pillcut/render/renderers"
	"github.com/lixenwraith/pillcut/status"
)

var (
	configFlag      = flag.String("config", "", "Path to YAML config (default ./"+config.DefaultFileName+" if present)")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to logs/pillcut.log")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	snapshotDirFlag = flag.String("snapshot-dir", "", "Directory for PNG snapshots")
)

// statusRows is the height reserved under the canvas
const statusRows = 1

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pillcut: %v\n", err)
		os.Exit(1)
	}
	if *snapshotDirFlag != "" {
		cfg.Snapshot.Dir = *snapshotDirFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	keys := modes.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "pillcut: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPILLCUT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	// Sound is optional
	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without sound)", err)
	}
	defer sound.Cleanup()

	app := newApp(cfg, keys, screen, sound)
	app.run()
}

// app wires the canvas model to the terminal
type app struct {
	cfg    *config.Config
	screen tcell.Screen
	sound  *audio.SoundManager

	set     *canvas.Set
	ctrl    *input.Controller
	reg     *status.Registry
	handler *modes.InputHandler

	orchestrator  *render.RenderOrchestrator
	width, height int
}

func newApp(cfg *config.Config, keys *modes.KeyTable, screen tcell.Screen, sound *audio.SoundManager) *app {
	ids := canvas.NewIDGen()
	set := canvas.NewSet()
	engine := partition.NewEngine(cfg.PartitionPolicy(), ids)

	a := &app{
		cfg:    cfg,
		screen: screen,
		sound:  sound,
		set:    set,
		ctrl:   input.NewController(cfg.GesturePolicy(), set, engine, ids, nil),
		reg:    status.NewRegistry(),
	}
	a.handler = modes.NewInputHandler(a.ctrl, sound, a.reg, a.snapshot, keys, cfg.Canvas.CellWidth, cfg.Canvas.CellHeight)

	a.width, a.height = screen.Size()
	a.orchestrator = render.NewRenderOrchestrator(screen, a.width, a.height)

	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderers.NewGridRenderer(renderers.DefaultGridSpacing), render.PriorityGrid},
		{renderers.NewPillsRenderer(), render.PriorityPills},
		{renderers.NewPreviewRenderer(), render.PriorityPreview},
		{renderers.NewCrosshairRenderer(), render.PriorityCrosshair},
		{renderers.NewStatusBarRenderer(a.reg), render.PriorityUI},
		{renderers.NewHelpRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		a.orchestrator.Register(def.renderer, def.priority)
	}

	log.Printf("pillcut: %dx%d cells, cell %dx%d units", a.width, a.height, cfg.Canvas.CellWidth, cfg.Canvas.CellHeight)
	return a
}

func (a *app) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for ev := range eventChan {
		if !a.handle(ev) {
			return
		}

		// Coalesce queued events into one frame
		for drained := false; !drained; {
			select {
			case next, ok := <-eventChan:
				if !ok || !a.handle(next) {
					return
				}
			default:
				drained = true
			}
		}
		a.draw()
	}
}

// handle applies one event, returning false on quit
func (a *app) handle(ev tcell.Event) bool {
	if resize, ok := ev.(*tcell.EventResize); ok {
		a.width, a.height = resize.Size()
		a.orchestrator.Resize(a.width, a.height)
	}
	return a.handler.HandleEvent(ev)
}

func (a *app) draw() {
	a.orchestrator.RenderFrame(a.renderContext())
}

func (a *app) renderContext() render.RenderContext {
	rc := render.RenderContext{
		ScreenWidth:   a.width,
		ScreenHeight:  a.height,
		CanvasHeight:  max(0, a.height-statusRows),
		CellWidth:     a.cfg.Canvas.CellWidth,
		CellHeight:    a.cfg.Canvas.CellHeight,
		Pills:         a.set.Pills(),
		DefaultRadius: a.cfg.Canvas.InitialRadius,
		State:         a.ctrl.State().String(),
		Muted:         a.sound.IsMuted(),
		ShowHelp:      a.handler.ShowHelp(),
	}
	rc.CursorX, rc.CursorY, rc.CursorVisible = a.handler.MouseCell()
	rc.Preview, rc.PreviewColor, rc.HasPreview = a.ctrl.Preview()
	return rc
}

// snapshot writes the current region set to a timestamped PNG
func (a *app) snapshot() (string, error) {
	pills := a.set.Pills()
	visible := image.Pt(a.width*a.cfg.Canvas.CellWidth, max(0, a.height-statusRows)*a.cfg.Canvas.CellHeight)

	opts := raster.DefaultOptions()
	opts.DefaultRadius = a.cfg.Canvas.InitialRadius

	path := raster.SnapshotPath(a.cfg.Snapshot.Dir, time.Now())
	if err := raster.SavePNG(path, pills, raster.Extent(pills, visible), opts); err != nil {
		return "", err
	}
	return path, nil
}
