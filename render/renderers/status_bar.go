package renderers

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pillcut/render"
	"github.com/lixenwraith/pillcut/status"
)

const (
	audioOnText  = " ♪ "
	audioOffText = " ✕ "
)

// StatusBarRenderer draws the status bar on the last screen row
type StatusBarRenderer struct {
	reg *status.Registry
}

// NewStatusBarRenderer creates a status bar reading counters from reg
func NewStatusBarRenderer(reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{reg: reg}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.ScreenHeight - 1
	if y < 0 || y < ctx.CanvasHeight {
		return
	}

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', render.RgbStatusText, render.RgbStatusBg)
	}

	x := 0

	// Audio indicator, always visible
	audioText, audioBg := audioOnText, render.RgbAudioUnmuted
	if ctx.Muted {
		audioText, audioBg = audioOffText, render.RgbAudioMuted
	}
	x += buf.DrawString(x, y, audioText, render.RgbModeText, audioBg)

	modeText, modeBg := modeStyle(ctx.State)
	x += buf.DrawString(x, y, modeText, render.RgbModeText, modeBg)

	counts := fmt.Sprintf(" pills %d  cuts %d  splits %d  nudges %d  discarded %d ",
		s.reg.Int(status.KeyPills),
		s.reg.Int(status.KeyCuts),
		s.reg.Int(status.KeySplits),
		s.reg.Int(status.KeyNudges),
		s.reg.Int(status.KeyDiscarded),
	)

	last := s.reg.String(status.KeyLastAction)
	if last != "" {
		last = " " + last + " "
	}

	room := ctx.ScreenWidth - x
	if room <= 0 {
		return
	}

	// Right-align the last action; counts get what is left
	lastW := min(runewidth.StringWidth(last), room)
	if countsW := room - lastW; countsW > 0 {
		counts = runewidth.Truncate(counts, countsW, "…")
		buf.DrawString(x, y, counts, render.RgbStatusText, render.RgbStatusBg)
	}

	if lastW > 0 {
		last = runewidth.Truncate(last, lastW, "…")
		buf.DrawString(ctx.ScreenWidth-runewidth.StringWidth(last), y, last, render.RgbStatusText, render.RgbStatusBg)
	}
}

func modeStyle(state string) (string, colorful.Color) {
	text := " " + strings.ToUpper(state) + " "
	switch state {
	case "drawing":
		return text, render.RgbModeDrawBg
	case "dragging":
		return text, render.RgbModeDragBg
	default:
		return text, render.RgbModeIdleBg
	}
}
