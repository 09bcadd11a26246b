package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB builds a color from 8-bit channels
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ToTcell converts to a truecolor tcell color, clamping out-of-gamut values
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB(26, 27, 38)
	RgbBlack      = RGB(0, 0, 0)
	RgbWhite      = RGB(255, 255, 255)

	RgbGridDot    = RGB(65, 72, 104)
	RgbCrosshair  = RGB(192, 202, 245)
	RgbCursorMark = RGB(255, 165, 0)

	RgbStatusBg   = RGB(36, 40, 59)
	RgbStatusText = RGB(169, 177, 214)
	RgbModeText   = RGB(0, 0, 0)

	RgbModeIdleBg = RGB(135, 206, 250) // Light sky blue
	RgbModeDrawBg = RGB(144, 238, 144) // Light grass green
	RgbModeDragBg = RGB(255, 165, 0)   // Orange

	RgbAudioUnmuted = RGB(0, 200, 0)
	RgbAudioMuted   = RGB(200, 50, 50)

	RgbHelpBg = RGB(65, 72, 104)
)

// Darken moves c toward black by t in Lab space
func Darken(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(RgbBlack, t).Clamped()
}

// Lighten moves c toward white by t in Lab space
func Lighten(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(RgbWhite, t).Clamped()
}
