package render

import "github.com/lucasb-eyer/go-colorful"

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
)

// Blend flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined blend modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace Fg, keep Bg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Translucent fill, keep Fg
)

// Blend mixes src over dst with opacity alpha in [0, 1]
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return dst.BlendRgb(src, alpha)
}
