package canvas

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pillcut/geom"
)

// Pill saturation and lightness, hue is random
const (
	pillSaturation = 0.65
	pillLightness  = 0.65
)

// Pill is a colored rectangular region on the canvas
type Pill struct {
	ID    string
	Rect  geom.Rect
	Color colorful.Color

	// Radii is nil until explicitly set; readers resolve it with RadiiOr
	Radii *geom.Radii
}

// RadiiOr returns the pill's corner radii, or uniform def when unset
func (p Pill) RadiiOr(def int) geom.Radii {
	if p.Radii == nil {
		return geom.Uniform(def)
	}
	return *p.Radii
}

// WithRadii returns a copy of p owning its own radii value
func (p Pill) WithRadii(r geom.Radii) Pill {
	p.Radii = &r
	return p
}

func (p Pill) String() string {
	return fmt.Sprintf("%s[%d,%d %dx%d]", p.ID, p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
}

// RandomColor returns a pastel color with a random hue
func RandomColor(rng *rand.Rand) colorful.Color {
	var h float64
	if rng != nil {
		h = float64(rng.IntN(360))
	} else {
		h = float64(rand.IntN(360))
	}
	return colorful.Hsl(h, pillSaturation, pillLightness)
}
