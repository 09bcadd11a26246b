package geom

// Radii holds per-corner rounding, clockwise from top-left
type Radii struct {
	TL, TR, BR, BL int
}

// Uniform returns radii with every corner set to r
func Uniform(r int) Radii {
	return Radii{TL: r, TR: r, BR: r, BL: r}
}

// IsZero reports whether every corner is square
func (r Radii) IsZero() bool {
	return r.TL == 0 && r.TR == 0 && r.BR == 0 && r.BL == 0
}

// ComputeRadii derives a fragment's corner radii from the region it was cut
// out of. A corner keeps the parent's radius only when both edges meeting at
// it still lie on the parent's outer edges; seams introduced by a cut are square
func ComputeRadii(parent Rect, radii Radii, frag Rect) Radii {
	left := frag.X == parent.X
	right := frag.Right() == parent.Right()
	top := frag.Y == parent.Y
	bottom := frag.Bottom() == parent.Bottom()

	var out Radii
	if left && top {
		out.TL = radii.TL
	}
	if right && top {
		out.TR = radii.TR
	}
	if right && bottom {
		out.BR = radii.BR
	}
	if left && bottom {
		out.BL = radii.BL
	}
	return out
}
