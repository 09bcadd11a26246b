package geom

// Point is an integer canvas coordinate
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Dimensions
}

// FromCorners builds a well-formed rect spanning two drag endpoints
// Endpoints may arrive in any order; the result always has W, H >= 0
func FromCorners(a, b Point) Rect {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns W*H
func (r Rect) Area() int {
	return r.W * r.H
}

// Empty reports whether the rect has no interior
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains checks if point is within rect, half-open on the far edges
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Translate returns the rect moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// IntersectsVertical reports whether a vertical line at x passes strictly
// through the rect's horizontal extent. A line on either edge does not
func IntersectsVertical(r Rect, x int) bool {
	return x > r.X && x < r.X+r.W
}

// IntersectsHorizontal reports whether a horizontal line at y passes
// strictly through the rect's vertical extent
func IntersectsHorizontal(r Rect, y int) bool {
	return y > r.Y && y < r.Y+r.H
}
