package world

// Rect is a generation-time room rectangle. X2/Y2 are exclusive of the room
// interior: carving leaves the X1/Y1/X2/Y2 edges as wall.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rectangle from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether the two rectangles overlap. The test is
// inclusive on all edges, so rooms that merely touch count as overlapping
// and are rejected during generation.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
