// Package fov computes field of view over an occluding tile grid.
package fov

// Grid is the read-only view of a map that visibility needs.
type Grid interface {
	InBounds(x, y int) bool
	BlocksSight(x, y int) bool
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Set is the set of tiles visible from some origin.
type Set map[Point]struct{}

// Contains reports whether the tile at (x, y) is visible.
func (s Set) Contains(x, y int) bool {
	_, ok := s[Point{X: x, Y: y}]
	return ok
}

// Compute returns the set of tiles visible from the origin within the given
// circular radius. A ray is cast to every tile in range; the tile is visible
// if nothing between it and the origin occludes sight. Walls are lit when
// directly hit, but never reveal what lies behind them.
func Compute(g Grid, originX, originY, radius int) Set {
	visible := make(Set)
	if !g.InBounds(originX, originY) {
		return visible
	}
	visible[Point{X: originX, Y: originY}] = struct{}{}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := originX+dx, originY+dy
			if !g.InBounds(x, y) {
				continue
			}
			if lineClear(g, originX, originY, x, y) {
				visible[Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return visible
}

// lineClear walks the Bresenham line from the origin toward the target and
// reports whether every tile strictly between them admits sight. The target
// tile itself may occlude; that only makes it a lit wall.
func lineClear(g Grid, x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		if (x != x0 || y != y0) && g.BlocksSight(x, y) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
