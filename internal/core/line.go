package core

// Line returns the cells of the segment from a to b, both ends included,
// sampled with Bresenham's algorithm. Consecutive points are 8-connected so a
// brush stamped along the result leaves no gaps.
func Line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	n := max(dx, -dy) + 1
	pts := make([]Point, 0, n)
	err := dx + dy
	p := a
	for {
		pts = append(pts, p)
		if p == b {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// Stroke converts a cursor drag into painted points. With no previous position
// only the current point is returned.
func Stroke(prev *Point, cur Point) []Point {
	if prev == nil {
		return []Point{cur}
	}
	return Line(*prev, cur)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
