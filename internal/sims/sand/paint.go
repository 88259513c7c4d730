package sand

import (
	"math"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// DrawMatter stamps a disk of the given radius with kind at every point of the
// stroke. Each covered cell gets its own freshly varied color. Painting
// bypasses the rules: whatever was there is overwritten, and painting Empty
// erases. Negative or NaN radii paint only the centre cell.
func (s *Simulator) DrawMatter(points []core.Point, radius float64, kind matter.Kind) {
	if len(points) == 0 {
		return
	}
	if math.IsNaN(radius) || radius < 0 {
		s.log.Warn("brush radius clamped", "radius", radius)
		radius = 0
	}
	// A disk wider than the grid covers it entirely; clamping keeps the
	// integer bounds sane for huge radii.
	radius = math.Min(radius, float64(s.grid.W+s.grid.H))
	r := int(math.Ceil(radius))
	r2 := radius * radius

	g := s.grid
	painted := 0
	for _, p := range points {
		y0, y1 := max(p.Y-r, 0), min(p.Y+r, g.H-1)
		x0, x1 := max(p.X-r, 0), min(p.X+r, g.W-1)
		for y := y0; y <= y1; y++ {
			dy := y - p.Y
			for x := x0; x <= x1; x++ {
				dx := x - p.X
				if float64(dx*dx+dy*dy) > r2 {
					continue
				}
				g.Set(x, y, s.enc.Cell(kind))
				painted++
			}
		}
	}
	if painted > 0 {
		s.stepped = false
	}
	s.log.Debug("draw", "kind", kind, "points", len(points), "radius", radius, "cells", painted)
}

// Fill paints every cell of the rectangle [x0,x1]×[y0,y1] with kind, clipped to
// the grid.
func (s *Simulator) Fill(x0, y0, x1, y1 int, kind matter.Kind) {
	g := s.grid
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	painted := false
	for y := max(y0, 0); y <= min(y1, g.H-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.W-1); x++ {
			g.Set(x, y, s.enc.Cell(kind))
			painted = true
		}
	}
	if painted {
		s.stepped = false
	}
}
