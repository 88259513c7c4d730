package app

import "mad-sand/internal/core"

// ScreenToGrid maps a cursor position in screen pixels to a grid cell. Screen
// row 0 is the top of the world, grid row 0 the bottom. The second result is
// false when the cursor is outside the simulation view.
func ScreenToGrid(mx, my, scale int, size core.Size) (core.Point, bool) {
	if scale <= 0 {
		scale = 1
	}
	if mx < 0 || my < 0 {
		return core.Point{}, false
	}
	p := core.Pt(mx/scale, size.H-1-my/scale)
	return p, size.Contains(p)
}
