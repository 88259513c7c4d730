// Package grid stores the double-buffered cell arrays a sand simulation reads
// from and writes into.
package grid

import (
	"image"
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// Grid holds the current and scratch cell buffers in row-major order. Row 0 is
// the bottom of the world. Both buffers are allocated together and never
// resized.
type Grid struct {
	W, H  int
	cur   []matter.Cell
	nxt   []matter.Cell
	empty matter.Cell
}

// New allocates a grid with the given dimensions, filled with empty.
func New(w, h int, empty matter.Cell) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{
		W:     w,
		H:     h,
		cur:   make([]matter.Cell, w*h),
		nxt:   make([]matter.Cell, w*h),
		empty: empty,
	}
	g.Fill(empty)
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Cells exposes the current buffer.
func (g *Grid) Cells() []matter.Cell { return g.cur }

// Scratch exposes the scratch buffer. Its contents are only meaningful inside
// a step.
func (g *Grid) Scratch() []matter.Cell { return g.nxt }

// Empty returns the cell used for out-of-bounds reads.
func (g *Grid) Empty() matter.Cell { return g.empty }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the current cell at (x, y), or the empty cell outside the grid.
func (g *Grid) Get(x, y int) matter.Cell {
	if !g.In(x, y) {
		return g.empty
	}
	return g.cur[y*g.W+x]
}

// Set writes c into the current buffer. Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, c matter.Cell) {
	if !g.In(x, y) {
		return
	}
	g.cur[y*g.W+x] = c
}

// Swap exchanges the roles of the current and scratch buffers.
func (g *Grid) Swap() { g.cur, g.nxt = g.nxt, g.cur }

// Sync copies the current buffer into the scratch buffer.
func (g *Grid) Sync() { copy(g.nxt, g.cur) }

// Fill sets every cell of both buffers to c.
func (g *Grid) Fill(c matter.Cell) {
	for i := range g.cur {
		g.cur[i] = c
	}
	copy(g.nxt, g.cur)
}

// Image returns a read-only view of the current buffer with the usual image
// orientation: the top row of the world is row 0 of the image. The view tracks
// buffer swaps.
func (g *Grid) Image() image.Image { return view{g} }

type view struct{ g *Grid }

func (v view) ColorModel() color.Model { return matter.Model }

func (v view) Bounds() image.Rectangle { return image.Rect(0, 0, v.g.W, v.g.H) }

func (v view) At(x, y int) color.Color { return v.g.Get(x, v.g.H-1-y) }
