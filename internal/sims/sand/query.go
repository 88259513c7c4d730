package sand

import (
	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// QueryMatter returns the kind stored at p, or false when p is outside the
// grid.
func (s *Simulator) QueryMatter(p core.Point) (matter.Kind, bool) {
	if !s.grid.In(p.X, p.Y) {
		return matter.Empty, false
	}
	return s.grid.Get(p.X, p.Y).Kind(), true
}

// Census counts cells per kind.
type Census [matter.KindCount]int

// Of returns the count for k.
func (c Census) Of(k matter.Kind) int {
	if !k.Valid() {
		return 0
	}
	return c[k]
}

// Matter returns the number of non-empty cells.
func (c Census) Matter() int {
	total := 0
	for k := matter.Empty + 1; k < matter.KindCount; k++ {
		total += c[k]
	}
	return total
}

// Census counts the cells of each kind in the current buffer.
func (s *Simulator) Census() Census {
	var c Census
	for _, cell := range s.grid.Cells() {
		c[cell.Kind()]++
	}
	return c
}
