package sand

import (
	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// View is the read access a rule needs: the current buffer and its bounds.
type View interface {
	In(x, y int) bool
	Get(x, y int) matter.Cell
}

// Move is a rule's verdict for one cell: an offset to its destination, or the
// zero Move to stay in place.
type Move struct {
	DX, DY int
}

// Stay leaves the cell where it is.
var Stay = Move{}

// Stays reports whether m keeps the cell in place.
func (m Move) Stays() bool { return m == Stay }

// Rule decides where the cell at (x, y) should go. Rules read only the cell
// and its neighbours below; they never write.
type Rule func(v View, x, y int, src core.Source) Move

var rules = [matter.KindCount]Rule{
	matter.Empty: immovable,
	matter.Sand:  granular,
	matter.Wood:  immovable,
}

// Decide evaluates the rule for the cell at (x, y).
func Decide(v View, x, y int, src core.Source) Move {
	return rules[v.Get(x, y).Kind()](v, x, y, src)
}

func immovable(View, int, int, core.Source) Move { return Stay }

// granular falls straight down, then diagonally. When both diagonals are open
// src picks one.
func granular(v View, x, y int, src core.Source) Move {
	below := y - 1
	if free(v, x, below) {
		return Move{DX: 0, DY: -1}
	}
	left := free(v, x-1, below)
	right := free(v, x+1, below)
	switch {
	case left && right:
		if src.Bool() {
			return Move{DX: -1, DY: -1}
		}
		return Move{DX: 1, DY: -1}
	case left:
		return Move{DX: -1, DY: -1}
	case right:
		return Move{DX: 1, DY: -1}
	}
	return Stay
}

// free reports whether matter may move into (x, y). Positions outside the grid
// are solid so nothing falls out of the world.
func free(v View, x, y int) bool {
	return v.In(x, y) && v.Get(x, y).IsEmpty()
}
