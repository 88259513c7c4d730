package sand

import (
	"golang.org/x/sync/errgroup"

	"mad-sand/internal/core"
)

// phase selects the cells with x%3 == px and y%2 == py. A cell writes only
// itself and one of the three cells below it, so two cells of the same phase
// never touch the same destination.
type phase struct{ px, py int }

var phases = [...]phase{
	{0, 0}, {1, 0}, {2, 0},
	{0, 1}, {1, 1}, {2, 1},
}

// band is a horizontal strip of TileSize rows evaluated by one goroutine.
type band struct {
	y0, y1 int
	rnd    core.Source
	moves  []move
}

// move records a committed swap so it can be replayed on the other buffer.
type move struct{ src, dst int }

func (s *Simulator) buildBands() {
	tile := s.cfg.TileSize
	h := s.grid.H
	n := (h + tile - 1) / tile
	s.bands = make([]band, n)
	for i := range s.bands {
		s.bands[i].y0 = i * tile
		s.bands[i].y1 = min((i+1)*tile, h)
	}
}

// Step advances the simulation by subSteps sub-steps. It is a no-op when
// paused or when subSteps is not positive. There is no upper bound; the
// cost is proportional to subSteps.
func (s *Simulator) Step(subSteps int, paused bool) {
	if paused || subSteps <= 0 {
		return
	}
	s.grid.Sync()
	moves := 0
	for i := 0; i < subSteps; i++ {
		s.nextGeneration()
		for _, ph := range phases {
			moves += s.runPhase(ph)
		}
		s.ticks++
	}
	s.lastMoves = moves
	s.stepped = true
	s.log.Debug("step", "sub_steps", subSteps, "moves", moves, "ticks", s.ticks)
}

func (s *Simulator) nextGeneration() {
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
}

// runPhase evaluates every band against the frozen current buffer, waits for
// all of them, promotes the scratch buffer and replays the moves so both
// buffers agree before the next phase.
func (s *Simulator) runPhase(ph phase) int {
	if s.workers == 1 || len(s.bands) == 1 {
		for i := range s.bands {
			s.evalBand(&s.bands[i], ph)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(s.workers)
		for i := range s.bands {
			b := &s.bands[i]
			eg.Go(func() error {
				s.evalBand(b, ph)
				return nil
			})
		}
		// evalBand cannot fail; Wait is only the phase barrier.
		_ = eg.Wait()
	}

	s.grid.Swap()
	stale := s.grid.Scratch()
	n := 0
	for i := range s.bands {
		for _, m := range s.bands[i].moves {
			stale[m.src], stale[m.dst] = stale[m.dst], stale[m.src]
		}
		n += len(s.bands[i].moves)
	}
	return n
}

func (s *Simulator) evalBand(b *band, ph phase) {
	b.moves = b.moves[:0]
	g := s.grid
	cur, nxt := g.Cells(), g.Scratch()
	y := b.y0
	if y%2 != ph.py {
		y++
	}
	for ; y < b.y1; y += 2 {
		row := y * g.W
		for x := ph.px; x < g.W; x += 3 {
			i := row + x
			if s.stamp[i] == s.gen || cur[i].IsEmpty() {
				continue
			}
			m := Decide(g, x, y, b.rnd)
			if m.Stays() {
				continue
			}
			j := g.Index(x+m.DX, y+m.DY)
			nxt[i], nxt[j] = cur[j], cur[i]
			s.stamp[j] = s.gen
			b.moves = append(b.moves, move{src: i, dst: j})
		}
	}
}
