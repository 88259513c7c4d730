package sand

import (
	"math"
	"slices"
	"testing"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// coin is a Source that always returns the same flip.
type coin bool

func (c coin) Bool() bool       { return bool(c) }
func (c coin) Float64() float64 { return 0.5 }

func newSim(w, h int, opts ...func(*Config)) *Simulator {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

func withWorkers(n int) func(*Config) { return func(c *Config) { c.Workers = n } }

func withTile(n int) func(*Config) { return func(c *Config) { c.TileSize = n } }

func withCoin(flip bool) func(*Config) {
	return func(c *Config) {
		c.Rand = func(int64, uint64) core.Source { return coin(flip) }
	}
}

func kindAt(t *testing.T, s *Simulator, x, y int) matter.Kind {
	t.Helper()
	k, ok := s.QueryMatter(core.Pt(x, y))
	if !ok {
		t.Fatalf("(%d,%d) reported outside the grid", x, y)
	}
	return k
}

func TestExampleSandfall(t *testing.T) {
	sim := New(64, 64)
	pos := core.Pt(10, 10)

	if k, ok := sim.QueryMatter(pos); !ok || k != matter.Empty {
		t.Fatalf("expected empty before drawing, got %v/%v", k, ok)
	}
	sim.DrawMatter([]core.Point{pos}, 0.5, matter.Sand)
	if k := kindAt(t, sim, 10, 10); k != matter.Sand {
		t.Fatalf("expected sand after drawing, got %v", k)
	}

	sim.Step(1, false)

	if k := kindAt(t, sim, 10, 10); k != matter.Empty {
		t.Fatalf("old position should be empty, got %v", k)
	}
	if k := kindAt(t, sim, 10, 9); k != matter.Sand {
		t.Fatalf("sand should fall one cell, got %v at (10,9)", k)
	}
	if sim.LastMoves() != 1 {
		t.Fatalf("expected exactly one move, got %d", sim.LastMoves())
	}
}

func TestSubStepsFallOneCellEach(t *testing.T) {
	for _, workers := range []int{1, 4} {
		sim := newSim(16, 40, withWorkers(workers), withTile(4))
		sim.DrawMatter([]core.Point{core.Pt(7, 30)}, 0, matter.Sand)
		sim.Step(5, false)
		if k := kindAt(t, sim, 7, 25); k != matter.Sand {
			t.Fatalf("workers=%d: expected sand at (7,25), got %v", workers, k)
		}
		if got := sim.Census().Of(matter.Sand); got != 1 {
			t.Fatalf("workers=%d: expected 1 sand cell, got %d", workers, got)
		}
		if sim.Ticks() != 5 {
			t.Fatalf("expected 5 ticks, got %d", sim.Ticks())
		}
	}
}

func TestPausedAndZeroStepsAreNoOps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 48, 48
	cfg.Scenario = ScenarioDunes
	sim := NewWithConfig(cfg)
	sim.Reset(5)
	before := slices.Clone(sim.Cells())

	sim.Step(10, true)
	sim.Step(0, false)
	sim.Step(-4, false)

	if !slices.Equal(before, sim.Cells()) {
		t.Fatal("paused or empty steps must leave every cell unchanged")
	}
	if sim.Ticks() != 0 {
		t.Fatalf("no sub-steps should have run, got %d", sim.Ticks())
	}
}

func TestWoodNeverMoves(t *testing.T) {
	sim := newSim(20, 20, withWorkers(3), withTile(5))
	woods := []core.Point{core.Pt(0, 0), core.Pt(5, 12), core.Pt(19, 19), core.Pt(10, 3), core.Pt(11, 3)}
	for _, p := range woods {
		sim.DrawMatter([]core.Point{p}, 0, matter.Wood)
	}
	sim.Fill(3, 14, 16, 18, matter.Sand)

	for i := 0; i < 40; i++ {
		sim.Step(1, false)
		for _, p := range woods {
			if k := kindAt(t, sim, p.X, p.Y); k != matter.Wood {
				t.Fatalf("step %d: wood at %v replaced by %v", i, p, k)
			}
		}
	}
	if got := sim.Census().Of(matter.Wood); got != len(woods) {
		t.Fatalf("wood count changed to %d", got)
	}
}

func TestSandSlidesOffWood(t *testing.T) {
	for _, tc := range []struct {
		flip bool
		want core.Point
	}{
		{flip: true, want: core.Pt(9, 5)},
		{flip: false, want: core.Pt(11, 5)},
	} {
		sim := newSim(21, 21, withCoin(tc.flip))
		sim.DrawMatter([]core.Point{core.Pt(10, 5)}, 0, matter.Wood)
		sim.DrawMatter([]core.Point{core.Pt(10, 6)}, 0, matter.Sand)

		sim.Step(1, false)

		if k := kindAt(t, sim, tc.want.X, tc.want.Y); k != matter.Sand {
			t.Fatalf("flip=%v: expected sand at %v, got %v", tc.flip, tc.want, k)
		}
		if k := kindAt(t, sim, 10, 6); k != matter.Empty {
			t.Fatalf("flip=%v: source cell should be empty, got %v", tc.flip, k)
		}
		if k := kindAt(t, sim, 10, 5); k != matter.Wood {
			t.Fatalf("flip=%v: wood overwritten by %v", tc.flip, k)
		}
	}
}

func TestSandFansOutAroundWood(t *testing.T) {
	sim := newSim(21, 21)
	sim.DrawMatter([]core.Point{core.Pt(10, 5)}, 0, matter.Wood)
	sim.DrawMatter([]core.Point{core.Pt(10, 6)}, 0, matter.Sand)

	for i := 0; i < 30; i++ {
		sim.Step(1, false)
		census := sim.Census()
		if census.Of(matter.Sand) != 1 || census.Of(matter.Wood) != 1 {
			t.Fatalf("step %d: census changed %v", i, census)
		}
	}
	left, right := kindAt(t, sim, 9, 0), kindAt(t, sim, 11, 0)
	if (left == matter.Sand) == (right == matter.Sand) {
		t.Fatalf("sand should rest on exactly one side of the wood: left=%v right=%v", left, right)
	}
	if kindAt(t, sim, 10, 5) != matter.Wood {
		t.Fatal("wood must stay in place")
	}
}

func TestConservationUnderPaintAndStep(t *testing.T) {
	for _, cfg := range []struct{ workers, tile int }{{1, 32}, {4, 8}, {8, 3}} {
		sim := newSim(48, 40, withWorkers(cfg.workers), withTile(cfg.tile))
		rng := core.NewRNG(int64(cfg.tile))
		for round := 0; round < 25; round++ {
			kind := []matter.Kind{matter.Sand, matter.Sand, matter.Wood, matter.Empty}[rng.IntN(4)]
			a := core.Pt(rng.IntN(60)-6, rng.IntN(50)-5)
			b := core.Pt(rng.IntN(60)-6, rng.IntN(50)-5)
			sim.DrawMatter(core.Line(a, b), float64(rng.IntN(4)), kind)

			before := sim.Census()
			sim.Step(1+rng.IntN(3), false)
			if after := sim.Census(); after != before {
				t.Fatalf("workers=%d tile=%d round %d: census %v became %v", cfg.workers, cfg.tile, round, before, after)
			}
		}
	}
}

func TestResultsIndependentOfWorkerCount(t *testing.T) {
	run := func(workers int) []matter.Cell {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 64, 64
		cfg.TileSize = 8
		cfg.Workers = workers
		cfg.Scenario = ScenarioDunes
		sim := NewWithConfig(cfg)
		sim.Reset(21)
		sim.Step(30, false)
		return slices.Clone(sim.Cells())
	}
	if !slices.Equal(run(1), run(7)) {
		t.Fatal("the same seed must give the same grid for any worker count")
	}
}

func TestSettledPileIsStable(t *testing.T) {
	sim := newSim(15, 30, withWorkers(2), withTile(4))
	sim.Fill(6, 10, 8, 29, matter.Sand)
	want := sim.Census().Of(matter.Sand)

	for i := 0; i < 200 && !sim.Settled(); i++ {
		sim.Step(1, false)
	}
	if !sim.Settled() {
		t.Fatal("pile never settled")
	}
	if got := sim.Census().Of(matter.Sand); got != want {
		t.Fatalf("sand count changed from %d to %d", want, got)
	}
	for y := 1; y < 30; y++ {
		for x := 0; x < 15; x++ {
			if kindAt(t, sim, x, y) != matter.Sand {
				continue
			}
			if Decide(sim.grid, x, y, coin(true)) != Stay {
				t.Fatalf("sand at (%d,%d) could still move after settling", x, y)
			}
		}
	}
}

func TestMatterNeverLeavesTheGrid(t *testing.T) {
	sim := newSim(6, 6, withWorkers(2), withTile(2))
	sim.Fill(0, 0, 5, 5, matter.Sand)
	sim.Fill(2, 2, 3, 3, matter.Empty)
	want := sim.Census()
	sim.Step(20, false)
	if got := sim.Census(); got != want {
		t.Fatalf("edge handling lost matter: %v -> %v", want, got)
	}
	for x := 0; x < 6; x++ {
		if kindAt(t, sim, x, 0) != matter.Sand {
			t.Fatalf("bottom row must stay full at x=%d", x)
		}
	}
}

func TestGenerationWrapClearsStamps(t *testing.T) {
	sim := newSim(8, 8, withWorkers(1))
	sim.DrawMatter([]core.Point{core.Pt(4, 6)}, 0, matter.Sand)
	sim.gen = math.MaxUint32
	sim.stamp[sim.grid.Index(4, 6)] = 1
	sim.Step(1, false)
	if kindAt(t, sim, 4, 5) != matter.Sand {
		t.Fatal("sand should still fall after the generation counter wraps")
	}
	if sim.gen != 1 {
		t.Fatalf("expected generation 1 after wrap, got %d", sim.gen)
	}
}
