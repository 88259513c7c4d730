// Package sand implements a falling-sand cellular automaton: a double-buffered
// grid of packed matter cells advanced by local gravity rules, painted by
// brush strokes and read back by point queries.
//
// A Simulator is not safe for concurrent use. Paint, query and step calls must
// be serialised by the caller; Step parallelises internally.
package sand

import (
	"image"
	"log/slog"
	"runtime"

	"mad-sand/internal/core"
	"mad-sand/internal/grid"
	"mad-sand/internal/matter"
)

const (
	encoderStream  uint64 = 0
	scenarioStream uint64 = 1
	bandStreamBase uint64 = 2
)

// Simulator owns the grid and the machinery that advances it.
type Simulator struct {
	cfg     Config
	grid    *grid.Grid
	enc     matter.Encoder
	bands   []band
	workers int

	// stamp[i] == gen marks cells that already moved in the current sub-step.
	stamp []uint32
	gen   uint32

	lastMoves int
	stepped   bool
	ticks     uint64

	log *slog.Logger
}

// New returns a simulation of the provided dimensions using defaults.
func New(w, h int) *Simulator {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from the provided options. The
// grid starts empty; call Reset to apply the configured scenario.
func NewWithConfig(cfg Config) *Simulator {
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultConfig().TileSize
	}
	palette := matter.DefaultPalette().WithBackground(cfg.Background)
	g := grid.New(cfg.Width, cfg.Height, palette.EmptyCell())
	cfg.Width, cfg.Height = g.W, g.H

	s := &Simulator{
		cfg:   cfg,
		grid:  g,
		enc:   matter.Encoder{Palette: palette, Jitter: cfg.Jitter},
		stamp: make([]uint32, g.W*g.H),
		log:   core.NopLogger(),
	}
	s.setWorkers(cfg.Workers)
	s.buildBands()
	s.seedStreams(cfg.Seed)
	return s
}

// SetLogger installs l for diagnostics. Nil restores the silent default.
func (s *Simulator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = core.NopLogger()
	}
	s.log = l.With("sim", s.Name())
	s.log.Info("simulator ready",
		"w", s.grid.W, "h", s.grid.H,
		"workers", s.workers, "bands", len(s.bands), "tile", s.cfg.TileSize)
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "sand" }

// Size returns the grid dimensions.
func (s *Simulator) Size() core.Size { return s.grid.Size() }

// Config returns the active configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Cells exposes the current buffer. Callers must treat it as read-only; it is
// replaced by the next Step.
func (s *Simulator) Cells() []matter.Cell { return s.grid.Cells() }

// Image returns a read-only image view of the current buffer, top row first.
func (s *Simulator) Image() image.Image { return s.grid.Image() }

// Palette returns the colors used for newly placed matter.
func (s *Simulator) Palette() matter.Palette { return s.enc.Palette }

// Workers reports how many goroutines a phase may use.
func (s *Simulator) Workers() int { return s.workers }

// LastMoves reports how many cells moved during the most recent Step.
func (s *Simulator) LastMoves() int { return s.lastMoves }

// Settled reports whether the most recent Step moved nothing.
func (s *Simulator) Settled() bool { return s.stepped && s.lastMoves == 0 }

// Ticks returns the number of sub-steps applied since the last Reset.
func (s *Simulator) Ticks() uint64 { return s.ticks }

// Reset clears the grid and applies the configured scenario. A zero seed
// reuses the configured seed.
func (s *Simulator) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.seedStreams(effective)
	s.grid.Fill(s.enc.Palette.EmptyCell())
	clear(s.stamp)
	s.gen = 0
	s.ticks = 0
	s.lastMoves = 0
	s.stepped = false

	name := s.cfg.Scenario
	sc, ok := lookupScenario(name)
	if !ok {
		s.log.Warn("unknown scenario, leaving grid empty", "scenario", name)
		return
	}
	sc(s, core.NewStream(effective, scenarioStream))
	s.log.Info("reset", "seed", effective, "scenario", name)
}

func (s *Simulator) setWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	s.workers = n
}

func (s *Simulator) seedStreams(seed int64) {
	s.enc.Rand = s.cfg.source(seed, encoderStream)
	for i := range s.bands {
		s.bands[i].rnd = s.cfg.source(seed, bandStreamBase+uint64(i))
	}
}
