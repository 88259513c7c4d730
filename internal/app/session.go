package app

import (
	"fmt"
	"log/slog"
	"math"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
	"mad-sand/internal/sims/sand"
)

const (
	maxBrushRadius = 64
	maxSubSteps    = 64
)

// Brush is the paint tool the user currently holds.
type Brush struct {
	Radius float64
	Kind   matter.Kind
}

// Session holds the caller-side settings that drive a simulation: the brush,
// the pause flag and the sub-steps per tick. It translates user intent into
// explicit Simulator calls.
type Session struct {
	sim *sand.Simulator
	log *slog.Logger

	Brush    Brush
	SubSteps int
	Paused   bool

	// SimTimer covers Advance; RenderTimer is driven by the caller's draw.
	SimTimer    *core.PerfTimer
	RenderTimer *core.PerfTimer

	tickOnce bool
	prev     *core.Point
	seed     int64
}

// NewSession wraps sim with the settings from cfg.
func NewSession(sim *sand.Simulator, cfg *Config, log *slog.Logger) *Session {
	if log == nil {
		log = core.NopLogger()
	}
	kind, err := matter.ParseKind(cfg.Kind)
	if err != nil {
		kind = matter.Sand
	}
	return &Session{
		sim:      sim,
		log:      log,
		Brush:    Brush{Radius: clampRadius(cfg.Radius), Kind: kind},
		SubSteps: max(cfg.SubSteps, 0),
		seed:     cfg.Seed,

		SimTimer:    core.NewPerfTimer(),
		RenderTimer: core.NewPerfTimer(),
	}
}

// Sim returns the wrapped simulator.
func (s *Session) Sim() *sand.Simulator { return s.sim }

// Paint extends the current stroke to cur. Erase paints Empty instead of the
// brush kind.
func (s *Session) Paint(cur core.Point, erase bool) {
	kind := s.Brush.Kind
	if erase {
		kind = matter.Empty
	}
	s.sim.DrawMatter(core.Stroke(s.prev, cur), s.Brush.Radius, kind)
	p := cur
	s.prev = &p
}

// EndStroke forgets the previous cursor position so the next Paint starts a
// new stroke.
func (s *Session) EndStroke() { s.prev = nil }

// Advance runs the simulation for the given number of fixed ticks. A pending
// single step runs even while paused.
func (s *Session) Advance(ticks int) {
	if ticks <= 0 {
		return
	}
	s.SimTimer.Start()
	defer s.SimTimer.Stop()
	for i := 0; i < ticks; i++ {
		if s.tickOnce {
			s.sim.Step(max(s.SubSteps, 1), false)
			s.tickOnce = false
			continue
		}
		s.sim.Step(s.SubSteps, s.Paused)
	}
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
	s.log.Info("pause toggled", "paused", s.Paused)
}

// StepOnce requests a single tick on the next Advance, even while paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// SelectKind changes the brush matter.
func (s *Session) SelectKind(k matter.Kind) {
	if !k.Valid() {
		return
	}
	s.Brush.Kind = k
}

// AdjustRadius grows or shrinks the brush by delta.
func (s *Session) AdjustRadius(delta float64) {
	s.Brush.Radius = clampRadius(s.Brush.Radius + delta)
}

// AdjustSubSteps changes the sub-steps per tick by delta.
func (s *Session) AdjustSubSteps(delta int) {
	s.SubSteps = min(max(s.SubSteps+delta, 0), maxSubSteps)
}

// Reset rebuilds the grid. A zero seed replays the current seed.
func (s *Session) Reset(seed int64) {
	if seed != 0 {
		s.seed = seed
	}
	s.sim.Reset(s.seed)
	s.tickOnce = false
	s.prev = nil
}

// Status returns the lines shown above the HUD controls.
func (s *Session) Status() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	census := s.sim.Census()
	return []string{
		fmt.Sprintf("Matter: %s  r=%.1f", s.Brush.Kind, s.Brush.Radius),
		fmt.Sprintf("State: %s  x%d", state, s.SubSteps),
		fmt.Sprintf("Sand: %d", census.Of(matter.Sand)),
		fmt.Sprintf("Wood: %d", census.Of(matter.Wood)),
		fmt.Sprintf("Moves: %d", s.sim.LastMoves()),
		fmt.Sprintf("Ticks: %d", s.sim.Ticks()),
		fmt.Sprintf("Sim: %.2fms  Render: %.2fms", s.SimTimer.Millis(), s.RenderTimer.Millis()),
	}
}

func clampRadius(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	return math.Min(r, maxBrushRadius)
}
