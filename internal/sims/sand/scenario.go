package sand

import (
	"errors"
	"math"
	"sort"

	"github.com/aquilax/go-perlin"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// Scenario lays out the initial matter after Reset has cleared the grid.
type Scenario func(s *Simulator, rng *core.RNG)

const (
	ScenarioEmpty  = "empty"
	ScenarioDunes  = "dunes"
	ScenarioFunnel = "funnel"
)

// ErrUnknownScenario reports a scenario name that was never registered.
var ErrUnknownScenario = errors.New("unknown scenario")

var scenarios = map[string]Scenario{}

// RegisterScenario adds a scenario under the provided name.
func RegisterScenario(name string, sc Scenario) {
	if name == "" || sc == nil {
		return
	}
	scenarios[name] = sc
}

// Scenarios lists the registered scenario names in sorted order.
func Scenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupScenario(name string) (Scenario, bool) {
	sc, ok := scenarios[name]
	return sc, ok
}

// dunes builds rolling wood terrain from 1D Perlin noise and drops a loose band
// of sand above it.
func dunes(s *Simulator, rng *core.RNG) {
	w, h := s.grid.W, s.grid.H
	noise := perlin.NewPerlin(2, 2, 3, rng.Source().Int64())
	base := float64(h) * 0.2
	amp := float64(h) * 0.12
	for x := 0; x < w; x++ {
		n := noise.Noise1D(float64(x) / float64(w) * 4)
		top := int(math.Round(base + amp*n))
		s.Fill(x, 0, x, top, matter.Wood)
	}

	y0 := int(float64(h) * 0.7)
	y1 := int(float64(h) * 0.85)
	for y := y0; y <= y1 && y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < 0.5 {
				s.grid.Set(x, y, s.enc.Cell(matter.Sand))
			}
		}
	}
}

// funnel draws a wood V with a narrow gap and a block of sand resting in it.
func funnel(s *Simulator, _ *core.RNG) {
	w, h := s.grid.W, s.grid.H
	cx := w / 2
	gap := max(w/64, 1)
	bottom := h / 3
	top := h * 2 / 3
	span := top - bottom
	left := core.Line(core.Pt(cx-gap-1, bottom), core.Pt(cx-gap-1-span, top))
	right := core.Line(core.Pt(cx+gap+1, bottom), core.Pt(cx+gap+1+span, top))
	s.DrawMatter(left, 1, matter.Wood)
	s.DrawMatter(right, 1, matter.Wood)

	fill := span / 2
	s.Fill(cx-fill/2, top+2, cx+fill/2, min(top+2+fill/2, h-1), matter.Sand)
}

func init() {
	RegisterScenario(ScenarioEmpty, func(*Simulator, *core.RNG) {})
	RegisterScenario(ScenarioDunes, dunes)
	RegisterScenario(ScenarioFunnel, funnel)
}
