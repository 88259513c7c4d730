package sand

import (
	"strconv"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
)

// Parameters reports the simulation's current tunables for the HUD.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	census := s.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.W),
				intParam("h", "Height", s.grid.H),
				int64Param("seed", "Seed", s.cfg.Seed),
				stringParam("scenario", "Scenario", s.cfg.Scenario),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				intParam("workers", "Workers", s.workers),
				intParam("tile", "Tile rows", s.cfg.TileSize),
				floatParam("jitter", "Color jitter", s.enc.Jitter),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("sand", "Sand", census.Of(matter.Sand)),
				intParam("wood", "Wood", census.Of(matter.Wood)),
				intParam("moves", "Last moves", s.lastMoves),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Simulator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 256, HasMin: true, HasMax: true},
		{Key: "jitter", Label: "Color jitter", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable, clamping to the control bounds.
func (s *Simulator) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		n := int(controlFor(s, key).Clamp(float64(value)))
		s.setWorkers(n)
		s.cfg.Workers = n
		s.log.Info("workers changed", "workers", n)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable, clamping to the control
// bounds.
func (s *Simulator) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "jitter":
		v := controlFor(s, key).Clamp(value)
		s.enc.Jitter = v
		s.cfg.Jitter = v
		return true
	}
	return false
}

func controlFor(s *Simulator, key string) core.ParameterControl {
	for _, c := range s.ParameterControls() {
		if c.Key == key {
			return c
		}
	}
	return core.ParameterControl{Key: key}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
