package app

import (
	"strconv"

	"mad-sand/internal/core"
)

// Parameters merges the brush settings with the simulation's own tunables.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.sim.Parameters()
	brush := core.ParameterGroup{
		Name: "Brush",
		Params: []core.Parameter{
			{Key: "sub_steps", Label: "Sub-steps", Type: core.ParamTypeInt, Value: strconv.Itoa(s.SubSteps)},
			{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.Brush.Radius, 'f', -1, 64)},
			{Key: "matter", Label: "Matter", Type: core.ParamTypeString, Value: s.Brush.Kind.String()},
		},
	}
	snap.Groups = append([]core.ParameterGroup{brush}, snap.Groups...)
	return snap
}

// ParameterControls lists the brush controls followed by the simulation's.
func (s *Session) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "sub_steps", Label: "Sub-steps", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxSubSteps, HasMin: true, HasMax: true},
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: maxBrushRadius, HasMin: true, HasMax: true},
	}
	return append(controls, s.sim.ParameterControls()...)
}

// SetIntParameter routes integer updates to the session or the simulation.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key == "sub_steps" {
		s.SubSteps = 0
		s.AdjustSubSteps(value)
		return true
	}
	return s.sim.SetIntParameter(key, value)
}

// SetFloatParameter routes float updates to the session or the simulation.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key == "brush_radius" {
		s.Brush.Radius = clampRadius(value)
		return true
	}
	return s.sim.SetFloatParameter(key, value)
}
