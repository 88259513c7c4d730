package ui

import (
	"image"
	"math"
	"strconv"

	"mad-sand/internal/core"
)

// Provider supplies the parameters the HUD shows and adjusts. Providers may
// also implement core.IntParameterSetter and core.FloatParameterSetter.
type Provider interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	statusLines    = 7
	controlsTop    = panelPadding + headerBaseline + 14 + statusLines*statusSpacing
)

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	if width <= 0 {
		return states
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
	return states
}

// refresh copies the provider's current value for the control into state.
func (s *hudControlState) refresh(snapshot core.ParameterSnapshot) {
	param, ok := snapshot.Lookup(s.control.Key)
	s.hasValue = false
	s.value = "--"
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// target returns the value one step in direction, clamped to the control
// bounds, and whether it differs from the current value.
func (s *hudControlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		next := math.Round(s.control.Clamp(float64(s.intValue + direction*step)))
		return next, int(next) != s.intValue
	case core.ParamTypeFloat:
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		next := s.control.Clamp(s.floatValue + float64(direction)*step)
		return next, math.Abs(next-s.floatValue) >= 1e-9
	}
	return 0, false
}

// apply pushes the stepped value to the matching setter.
func (s *hudControlState) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	next, ok := s.target(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if ints == nil || !ints.SetIntParameter(s.control.Key, int(next)) {
			return false
		}
		s.intValue = int(next)
		s.floatValue = next
		s.value = strconv.Itoa(s.intValue)
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(s.control.Key, next) {
			return false
		}
		s.floatValue = next
		s.value = formatFloat(s.control, next)
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
