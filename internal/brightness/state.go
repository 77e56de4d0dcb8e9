package brightness

import (
	"errors"
	"math"
)

const (
	DefaultValue = 0.5
	DefaultStep  = 0.05

	// MinStep is the smallest step a State accepts.
	MinStep = 1e-9

	// results within noise of the 1e-9 grid are snapped onto it
	snap  = 1e9
	noise = 1e-12
)

var ErrInvalidStep = errors.New("brightness: step must be in [1e-9, 1]")

// State holds the current brightness and the step used by the
// increase/decrease controls. The value always stays in [0, 1].
type State struct {
	value float64
	step  float64
}

func NewState(value, step float64) (*State, error) {
	if math.IsNaN(step) || step < MinStep || step > 1 {
		return nil, ErrInvalidStep
	}
	if math.IsNaN(value) {
		value = DefaultValue
	}
	return &State{value: Clamp(value), step: step}, nil
}

func (s *State) Value() float64 { return s.value }
func (s *State) Step() float64  { return s.step }

// Increment raises the value by one step, saturating at 1.
func (s *State) Increment() {
	s.value = Clamp(round(s.value + s.step))
}

// Decrement lowers the value by one step, saturating at 0.
func (s *State) Decrement() {
	s.value = Clamp(round(s.value - s.step))
}

// Clamp constrains v to [0, 1].
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func round(v float64) float64 {
	r := math.Round(v*snap) / snap
	if math.Abs(r-v) < noise {
		return r
	}
	return v
}
