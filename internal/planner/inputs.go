package planner

import "math"

// Stepper is a bounded integer +/- control (sets, reps, targets).
type Stepper struct {
	Min  int
	Max  int
	Step int
}

var DefaultStepper = Stepper{Min: 0, Max: 999, Step: 1}

func (s Stepper) CanIncrement(v int) bool { return v < s.Max }
func (s Stepper) CanDecrement(v int) bool { return v > s.Min }

// Increment adds one step, never going past Max. At or above Max it is a no-op.
func (s Stepper) Increment(v int) int {
	if !s.CanIncrement(v) {
		return v
	}
	return min(v+s.Step, s.Max)
}

// Decrement removes one step, never going below Min. At or below Min it is a no-op.
func (s Stepper) Decrement(v int) int {
	if !s.CanDecrement(v) {
		return v
	}
	return max(v-s.Step, s.Min)
}

func (s Stepper) Clamp(v int) int {
	return max(s.Min, min(v, s.Max))
}

// WeightSlider is a bounded weight control that snaps to Step.
type WeightSlider struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultWeightSlider is in kilograms.
var DefaultWeightSlider = WeightSlider{Min: 0, Max: 200, Step: 2.5}

// Quantize clamps v into [Min, Max] and snaps it to the nearest step.
// NaN and infinities are treated as out of range.
func (ws WeightSlider) Quantize(v float64) float64 {
	if math.IsNaN(v) {
		return ws.Min
	}
	v = math.Max(ws.Min, math.Min(v, ws.Max))
	if ws.Step <= 0 {
		return v
	}

	steps := math.Round((v - ws.Min) / ws.Step)
	q := ws.Min + steps*ws.Step
	return math.Max(ws.Min, math.Min(q, ws.Max))
}

func (ws WeightSlider) Increment(v float64) float64 {
	return ws.Quantize(ws.Quantize(v) + ws.Step)
}

func (ws WeightSlider) Decrement(v float64) float64 {
	return ws.Quantize(ws.Quantize(v) - ws.Step)
}

// FillPercentage is the position of v on the slider track, 0 to 100.
func (ws WeightSlider) FillPercentage(v float64) float64 {
	if ws.Max <= ws.Min {
		return 0
	}
	return (ws.Quantize(v) - ws.Min) / (ws.Max - ws.Min) * 100
}
