package controls

import "math"

const (
	TrunkLength = "trunk-length"
	Splits      = "splits"
	LengthRatio = "length-ratio"
	Angle       = "angle"
	Iterations  = "iterations"
	AngleOffset = "angle-offset"
	TrunkColor  = "trunk-color"
	LeafColor   = "leaf-color"
)

// A Spec describes one slider: its range, the step values snap to, and where it
// starts.
type Spec struct {
	Name       string  `yaml:"name"`
	Label      string  `yaml:"label"`
	From       float64 `yaml:"from"`
	To         float64 `yaml:"to"`
	Resolution float64 `yaml:"resolution"`
	Default    float64 `yaml:"default"`
}

// Defaults is the slider panel of the game, in display order.
func Defaults() []Spec {
	return []Spec{
		{Name: TrunkLength, Label: "Trunk's Length", From: 10, To: 200, Resolution: 1, Default: 120},
		{Name: Splits, Label: "Branch Splits", From: 2, To: 7, Resolution: 1, Default: 2},
		{Name: LengthRatio, Label: "Length Ratio", From: 0.2, To: 1.2, Resolution: 0.01, Default: 0.7},
		{Name: Angle, Label: "Angle Between Branches", From: 0, To: 180, Resolution: 1, Default: 40},
		{Name: Iterations, Label: "Iterations", From: 1, To: 9, Resolution: 1, Default: 6},
		{Name: AngleOffset, Label: "Angle Offset", From: -45, To: 45, Resolution: 1, Default: 0},
		{Name: TrunkColor, Label: "Trunk's Color", From: 0, To: 360, Resolution: 1, Default: 30},
		{Name: LeafColor, Label: "Leaf Color", From: 0, To: 360, Resolution: 1, Default: 120},
	}
}

// Snap clamps v to the slider's range and rounds it to the nearest step.
func (s Spec) Snap(v float64) float64 {
	lo, hi := math.Min(s.From, s.To), math.Max(s.From, s.To)
	v = math.Max(lo, math.Min(hi, v))

	if s.Resolution <= 0 {
		return v
	}

	steps := math.Round((v - lo) / s.Resolution)
	snapped := math.Min(hi, lo+steps*s.Resolution)

	// Trim representation noise such as 0.7000000000000001.
	return math.Round(snapped*1e9) / 1e9
}

// Steps is the number of distinct values the slider can take.
func (s Spec) Steps() int {
	if s.Resolution <= 0 {
		return 1
	}

	return int(math.Floor(math.Abs(s.To-s.From)/s.Resolution+1e-9)) + 1
}

// Equal is whether a and b land on the same slider step.
func (s Spec) Equal(a, b float64) bool {
	if s.Resolution <= 0 {
		return a == b
	}

	return math.Abs(a-b) < s.Resolution/2
}
