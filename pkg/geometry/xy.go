package geometry

import "math"

// XY is a point in screen space. Y grows downward.
type XY struct {
	X, Y float64
}

func (xy XY) Add(other XY) XY {
	return XY{X: xy.X + other.X, Y: xy.Y + other.Y}
}

func (xy XY) Sub(other XY) XY {
	return XY{X: xy.X - other.X, Y: xy.Y - other.Y}
}

// Polar returns the point length away from xy in the direction angle, measured
// in degrees from the positive x-axis. Since Y grows downward, -90 points up.
func (xy XY) Polar(angle, length float64) XY {
	rad := angle * math.Pi / 180.0
	return XY{
		X: xy.X + math.Cos(rad)*length,
		Y: xy.Y + math.Sin(rad)*length,
	}
}

// IsFinite is whether neither coordinate is NaN or infinite.
func (xy XY) IsFinite() bool {
	return !math.IsNaN(xy.X) && !math.IsInf(xy.X, 0) &&
		!math.IsNaN(xy.Y) && !math.IsInf(xy.Y, 0)
}
