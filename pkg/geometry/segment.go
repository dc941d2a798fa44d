package geometry

import "math"

// A Segment is a single line of a rendered tree.
type Segment struct {
	Start, End XY

	// Level is the depth which produced the Segment. The trunk is level 1.
	Level int
}

func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Bounds returns the corners of the smallest axis-aligned box containing every
// segment. Both corners are the zero point if segments is empty.
func Bounds(segments []Segment) (XY, XY) {
	if len(segments) == 0 {
		return XY{}, XY{}
	}

	lo := segments[0].Start
	hi := segments[0].Start
	for _, s := range segments {
		for _, p := range [2]XY{s.Start, s.End} {
			lo.X = math.Min(lo.X, p.X)
			lo.Y = math.Min(lo.Y, p.Y)
			hi.X = math.Max(hi.X, p.X)
			hi.Y = math.Max(hi.Y, p.Y)
		}
	}

	return lo, hi
}
