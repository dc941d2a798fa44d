package transforms

import (
	"github.com/gogpu/gg"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
)

// A Transform maps a point in tree space to a point on the canvas.
type Transform interface {
	Apply(geometry.XY) geometry.XY
}

// Matrix adapts a gg.Matrix to a Transform.
type Matrix gg.Matrix

func (m Matrix) Apply(xy geometry.XY) geometry.XY {
	p := gg.Matrix(m).TransformPoint(gg.Pt(xy.X, xy.Y))
	return geometry.XY{X: p.X, Y: p.Y}
}

// ApplyAll returns a transformed copy of segments.
func ApplyAll(t Transform, segments []geometry.Segment) []geometry.Segment {
	result := make([]geometry.Segment, len(segments))
	for i, s := range segments {
		result[i] = geometry.Segment{
			Start: t.Apply(s.Start),
			End:   t.Apply(s.End),
			Level: s.Level,
		}
	}

	return result
}

var (
	_ Transform = Matrix{}
	_ Transform = Linear{}
	_ Transform = &Viewport{}
)
