package render

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
)

// Surface accepts the drawing commands needed to show a tree. *gg.Context
// satisfies it.
type Surface interface {
	SetColor(color.Color)
	SetLineWidth(float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)
	Stroke() error
	Fill() error
}

var _ Surface = (*gg.Context)(nil)

// Style controls how segments are coloured and sized by their level.
type Style struct {
	// TrunkHue and LeafHue are HSL hues in degrees. Levels between the trunk and
	// the outermost branches interpolate between them.
	TrunkHue, LeafHue float64

	Saturation, Lightness float64

	// TrunkWidth is the line width of the trunk. Each level is thinner by WidthDecay,
	// but never thinner than MinWidth.
	TrunkWidth, WidthDecay, MinWidth float64
}

func DefaultStyle() Style {
	return Style{
		TrunkHue:   30,
		LeafHue:    120,
		Saturation: 0.6,
		Lightness:  0.35,
		TrunkWidth: 6,
		WidthDecay: 0.75,
		MinWidth:   1,
	}
}

// Color is the colour of segments at level out of levels total.
func (st Style) Color(level, levels int) gg.RGBA {
	t := 0.0
	if levels > 1 {
		t = float64(level-1) / float64(levels-1)
	}
	t = math.Max(0, math.Min(1, t))

	hue := st.TrunkHue + (st.LeafHue-st.TrunkHue)*t
	return gg.HSL(hue, st.Saturation, st.Lightness)
}

func (st Style) Width(level int) float64 {
	w := st.TrunkWidth * math.Pow(st.WidthDecay, float64(level-1))
	return math.Max(st.MinWidth, w)
}

// Tree draws segments with one stroke per level, trunk first. levels is the
// deepest level expected, which anchors the leaf colour.
func Tree(s Surface, segments []geometry.Segment, levels int, st Style) error {
	byLevel := make(map[int][]geometry.Segment)
	deepest := 0
	for _, seg := range segments {
		byLevel[seg.Level] = append(byLevel[seg.Level], seg)
		deepest = max(deepest, seg.Level)
	}

	for level := 0; level <= deepest; level++ {
		group := byLevel[level]
		if len(group) == 0 {
			continue
		}

		s.SetColor(st.Color(level, levels).Color())
		s.SetLineWidth(st.Width(level))
		for _, seg := range group {
			s.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		}

		if err := s.Stroke(); err != nil {
			return err
		}
	}

	return nil
}

// Squares fills n squares of the given size along the diagonal from the top left.
func Squares(s Surface, n int, size float64, c color.Color) error {
	s.SetColor(c)
	for i := 0; i < n; i++ {
		x := float64(i) * size
		y := float64(i) * size
		s.DrawRectangle(x, y, size, size)

		if err := s.Fill(); err != nil {
			return err
		}
	}

	return nil
}
