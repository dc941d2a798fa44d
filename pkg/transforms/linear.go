package transforms

import "github.com/willbeason/fractal-canopy/pkg/geometry"

// Linear uniformly scales a point and then shifts it.
type Linear struct {
	Scale  float64
	Offset geometry.XY
}

func (l Linear) Apply(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: xy.X*l.Scale + l.Offset.X,
		Y: xy.Y*l.Scale + l.Offset.Y,
	}
}

// Fit returns the Linear which centers the box [lo, hi] inside a width by height
// canvas, as large as possible while leaving margin pixels on every side.
func Fit(lo, hi geometry.XY, width, height int, margin float64) Linear {
	availableW := float64(width) - 2*margin
	availableH := float64(height) - 2*margin
	boxW := hi.X - lo.X
	boxH := hi.Y - lo.Y

	scale := 1.0
	switch {
	case boxW > 0 && boxH > 0:
		scale = min(availableW/boxW, availableH/boxH)
	case boxW > 0:
		scale = availableW / boxW
	case boxH > 0:
		scale = availableH / boxH
	}

	center := geometry.XY{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}

	return Linear{
		Scale: scale,
		Offset: geometry.XY{
			X: float64(width)/2 - center.X*scale,
			Y: float64(height)/2 - center.Y*scale,
		},
	}
}
