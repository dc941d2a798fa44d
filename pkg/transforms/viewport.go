package transforms

import (
	"github.com/gogpu/gg"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
)

const (
	// ZoomIn and ZoomOut are the scale factors of a single mouse wheel step.
	ZoomIn  = 1.1
	ZoomOut = 0.9
)

// Viewport is the pan and zoom state of a canvas.
//
// Panning follows a mark-and-drag model: StartPan records where the drag began
// and every DragTo moves the view relative to that mark, not to the previous drag.
type Viewport struct {
	m gg.Matrix

	mark     geometry.XY
	markView gg.Matrix
}

func NewViewport() *Viewport {
	return &Viewport{m: gg.Identity(), markView: gg.Identity()}
}

// StartPan marks the screen point a drag begins at.
func (v *Viewport) StartPan(x, y float64) {
	v.mark = geometry.XY{X: x, Y: y}
	v.markView = v.m
}

// DragTo moves the view so the content under the mark follows the pointer.
func (v *Viewport) DragTo(x, y float64) {
	v.m = gg.Translate(x-v.mark.X, y-v.mark.Y).Multiply(v.markView)
}

// Pan shifts the view by a screen offset.
func (v *Viewport) Pan(dx, dy float64) {
	v.m = gg.Translate(dx, dy).Multiply(v.m)
}

// Zoom scales the view about the screen point (x, y). A positive delta zooms in
// one step, anything else zooms out one step.
func (v *Viewport) Zoom(x, y, delta float64) {
	factor := ZoomOut
	if delta > 0 {
		factor = ZoomIn
	}

	v.ZoomBy(x, y, factor)
}

// ZoomBy scales the view by factor about the screen point (x, y).
func (v *Viewport) ZoomBy(x, y, factor float64) {
	about := gg.Translate(x, y).Multiply(gg.Scale(factor, factor)).Multiply(gg.Translate(-x, -y))
	v.m = about.Multiply(v.m)
}

// Reset returns to the identity view.
func (v *Viewport) Reset() {
	v.m = gg.Identity()
	v.markView = v.m
}

// Matrix is the current view transform, suitable for gg.Context.SetTransform.
func (v *Viewport) Matrix() gg.Matrix {
	return v.m
}

func (v *Viewport) Apply(xy geometry.XY) geometry.XY {
	return Matrix(v.m).Apply(xy)
}

// ToCanvas maps a screen point back to canvas coordinates.
func (v *Viewport) ToCanvas(x, y float64) geometry.XY {
	return Matrix(v.m.Invert()).Apply(geometry.XY{X: x, Y: y})
}
