package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/transforms"
)

// Canvas is an off-screen drawing surface holding the currently displayed tree.
type Canvas struct {
	dc *gg.Context

	// View is the pan and zoom applied at every Redraw.
	View *transforms.Viewport

	Background gg.RGBA
	Style      Style

	// Squares is how many demo squares are drawn beneath the tree.
	Squares    int
	SquareSize float64
	SquareFill gg.RGBA

	segments []geometry.Segment
	levels   int
}

func NewCanvas(width, height int, background gg.RGBA) *Canvas {
	return &Canvas{
		dc:         gg.NewContext(width, height),
		View:       transforms.NewViewport(),
		Background: background,
		Style:      DefaultStyle(),
		SquareSize: 50,
		SquareFill: gg.Blue,
	}
}

func (c *Canvas) Width() int {
	return c.dc.Width()
}

func (c *Canvas) Height() int {
	return c.dc.Height()
}

// Replace discards the previously drawn tree in favour of segments.
func (c *Canvas) Replace(segments []geometry.Segment, levels int) {
	c.segments = segments
	c.levels = levels
}

// Segments is the tree currently on the canvas.
func (c *Canvas) Segments() []geometry.Segment {
	return c.segments
}

// Redraw clears the canvas and draws everything through the current view.
func (c *Canvas) Redraw() error {
	c.dc.Identity()
	c.dc.ClearWithColor(c.Background)
	c.dc.SetTransform(c.View.Matrix())

	if c.Squares > 0 {
		err := Squares(c.dc, c.Squares, c.SquareSize, c.SquareFill.Color())
		if err != nil {
			return err
		}
	}

	return Tree(c.dc, c.segments, c.levels, c.Style)
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
