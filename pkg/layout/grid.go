package layout

// Padding is the spacing of the slider frame and of each slider within it.
type Padding struct {
	Frame          int `yaml:"frame"`
	SliderX        int `yaml:"slider_x"`
	SliderY        int `yaml:"slider_y"`
	MinSliderWidth int `yaml:"min_slider_width"`
}

// DefaultPadding matches a 20px frame margin and sliders at least 150px wide.
func DefaultPadding() Padding {
	return Padding{
		Frame:          20,
		SliderX:        0,
		SliderY:        7,
		MinSliderWidth: 150,
	}
}

// Grid tracks the slider arrangement as the window is resized.
type Grid struct {
	Sliders int
	Padding Padding

	width   int
	columns int
}

func NewGrid(sliders int, padding Padding, width int) *Grid {
	g := &Grid{Sliders: sliders, Padding: padding}
	g.Resize(width)

	return g
}

// Resize updates the grid for a new window width and reports whether the
// sliders must be repopulated. A width change which keeps the same column count
// needs no work.
func (g *Grid) Resize(width int) bool {
	if width == g.width && g.columns != 0 {
		return false
	}
	g.width = width

	maxSlots := MaxColumns(width, g.Padding.Frame, g.Padding.MinSliderWidth, g.Padding.SliderX)
	columns := OptimalColumns(g.Sliders, maxSlots)
	if columns == g.columns {
		return false
	}

	g.columns = columns

	return true
}

func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Cells() []Cell {
	return Cells(g.Sliders, g.columns)
}

// SliderWidth is the width each slider gets when the frame is shared evenly.
func (g *Grid) SliderWidth() int {
	if g.columns < 1 {
		return 0
	}

	working := g.width - 2*g.Padding.Frame
	w := working/g.columns - 2*g.Padding.SliderX
	if w < 0 {
		return 0
	}

	return w
}
