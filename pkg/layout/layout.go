// Package layout arranges the slider panel into a grid which fills the window
// width without leaving a nearly empty last row.
package layout

// MaxColumns is how many sliders of at least minSliderWidth fit side by side in a
// frame of frameWidth, after framePad on the left and right of the frame and
// sliderPad on each side of every slider.
func MaxColumns(frameWidth, framePad, minSliderWidth, sliderPad int) int {
	working := frameWidth - 2*framePad
	each := minSliderWidth + 2*sliderPad
	if working <= 0 || each <= 0 {
		return 0
	}

	return working / each
}

// OptimalColumns chooses a column count for n sliders given at most maxSlots per
// row. Rather than leaving a mostly empty last row, sliders are pulled out of the
// full rows until the rows are as even as possible.
func OptimalColumns(n, maxSlots int) int {
	switch {
	case maxSlots <= 0:
		return 1
	case n <= maxSlots:
		return n
	case n%maxSlots == 0:
		return maxSlots
	}

	fullRows := n / maxSlots
	inLast := n % maxSlots
	emptyInLast := maxSlots - inLast

	columns := maxSlots
	for emptyInLast-1 >= fullRows {
		columns--
		inLast += fullRows
		emptyInLast = columns - inLast
	}

	return columns
}

// A Cell is a position in the grid.
type Cell struct {
	Row, Column int
}

// Cells places n sliders left to right, then top to bottom.
func Cells(n, columns int) []Cell {
	if columns < 1 {
		columns = 1
	}

	result := make([]Cell, n)
	for i := range result {
		result[i] = Cell{Row: i / columns, Column: i % columns}
	}

	return result
}

// Rows is the number of rows n sliders occupy.
func Rows(n, columns int) int {
	if n <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}

	return (n + columns - 1) / columns
}
