package game

import (
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/tree"
)

func generate(p *controls.Panel, origin geometry.XY) ([]geometry.Segment, error) {
	return tree.Generate(p.Params(origin))
}

// Levels is the deepest level a panel's tree reaches, for colouring.
func Levels(p *controls.Panel) int {
	levels := p.Params(geometry.XY{}).IterationCount - 1
	if levels < 1 {
		return 1
	}

	return levels
}
