package tree

import (
	"errors"
	"fmt"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"math"
)

const (
	// Up is the StartAngle of a tree growing toward the top of the screen.
	Up = -90.0

	// MaxSegments is the largest tree Generate and Walk will produce.
	MaxSegments = 1 << 24
)

var ErrInvalidParams = errors.New("invalid tree parameters")

// Params fully determines a generated tree.
//
// Angles are in degrees, measured from the positive x-axis. Screen coordinates
// grow downward, so Up (-90) points toward the top of the canvas.
type Params struct {
	// Origin is the root of the trunk.
	Origin geometry.XY

	// InitialLength is the length of the trunk and of the first level of branches.
	InitialLength float64

	// StartAngle is the direction of the trunk.
	StartAngle float64

	// AngleSpread is the angle between the leftmost and rightmost children of a split.
	AngleSpread float64

	// SplitCount is the number of children at each split after the trunk.
	SplitCount int

	// IterationCount is the number of levels, counting the trunk. The final level
	// produces no segments, so an IterationCount of 1 yields an empty tree.
	IterationCount int

	// LengthDecay divides the branch length at each level after the first split.
	LengthDecay float64
}

// Validate reports the first parameter which would produce an undefined tree.
func (p Params) Validate() error {
	switch {
	case p.SplitCount < 1:
		return fmt.Errorf("%w: split count %d is less than 1", ErrInvalidParams, p.SplitCount)
	case p.IterationCount < 1:
		return fmt.Errorf("%w: iteration count %d is less than 1", ErrInvalidParams, p.IterationCount)
	case !(p.InitialLength > 0) || math.IsInf(p.InitialLength, 0):
		return fmt.Errorf("%w: initial length %v is not a positive number", ErrInvalidParams, p.InitialLength)
	case !(p.LengthDecay > 0) || math.IsInf(p.LengthDecay, 0):
		return fmt.Errorf("%w: length decay %v is not a positive number", ErrInvalidParams, p.LengthDecay)
	case !isFinite(p.StartAngle):
		return fmt.Errorf("%w: start angle %v is not finite", ErrInvalidParams, p.StartAngle)
	case !isFinite(p.AngleSpread):
		return fmt.Errorf("%w: angle spread %v is not finite", ErrInvalidParams, p.AngleSpread)
	case !p.Origin.IsFinite():
		return fmt.Errorf("%w: origin %v is not finite", ErrInvalidParams, p.Origin)
	case Count(p.SplitCount, p.IterationCount) > MaxSegments:
		return fmt.Errorf("%w: %d splits over %d iterations exceeds %d segments",
			ErrInvalidParams, p.SplitCount, p.IterationCount, MaxSegments)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Generate returns every segment of the tree described by p, parents before
// their children.
func Generate(p Params) ([]geometry.Segment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	result := make([]geometry.Segment, 0, Count(p.SplitCount, p.IterationCount))
	trunk(p, func(s geometry.Segment) {
		result = append(result, s)
	})

	return result, nil
}

// Walk calls fn with each segment of the tree in the same order as Generate,
// without collecting them.
func Walk(p Params, fn func(geometry.Segment)) error {
	if err := p.Validate(); err != nil {
		return err
	}

	trunk(p, fn)

	return nil
}

// trunk emits the single unsplit segment and hands off to the branches.
func trunk(p Params, fn func(geometry.Segment)) {
	if p.IterationCount == 1 {
		return
	}

	end := p.Origin.Polar(p.StartAngle, p.InitialLength)
	fn(geometry.Segment{Start: p.Origin, End: end, Level: 1})

	branch(p, end, p.StartAngle, p.InitialLength, 2, p.IterationCount-1, fn)
}

func branch(p Params, from geometry.XY, angle, length float64, level, remaining int, fn func(geometry.Segment)) {
	if remaining == 1 {
		return
	}

	for _, childAngle := range Spread(angle, p.AngleSpread, p.SplitCount) {
		end := from.Polar(childAngle, length)
		fn(geometry.Segment{Start: from, End: end, Level: level})

		branch(p, end, childAngle, length/p.LengthDecay, level+1, remaining-1, fn)
	}
}
