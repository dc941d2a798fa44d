package tree

import "math"

// Count is the number of segments Generate produces for the given split and
// iteration counts: 1 + s + s^2 + ... + s^(n-2), or zero for a single iteration.
// Counts too large for an int saturate at math.MaxInt.
func Count(splitCount, iterationCount int) int {
	if splitCount < 1 || iterationCount < 2 {
		return 0
	}
	if splitCount == 1 {
		return iterationCount - 1
	}

	total := 0
	levelSize := 1
	for level := 1; level < iterationCount; level++ {
		if total > math.MaxInt-levelSize {
			return math.MaxInt
		}
		total += levelSize

		if level+1 < iterationCount {
			if levelSize > math.MaxInt/splitCount {
				return math.MaxInt
			}
			levelSize *= splitCount
		}
	}

	return total
}

// LevelLength is the length of every segment at the given level. The trunk and
// the first branches share InitialLength; deeper levels shrink by LengthDecay.
func LevelLength(p Params, level int) float64 {
	if level <= 2 {
		return p.InitialLength
	}

	return p.InitialLength / math.Pow(p.LengthDecay, float64(level-2))
}
