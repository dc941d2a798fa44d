package tree

// Spread returns n angles evenly spaced across [angle-spread/2, angle+spread/2],
// including both ends. A single child continues straight along angle.
func Spread(angle, spread float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{angle}
	}

	left := angle - spread/2.0
	right := angle + spread/2.0
	step := (right - left) / float64(n-1)

	result := make([]float64, n)
	for i := range result {
		result[i] = left + step*float64(i)
	}
	// Avoid accumulated rounding on the far edge.
	result[n-1] = right

	return result
}
