// Package builder provides validation helpers to enforce parameter
// contracts in generators.
package builder

// validateSize ensures that n ≥ MinSize.
// Complexity: O(1).
func validateSize(method string, n int) error {
	if n < MinSize {
		return builderErrorf(method, ErrBadSize, "n must be ≥ %d, got %d", MinSize, n)
	}

	return nil
}

// validateGrid ensures that the grid [min, max] with spacing step holds at
// least need points.
// Complexity: O(1).
func validateGrid(method, axis string, min, max, step float64, need int) error {
	if have := gridPoints(min, max, step); have < need {
		return builderErrorf(method, ErrBadRange,
			"%s range [%g,%g] step %g holds %d values, need %d", axis, min, max, step, have, need)
	}

	return nil
}
