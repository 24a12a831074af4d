// Package core holds small numeric helpers shared by the crossover packages.
package core

import "math"

// IsFinitePositive reports whether x is a positive number that is neither
// NaN nor infinite.
func IsFinitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
