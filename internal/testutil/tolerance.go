// Package testutil holds assertions shared by the curve and filter tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAscending fails t unless data is strictly increasing.
func RequireAscending(t testing.TB, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] <= data[i-1] {
			t.Fatalf("index %d: %v does not exceed %v", i, data[i], data[i-1])
		}
	}
}

// RequireMaxStep fails t if two neighbouring elements differ by more than
// maxStep. A sampled curve that passes has no jumps at the sweep resolution.
func RequireMaxStep(t testing.TB, data []float64, maxStep float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if d := math.Abs(data[i] - data[i-1]); d > maxStep {
			t.Fatalf("index %d: step %v exceeds %v (%v -> %v)", i, d, maxStep, data[i-1], data[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Impulse returns a unit impulse of the given length at position 0.
func Impulse(length int) []float64 {
	out := make([]float64, length)
	if length > 0 {
		out[0] = 1
	}
	return out
}
