//go:build fastmath

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNearestY_FastLogMatchesExact checks that the approximate logarithm
// picks the same samples as math.Log for every preferred column over a
// 500-point 10 Hz to 100 kHz grid. Columns sitting on the geometric mean of
// two samples are skipped since either neighbour is correct there.
func TestNearestY_FastLogMatchesExact(t *testing.T) {
	const n = 500
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = math.Pow(10, 1+4*float64(i)/(n-1))
		ys[i] = float64(i)
	}
	s := Series{X: xs, Y: ys}

	for _, col := range thirdOctaveHz {
		got, ok := nearestY(s, col)
		assert.True(t, ok)

		want, runnerUp := 0, 1
		dist := func(i int) float64 { return math.Abs(math.Log(xs[i] / col)) }
		for i := 1; i < n; i++ {
			switch {
			case dist(i) < dist(want):
				want, runnerUp = i, want
			case i != want && dist(i) < dist(runnerUp):
				runnerUp = i
			}
		}
		if dist(runnerUp)-dist(want) < 1e-6 {
			continue
		}
		assert.Equal(t, float64(want), got, "column %v Hz", col)
	}
}
