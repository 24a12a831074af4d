//go:build fastmath

package plot

import "github.com/meko-christian/algo-approx"

// mathLog computes ln(x) using fast approximation. It only ranks distances
// between table columns and curve samples, so the last digits do not matter.
func mathLog(x float64) float64 {
	return approx.FastLog(x)
}
