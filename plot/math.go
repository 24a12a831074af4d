//go:build !fastmath

package plot

import "math"

// mathLog computes ln(x) using standard library math.
func mathLog(x float64) float64 {
	return math.Log(x)
}
