package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
)

// Default sweep: 10 Hz to 100 kHz, 500 log-spaced points.
const (
	DefaultStartHz = 10
	DefaultStopHz  = 100000
	DefaultPoints  = 500
)

// Sweep is an ascending sequence of frequencies in Hz.
type Sweep []float64

// LogSweep returns n logarithmically spaced frequencies from startHz to
// stopHz, both inclusive.
func LogSweep(startHz, stopHz float64, n int) (Sweep, error) {
	if n < 1 {
		return nil, fmt.Errorf("response: sweep needs at least one point, got %d: %w", n, network.ErrInvalidParameter)
	}
	if !core.IsFinitePositive(startHz) || !core.IsFinitePositive(stopHz) {
		return nil, fmt.Errorf("response: sweep bounds must be finite and positive, got %v..%v: %w", startHz, stopHz, network.ErrInvalidParameter)
	}
	if n > 1 && stopHz <= startHz {
		return nil, fmt.Errorf("response: sweep stop %v must exceed start %v: %w", stopHz, startHz, network.ErrInvalidParameter)
	}

	s := make(Sweep, n)
	s[0] = startHz
	if n == 1 {
		return s, nil
	}

	lo := math.Log10(startHz)
	step := (math.Log10(stopHz) - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		s[i] = math.Pow(10, lo+float64(i)*step)
	}
	s[n-1] = stopHz
	return s, nil
}

// DefaultSweep returns the 10 Hz–100 kHz, 500-point sweep.
func DefaultSweep() Sweep {
	s, _ := LogSweep(DefaultStartHz, DefaultStopHz, DefaultPoints)
	return s
}
