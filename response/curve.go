package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
)

// CutoffDB is the attenuation that defines a cutoff frequency.
const CutoffDB = -3.0

// Curve is a Bode magnitude curve. Frequencies and MagnitudesDB have the
// same length.
type Curve struct {
	Frequencies  []float64
	MagnitudesDB []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Frequencies) }

// IdealCurve evaluates [IdealMagnitudeDB] over the sweep.
func IdealCurve(t network.Topology, s Sweep, cutoffHz float64) (Curve, error) {
	if err := t.Validate(); err != nil {
		return Curve{}, fmt.Errorf("response: ideal curve: %w", err)
	}
	if len(s) == 0 {
		return Curve{}, fmt.Errorf("response: ideal curve: empty sweep: %w", network.ErrInvalidParameter)
	}
	if !core.IsFinitePositive(cutoffHz) {
		return Curve{}, fmt.Errorf("response: ideal curve: cutoff %v: %w", cutoffHz, network.ErrInvalidParameter)
	}

	mag := make([]float64, len(s))
	for i, f := range s {
		mag[i] = IdealMagnitudeDB(t, f, cutoffHz)
	}
	return Curve{Frequencies: append([]float64(nil), s...), MagnitudesDB: mag}, nil
}

// RealCurve evaluates [RealResponse] over the sweep and converts the
// magnitudes to dB.
func RealCurve(t network.Topology, s Sweep, c network.Components, loadOhms float64) (Curve, error) {
	if err := t.Validate(); err != nil {
		return Curve{}, fmt.Errorf("response: real curve: %w", err)
	}
	if len(s) == 0 {
		return Curve{}, fmt.Errorf("response: real curve: empty sweep: %w", network.ErrInvalidParameter)
	}
	if err := c.Validate(); err != nil {
		return Curve{}, fmt.Errorf("response: real curve: %w", err)
	}
	if !core.IsFinitePositive(loadOhms) {
		return Curve{}, fmt.Errorf("response: real curve: load %v: %w", loadOhms, network.ErrInvalidParameter)
	}

	n := len(s)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, f := range s {
		h := RealResponse(t, f, c, loadOhms)
		re[i], im[i] = real(h), imag(h)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return Curve{Frequencies: append([]float64(nil), s...), MagnitudesDB: mag}, nil
}

// EstimateCutoff returns the frequency and index of the sample whose
// magnitude is closest to targetDB. The first of equally close samples wins.
// If the curve never reaches targetDB the closest sample is still returned.
func EstimateCutoff(c Curve, targetDB float64) (float64, int, error) {
	if c.Len() == 0 {
		return 0, -1, fmt.Errorf("response: estimate cutoff: empty curve: %w", network.ErrInvalidParameter)
	}

	best := 0
	bestDist := math.Inf(1)
	for i, m := range c.MagnitudesDB {
		if d := math.Abs(m - targetDB); d < bestDist {
			best, bestDist = i, d
		}
	}
	return c.Frequencies[best], best, nil
}

// MaxDeviation returns the largest |a−b| in dB over samples whose frequency
// lies in [loHz, hiHz], and the frequency where it occurs. Both curves must
// share the same frequencies.
func MaxDeviation(a, b Curve, loHz, hiHz float64) (devDB, atHz float64, err error) {
	if a.Len() != b.Len() {
		return 0, 0, fmt.Errorf("response: deviation: length mismatch %d vs %d: %w", a.Len(), b.Len(), network.ErrInvalidParameter)
	}
	found := false
	for i, f := range a.Frequencies {
		if f < loHz || f > hiHz {
			continue
		}
		d := math.Abs(a.MagnitudesDB[i] - b.MagnitudesDB[i])
		if !found || d > devDB {
			devDB, atHz, found = d, f, true
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("response: deviation: no samples in %v..%v Hz: %w", loHz, hiHz, network.ErrInvalidParameter)
	}
	return devDB, atHz, nil
}
