package digital

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-xover/internal/biquad"
	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
	"github.com/cwbudde/algo-xover/response"
)

// DefaultFFTSize is the impulse-response length used by [Crossover.Curve].
const DefaultFFTSize = 1 << 16

// MeasureMagnitudeDB returns the magnitude of chain at each frequency,
// measured from an fftSize-sample impulse response. Magnitudes between FFT
// bins are linearly interpolated. fftSize must be a power of two and every
// frequency must lie in [0, sampleRate/2].
func MeasureMagnitudeDB(chain *biquad.Chain, sampleRate float64, freqs []float64, fftSize int) ([]float64, error) {
	if fftSize < 2 || bits.OnesCount(uint(fftSize)) != 1 {
		return nil, fmt.Errorf("digital: fft size must be a power of two >= 2, got %d: %w", fftSize, network.ErrInvalidParameter)
	}
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("digital: sample rate must be finite and positive, got %v: %w", sampleRate, network.ErrInvalidParameter)
	}
	nyquist := sampleRate / 2
	for _, f := range freqs {
		if !(f >= 0 && f <= nyquist) {
			return nil, fmt.Errorf("digital: frequency %v Hz outside [0, %v]: %w", f, nyquist, network.ErrInvalidParameter)
		}
	}

	ir := chain.ImpulseResponse(fftSize)
	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("digital: failed to create FFT plan: %w", err)
	}
	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("digital: forward FFT failed: %w", err)
	}

	half := fftSize / 2
	mag := make([]float64, half+1)
	for i := range mag {
		mag[i] = cmplx.Abs(spec[i])
	}

	binHz := sampleRate / float64(fftSize)
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		pos := f / binHz
		k := int(math.Floor(pos))
		if k >= half {
			out[i] = core.LinearToDB(mag[half])
			continue
		}
		frac := pos - float64(k)
		out[i] = core.LinearToDB(mag[k]*(1-frac) + mag[k+1]*frac)
	}
	return out, nil
}

// Curve measures the realized magnitude of topology t over the sweep.
// Frequencies at or above Nyquist are dropped from the result.
func (x *Crossover) Curve(t network.Topology, s response.Sweep) (response.Curve, error) {
	chain, err := x.Chain(t)
	if err != nil {
		return response.Curve{}, err
	}

	freqs := BelowNyquist(s, x.sr)
	if len(freqs) == 0 {
		return response.Curve{}, fmt.Errorf("digital: no sweep frequency below Nyquist %v Hz: %w", x.sr/2, network.ErrInvalidParameter)
	}
	mag, err := MeasureMagnitudeDB(chain, x.sr, freqs, DefaultFFTSize)
	if err != nil {
		return response.Curve{}, err
	}
	return response.Curve{Frequencies: freqs, MagnitudesDB: mag}, nil
}

// Deviation compares the realized topology t against the analog response
// of the same parts and returns the largest difference in dB within
// [loHz, hiHz] together with the frequency where it occurs.
func (x *Crossover) Deviation(t network.Topology, s response.Sweep, loHz, hiHz float64) (devDB, atHz float64, err error) {
	measured, err := x.Curve(t, s)
	if err != nil {
		return 0, 0, err
	}
	analogCurve, err := response.RealCurve(t, measured.Frequencies, x.parts, x.load)
	if err != nil {
		return 0, 0, err
	}
	return response.MaxDeviation(measured, analogCurve, loHz, hiHz)
}

// BelowNyquist returns the sweep frequencies strictly below sampleRate/2.
func BelowNyquist(s response.Sweep, sampleRate float64) response.Sweep {
	out := make(response.Sweep, 0, len(s))
	for _, f := range s {
		if f < sampleRate/2 {
			out = append(out, f)
		}
	}
	return out
}
