// Package digital realizes a passive second-order crossover as a pair of
// biquad filters so its behaviour can be previewed at a given sample rate.
//
// The analog transfer functions of the commercial-part network
//
//	LPF: H(s) = 1 / (LC·s² + (L/R)·s + 1)
//	HPF: H(s) = LC·s² / (LC·s² + (L/R)·s + 1)
//
// are mapped to the z-plane with the bilinear transform, pre-warped at the
// natural frequency 1/(2π√LC) so the resonance lands where it does in the
// analog network. [MeasureMagnitudeDB] recovers the realized magnitude from
// the impulse response with an FFT, which lets callers check how far the
// digital preview strays from the analog curve.
//
// Example:
//
//	x, _ := digital.New(params, selected, 48000)
//	lo, hi := x.ProcessSample(inputSample)
package digital
