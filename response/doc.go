// Package response evaluates the magnitude response of a passive
// second-order crossover over a logarithmic frequency sweep.
//
// Two curves are produced per topology:
//
//   - the ideal envelope, 20·log10(1/√(1+(f/fc)⁴)) for the low-pass and
//     20·log10(1/√(1+(fc/f)⁴)) for the high-pass;
//   - the real response of the network built from commercial parts,
//     evaluated from its analog transfer function at ω = 2πf:
//
//	LPF: H(ω) = 1 / (1 − ω²LC + jωL/R)
//	HPF: H(ω) = −ω² / (1/(LC) − ω² + jω/(RC))
//
// [EstimateCutoff] locates the real −3 dB point as the sweep sample closest to
// the target level. It does not interpolate, so the estimate is quantized to
// the sweep resolution.
package response
