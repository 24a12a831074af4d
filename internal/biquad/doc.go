// Package biquad provides the second-order IIR runtime used to preview a
// passive crossover as a digital filter.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections cascade via
// [Chain]. Coefficient design lives with the caller.
package biquad
