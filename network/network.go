package network

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xover/internal/core"
)

// Params are the two design inputs of a crossover.
type Params struct {
	CutoffHz float64 // nominal crossover frequency
	LoadOhms float64 // nominal driver impedance, treated as resistive
}

// Validate reports ErrInvalidParameter if either input is not a finite
// positive number.
func (p Params) Validate() error {
	if !core.IsFinitePositive(p.CutoffHz) {
		return fmt.Errorf("network: cutoff frequency must be finite and positive, got %v: %w", p.CutoffHz, ErrInvalidParameter)
	}
	if !core.IsFinitePositive(p.LoadOhms) {
		return fmt.Errorf("network: load impedance must be finite and positive, got %v: %w", p.LoadOhms, ErrInvalidParameter)
	}
	return nil
}

// Components holds an inductor/capacitor pair in base SI units.
type Components struct {
	InductanceH  float64
	CapacitanceF float64
}

// InductanceMH returns the inductance in millihenries.
func (c Components) InductanceMH() float64 { return c.InductanceH * 1e3 }

// CapacitanceUF returns the capacitance in microfarads.
func (c Components) CapacitanceUF() float64 { return c.CapacitanceF * 1e6 }

// Validate reports ErrInvalidParameter unless both values are finite and
// positive.
func (c Components) Validate() error {
	if !core.IsFinitePositive(c.InductanceH) {
		return fmt.Errorf("network: inductance must be finite and positive, got %v: %w", c.InductanceH, ErrInvalidParameter)
	}
	if !core.IsFinitePositive(c.CapacitanceF) {
		return fmt.Errorf("network: capacitance must be finite and positive, got %v: %w", c.CapacitanceF, ErrInvalidParameter)
	}
	return nil
}

// Ideal returns the maximally flat second-order component values for p.
func Ideal(p Params) (Components, error) {
	if err := p.Validate(); err != nil {
		return Components{}, err
	}

	w := 2 * math.Pi * p.CutoffHz
	return Components{
		InductanceH:  p.LoadOhms * math.Sqrt2 / w,
		CapacitanceF: 1 / (w * p.LoadOhms * math.Sqrt2),
	}, nil
}

// CutoffFromInductance inverts the inductor formula: fc = R·√2 / (2π·L).
func CutoffFromInductance(inductanceH, loadOhms float64) float64 {
	return loadOhms * math.Sqrt2 / (2 * math.Pi * inductanceH)
}

// CutoffFromCapacitance inverts the capacitor formula: fc = 1 / (2π·R·C·√2).
func CutoffFromCapacitance(capacitanceF, loadOhms float64) float64 {
	return 1 / (2 * math.Pi * loadOhms * capacitanceF * math.Sqrt2)
}

// ResonanceHz returns 1/(2π·√(LC)), the undamped natural frequency of the
// pair. For the ideal alignment it equals the design cutoff.
func (c Components) ResonanceHz() float64 {
	return 1 / (2 * math.Pi * math.Sqrt(c.InductanceH*c.CapacitanceF))
}

// Q returns the quality factor R·√(C/L) of the pair driving loadOhms.
// The ideal alignment yields 1/√2.
func (c Components) Q(loadOhms float64) float64 {
	return loadOhms * math.Sqrt(c.CapacitanceF/c.InductanceH)
}
