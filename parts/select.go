package parts

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xover/network"
)

// Nearest returns the entry of t closest to v. The first of two equidistant
// entries wins.
func Nearest(v float64, t Table) (float64, error) {
	if t.Len() == 0 {
		return 0, fmt.Errorf("parts: nearest to %v: empty table: %w", v, network.ErrInvalidParameter)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("parts: nearest to NaN in %s table: %w", t.unit, network.ErrInvalidParameter)
	}

	best := t.values[0]
	bestDist := math.Abs(best - v)
	for _, x := range t.values[1:] {
		if d := math.Abs(x - v); d < bestDist {
			best, bestDist = x, d
		}
	}
	return best, nil
}

// Selected holds the commercial parts chosen for a design, in table units.
type Selected struct {
	InductanceMH  float64
	CapacitanceUF float64
}

// Components converts the selection to base SI units.
func (s Selected) Components() network.Components {
	return network.Components{
		InductanceH:  s.InductanceMH / 1e3,
		CapacitanceF: s.CapacitanceUF / 1e6,
	}
}

// Select rounds both ideal values to their nearest commercial part. The
// inductor table must be in millihenries and the capacitor table in
// microfarads.
func Select(ideal network.Components, inductors, capacitors Table) (Selected, error) {
	if err := ideal.Validate(); err != nil {
		return Selected{}, fmt.Errorf("parts: select: %w", err)
	}

	l, err := Nearest(ideal.InductanceMH(), inductors)
	if err != nil {
		return Selected{}, fmt.Errorf("parts: select inductor: %w", err)
	}
	c, err := Nearest(ideal.CapacitanceUF(), capacitors)
	if err != nil {
		return Selected{}, fmt.Errorf("parts: select capacitor: %w", err)
	}

	return Selected{InductanceMH: l, CapacitanceUF: c}, nil
}

// SelectStandard is Select with the built-in tables.
func SelectStandard(ideal network.Components) (Selected, error) {
	return Select(ideal, Inductors(), Capacitors())
}
