package parts

import (
	"fmt"

	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
)

// Units used by the built-in tables.
const (
	UnitMicroFarad = "µF"
	UnitMilliHenry = "mH"
)

var capacitorsUF = []float64{
	1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2, 10,
	12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82, 100,
}

var inductorsMH = []float64{
	0.10, 0.12, 0.15, 0.18, 0.22, 0.27, 0.33, 0.39, 0.47, 0.56, 0.68,
	0.82, 1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2,
	10, 12, 15,
}

// Table is an ordered, immutable set of standard component magnitudes in a
// single unit.
type Table struct {
	unit   string
	values []float64
}

// NewTable copies values into a Table. The order is kept as given and
// decides ties in [Nearest].
func NewTable(unit string, values ...float64) (Table, error) {
	if len(values) == 0 {
		return Table{}, fmt.Errorf("parts: table %q is empty: %w", unit, network.ErrInvalidParameter)
	}
	for i, v := range values {
		if !core.IsFinitePositive(v) {
			return Table{}, fmt.Errorf("parts: table %q entry %d must be finite and positive, got %v: %w", unit, i, v, network.ErrInvalidParameter)
		}
	}
	return Table{unit: unit, values: append([]float64(nil), values...)}, nil
}

// Capacitors returns the standard capacitor table in microfarads.
func Capacitors() Table {
	return Table{unit: UnitMicroFarad, values: capacitorsUF}
}

// Inductors returns the standard inductor table in millihenries.
func Inductors() Table {
	return Table{unit: UnitMilliHenry, values: inductorsMH}
}

// Unit returns the unit label of every entry.
func (t Table) Unit() string { return t.unit }

// Len returns the number of entries.
func (t Table) Len() int { return len(t.values) }

// At returns the i-th entry.
func (t Table) At(i int) float64 { return t.values[i] }

// Values returns a copy of the entries.
func (t Table) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// Contains reports whether v is an entry of t.
func (t Table) Contains(v float64) bool {
	for _, x := range t.values {
		if x == v {
			return true
		}
	}
	return false
}
