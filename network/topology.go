package network

import (
	"fmt"
	"strings"
)

// Topology selects one half of a two-way crossover.
type Topology int

const (
	// LowPass feeds the woofer.
	LowPass Topology = iota
	// HighPass feeds the tweeter.
	HighPass
)

// Topologies lists every supported topology in report order.
func Topologies() []Topology {
	return []Topology{LowPass, HighPass}
}

// String returns the short name used in reports ("LPF" or "HPF").
func (t Topology) String() string {
	switch t {
	case LowPass:
		return "LPF"
	case HighPass:
		return "HPF"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Validate reports ErrUnsupportedMode for anything but LowPass and HighPass.
func (t Topology) Validate() error {
	switch t {
	case LowPass, HighPass:
		return nil
	default:
		return fmt.Errorf("network: topology %d: %w", int(t), ErrUnsupportedMode)
	}
}

// ParseTopology accepts "lpf", "lowpass", "lp", "hpf", "highpass" and "hp"
// in any case.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lpf", "lp", "lowpass", "low-pass":
		return LowPass, nil
	case "hpf", "hp", "highpass", "high-pass":
		return HighPass, nil
	default:
		return 0, fmt.Errorf("network: topology %q: %w", s, ErrUnsupportedMode)
	}
}
