package response

import (
	"fmt"

	"github.com/cwbudde/algo-xover/network"
)

// Pair holds the ideal and real curves of one topology and the estimated
// real cutoff.
type Pair struct {
	Topology network.Topology
	Ideal    Curve
	Real     Curve

	// NominalCutoffHz is the design cutoff.
	NominalCutoffHz float64
	// RealCutoffHz is the sweep frequency where Real is closest to −3 dB.
	RealCutoffHz float64
}

// Evaluate computes both curves of topology t for the design p built from
// the commercial components c.
func Evaluate(t network.Topology, s Sweep, p network.Params, c network.Components) (Pair, error) {
	if err := t.Validate(); err != nil {
		return Pair{}, fmt.Errorf("response: evaluate: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pair{}, fmt.Errorf("response: evaluate: %w", err)
	}

	ideal, err := IdealCurve(t, s, p.CutoffHz)
	if err != nil {
		return Pair{}, err
	}
	realCurve, err := RealCurve(t, s, c, p.LoadOhms)
	if err != nil {
		return Pair{}, err
	}
	fcReal, _, err := EstimateCutoff(realCurve, CutoffDB)
	if err != nil {
		return Pair{}, err
	}

	return Pair{
		Topology:        t,
		Ideal:           ideal,
		Real:            realCurve,
		NominalCutoffHz: p.CutoffHz,
		RealCutoffHz:    fcReal,
	}, nil
}
