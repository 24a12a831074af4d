package digital

import (
	"math"

	"github.com/cwbudde/algo-xover/internal/biquad"
	"github.com/cwbudde/algo-xover/network"
)

// analog holds s-domain coefficients b2·s²+b1·s+b0 over a2·s²+a1·s+a0.
type analog struct {
	b2, b1, b0 float64
	a2, a1, a0 float64
}

func analogPrototype(t network.Topology, c network.Components, loadOhms float64) analog {
	lc := c.InductanceH * c.CapacitanceF
	p := analog{a2: lc, a1: c.InductanceH / loadOhms, a0: 1}
	if t == network.HighPass {
		p.b2 = lc
	} else {
		p.b0 = 1
	}
	return p
}

// bilinear maps p to the z-plane with s = k·(1−z⁻¹)/(1+z⁻¹).
func bilinear(p analog, k float64) biquad.Coefficients {
	k2 := k * k
	a0 := p.a2*k2 + p.a1*k + p.a0
	return biquad.Coefficients{
		B0: (p.b2*k2 + p.b1*k + p.b0) / a0,
		B1: 2 * (p.b0 - p.b2*k2) / a0,
		B2: (p.b2*k2 - p.b1*k + p.b0) / a0,
		A1: 2 * (p.a0 - p.a2*k2) / a0,
		A2: (p.a2*k2 - p.a1*k + p.a0) / a0,
	}
}

// warpConstant returns k such that analog frequency warpHz maps onto the
// same digital frequency.
func warpConstant(warpHz, sampleRate float64) float64 {
	w := 2 * math.Pi * warpHz
	return w / math.Tan(w/(2*sampleRate))
}

// Design returns the biquad realizing topology t of the network built from
// c driving loadOhms at sampleRate.
func Design(t network.Topology, c network.Components, loadOhms, sampleRate float64) (biquad.Coefficients, error) {
	if err := t.Validate(); err != nil {
		return biquad.Coefficients{}, err
	}
	if err := validate(c, loadOhms, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	k := warpConstant(c.ResonanceHz(), sampleRate)
	return bilinear(analogPrototype(t, c, loadOhms), k), nil
}
