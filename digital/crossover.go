package digital

import (
	"fmt"

	"github.com/cwbudde/algo-xover/internal/biquad"
	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
)

// Crossover is the digital counterpart of a two-way passive crossover built
// from commercial parts. It splits an input signal into the low-pass
// (woofer) and high-pass (tweeter) outputs.
type Crossover struct {
	lp    *biquad.Chain
	hp    *biquad.Chain
	parts network.Components
	load  float64
	sr    float64
}

// New realizes the network built from parts for the design p at
// sampleRate. The natural frequency of the parts must lie below Nyquist.
func New(p network.Params, parts network.Components, sampleRate float64) (*Crossover, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("digital: %w", err)
	}
	if err := validate(parts, p.LoadOhms, sampleRate); err != nil {
		return nil, err
	}

	lp, err := Design(network.LowPass, parts, p.LoadOhms, sampleRate)
	if err != nil {
		return nil, err
	}
	hp, err := Design(network.HighPass, parts, p.LoadOhms, sampleRate)
	if err != nil {
		return nil, err
	}

	return &Crossover{
		lp:    biquad.NewChain(lp),
		hp:    biquad.NewChain(hp),
		parts: parts,
		load:  p.LoadOhms,
		sr:    sampleRate,
	}, nil
}

func validate(parts network.Components, loadOhms, sampleRate float64) error {
	if err := parts.Validate(); err != nil {
		return fmt.Errorf("digital: %w", err)
	}
	if !core.IsFinitePositive(loadOhms) {
		return fmt.Errorf("digital: load must be finite and positive, got %v: %w", loadOhms, network.ErrInvalidParameter)
	}
	if !core.IsFinitePositive(sampleRate) {
		return fmt.Errorf("digital: sample rate must be finite and positive, got %v: %w", sampleRate, network.ErrInvalidParameter)
	}
	if f0 := parts.ResonanceHz(); f0 >= sampleRate/2 {
		return fmt.Errorf("digital: natural frequency %.1f Hz is not below Nyquist %.1f Hz: %w", f0, sampleRate/2, network.ErrInvalidParameter)
	}
	return nil
}

// ProcessSample filters one input sample and returns the low-pass and
// high-pass outputs.
func (x *Crossover) ProcessSample(in float64) (lo, hi float64) {
	return x.lp.ProcessSample(in), x.hp.ProcessSample(in)
}

// ProcessBlock filters a block of input samples, writing the low-pass
// output to lo and the high-pass output to hi. All three slices must have
// the same length.
func (x *Crossover) ProcessBlock(input, lo, hi []float64) {
	n := len(input)
	if n == 0 {
		return
	}
	_ = lo[n-1]
	_ = hi[n-1]
	copy(lo, input)
	copy(hi, input)
	x.lp.ProcessBlock(lo)
	x.hp.ProcessBlock(hi)
}

// Chain returns the filter realizing topology t.
func (x *Crossover) Chain(t network.Topology) (*biquad.Chain, error) {
	switch t {
	case network.LowPass:
		return x.lp, nil
	case network.HighPass:
		return x.hp, nil
	default:
		return nil, fmt.Errorf("digital: %w", t.Validate())
	}
}

// LP returns the low-pass chain.
func (x *Crossover) LP() *biquad.Chain { return x.lp }

// HP returns the high-pass chain.
func (x *Crossover) HP() *biquad.Chain { return x.hp }

// Parts returns the components the crossover realizes.
func (x *Crossover) Parts() network.Components { return x.parts }

// LoadOhms returns the load the network was designed for.
func (x *Crossover) LoadOhms() float64 { return x.load }

// SampleRate returns the sample rate in Hz.
func (x *Crossover) SampleRate() float64 { return x.sr }

// Reset clears the internal filter states of both chains.
func (x *Crossover) Reset() {
	x.lp.Reset()
	x.hp.Reset()
}
