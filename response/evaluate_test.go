package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xover/network"
)

func TestEvaluate_ReferenceDesign(t *testing.T) {
	s := DefaultSweep()

	lp, err := Evaluate(network.LowPass, s, refParams, refSelected)
	require.NoError(t, err)
	assert.Equal(t, network.LowPass, lp.Topology)
	assert.Equal(t, 2400.0, lp.NominalCutoffHz)
	assert.InDelta(t, 2316, lp.RealCutoffHz, 5)

	hp, err := Evaluate(network.HighPass, s, refParams, refSelected)
	require.NoError(t, err)
	assert.InDelta(t, 2359, hp.RealCutoffHz, 5)

	// Rounding to commercial parts moves the response by roughly half a dB.
	for _, p := range []Pair{lp, hp} {
		dev, _, err := MaxDeviation(p.Real, p.Ideal, 100, 20000)
		require.NoError(t, err)
		assert.Greater(t, dev, 0.3)
		assert.Less(t, dev, 0.8)
	}
}

// TestEvaluate_IdealPartsCutoff checks the estimate lands on the sample
// nearest the design cutoff when no rounding happens.
func TestEvaluate_IdealPartsCutoff(t *testing.T) {
	ideal, err := network.Ideal(refParams)
	require.NoError(t, err)

	for _, topo := range network.Topologies() {
		p, err := Evaluate(topo, DefaultSweep(), refParams, ideal)
		require.NoError(t, err)
		assert.InEpsilon(t, 2400, p.RealCutoffHz, 0.02, topo.String())
	}
}

func TestEvaluate_Errors(t *testing.T) {
	s := DefaultSweep()

	_, err := Evaluate(network.Topology(3), s, refParams, refSelected)
	assert.ErrorIs(t, err, network.ErrUnsupportedMode)

	_, err = Evaluate(network.LowPass, s, network.Params{CutoffHz: -1, LoadOhms: 4}, refSelected)
	assert.ErrorIs(t, err, network.ErrInvalidParameter)

	_, err = Evaluate(network.LowPass, nil, refParams, refSelected)
	assert.ErrorIs(t, err, network.ErrInvalidParameter)
}
