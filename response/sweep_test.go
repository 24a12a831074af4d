package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xover/internal/testutil"
	"github.com/cwbudde/algo-xover/network"
)

func TestDefaultSweep(t *testing.T) {
	s := DefaultSweep()
	require.Len(t, s, DefaultPoints)
	assert.Equal(t, 10.0, s[0])
	assert.Equal(t, 100000.0, s[len(s)-1])
	testutil.RequireAscending(t, s)

	// Constant ratio between neighbours.
	ratio := math.Pow(10, 4.0/499)
	for i := 1; i < len(s); i++ {
		assert.InEpsilon(t, ratio, s[i]/s[i-1], 1e-9)
	}
}

func TestLogSweep(t *testing.T) {
	s, err := LogSweep(100, 10000, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, 1000, 10000}, []float64(s), 1e-9)

	single, err := LogSweep(2400, 2400, 1)
	require.NoError(t, err)
	assert.Equal(t, Sweep{2400}, single)
}

func TestLogSweep_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
	}{
		{"zero points", 10, 100, 0},
		{"zero start", 0, 100, 10},
		{"negative stop", 10, -100, 10},
		{"reversed", 100, 10, 10},
		{"nan", math.NaN(), 100, 10},
		{"inf", 10, math.Inf(1), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LogSweep(tt.start, tt.stop, tt.n)
			assert.ErrorIs(t, err, network.ErrInvalidParameter)
		})
	}
}
