package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-xover/internal/core"
	"github.com/cwbudde/algo-xover/network"
)

// IdealMagnitudeDB returns the target fourth-power envelope at freqHz for a
// cutoff of cutoffHz. It is exactly −3.0103 dB at the cutoff. Unsupported
// topologies yield NaN.
func IdealMagnitudeDB(t network.Topology, freqHz, cutoffHz float64) float64 {
	var ratio float64
	switch t {
	case network.LowPass:
		ratio = freqHz / cutoffHz
	case network.HighPass:
		ratio = cutoffHz / freqHz
	default:
		return math.NaN()
	}
	return core.LinearToDB(1 / math.Sqrt(1+ratio*ratio*ratio*ratio))
}

// RealResponse returns the complex transfer function of the passive network
// at freqHz. c is in base SI units and loadOhms is the resistive load.
// Unsupported topologies yield NaN.
func RealResponse(t network.Topology, freqHz float64, c network.Components, loadOhms float64) complex128 {
	w := 2 * math.Pi * freqHz
	l, cf := c.InductanceH, c.CapacitanceF

	switch t {
	case network.LowPass:
		return 1 / complex(1-w*w*l*cf, w*l/loadOhms)
	case network.HighPass:
		return complex(-w*w, 0) / complex(1/(l*cf)-w*w, w/(loadOhms*cf))
	default:
		return cmplx.NaN()
	}
}

// RealMagnitudeDB returns 20·log10|H| of [RealResponse].
func RealMagnitudeDB(t network.Topology, freqHz float64, c network.Components, loadOhms float64) float64 {
	h := RealResponse(t, freqHz, c, loadOhms)
	if cmplx.IsNaN(h) {
		return math.NaN()
	}
	return core.LinearToDB(cmplx.Abs(h))
}
