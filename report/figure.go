package report

import (
	"fmt"

	"github.com/cwbudde/algo-xover/network"
	"github.com/cwbudde/algo-xover/plot"
	"github.com/cwbudde/algo-xover/response"
)

// Display range of every Bode figure.
var (
	FrequencyAxis = plot.Axis{Label: "Frequency (Hz)", Min: 100, Max: 20000, Scale: plot.Log}
	MagnitudeAxis = plot.Axis{Label: "Magnitude (dB)", Min: -40, Max: 5, Scale: plot.Linear}
)

func title(t network.Topology) string {
	switch t {
	case network.LowPass:
		return "Low-pass filter (LPF) - Woofer"
	case network.HighPass:
		return "High-pass filter (HPF) - Tweeter"
	default:
		return t.String()
	}
}

// Figure builds the comparison chart for one evaluated topology.
func Figure(p response.Pair) plot.Figure {
	fc := p.NominalCutoffHz
	return plot.Figure{
		Title: "Bode comparison: " + title(p.Topology),
		X:     FrequencyAxis,
		Y:     MagnitudeAxis,
		Grid:  true,
		Series: []plot.Series{
			{
				Label: fmt.Sprintf("Ideal (fc=%g Hz)", fc),
				Color: "blue",
				Style: plot.Dashed,
				X:     p.Ideal.Frequencies,
				Y:     p.Ideal.MagnitudesDB,
			},
			{
				Label: "Real (commercial components)",
				Color: "red",
				Style: plot.Solid,
				X:     p.Real.Frequencies,
				Y:     p.Real.MagnitudesDB,
			},
		},
		Markers: []plot.Marker{
			{Label: fmt.Sprintf("fc nominal (%g Hz)", fc), Color: "gray", Style: plot.Dotted, X: fc},
			{Label: fmt.Sprintf("fc real (~%d Hz)", int(p.RealCutoffHz)), Color: "red", Style: plot.Dotted, X: p.RealCutoffHz},
		},
	}
}
