package report_test

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-xover/plot"
	"github.com/cwbudde/algo-xover/report"
)

func ExampleRun() {
	var rec plot.Recorder
	res, _ := report.Run(io.Discard, &rec)

	fmt.Printf("L=%g mH C=%g µF\n", res.Selected.InductanceMH, res.Selected.CapacitanceUF)
	for _, fig := range rec.Figures {
		fmt.Printf("%s: %s\n", fig.Title, fig.Markers[1].Label)
	}
	// Output:
	// L=0.39 mH C=12 µF
	// Bode comparison: Low-pass filter (LPF) - Woofer: fc real (~2315 Hz)
	// Bode comparison: High-pass filter (HPF) - Tweeter: fc real (~2359 Hz)
}
