// Package report drives a full crossover design run: it computes the ideal
// parts, rounds them to commercial values, prints a summary and hands one
// Bode figure per topology to a renderer.
package report

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-xover/digital"
	"github.com/cwbudde/algo-xover/network"
	"github.com/cwbudde/algo-xover/parts"
	"github.com/cwbudde/algo-xover/plot"
	"github.com/cwbudde/algo-xover/response"
)

// DigitalDeviation is the worst gap between the digital preview and the
// analog response of one topology inside the display range.
type DigitalDeviation struct {
	Topology    network.Topology
	SampleRate  float64
	DeviationDB float64
	AtHz        float64
}

// Result collects everything a run computed.
type Result struct {
	Params   network.Params
	Ideal    network.Components
	Selected parts.Selected
	Pairs    []response.Pair
	Figures  []plot.Figure
	Digital  []DigitalDeviation
}

// Run designs the crossover described by opts, writes the text summary to w
// and renders one figure per topology with r.
func Run(w io.Writer, r plot.Renderer, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	log := cfg.Logger
	p := cfg.Params

	for _, t := range cfg.Topologies {
		if err := t.Validate(); err != nil {
			return Result{}, fmt.Errorf("report: %w", err)
		}
	}

	ideal, err := network.Ideal(p)
	if err != nil {
		return Result{}, fmt.Errorf("report: %w", err)
	}
	log.Debug().
		Float64("cutoff_hz", p.CutoffHz).
		Float64("load_ohms", p.LoadOhms).
		Float64("ideal_mh", ideal.InductanceMH()).
		Float64("ideal_uf", ideal.CapacitanceUF()).
		Msg("ideal components computed")

	sel, err := parts.Select(ideal, cfg.Inductors, cfg.Capacitors)
	if err != nil {
		return Result{}, fmt.Errorf("report: %w", err)
	}
	built := sel.Components()
	log.Debug().
		Float64("selected_mh", sel.InductanceMH).
		Float64("selected_uf", sel.CapacitanceUF).
		Float64("q", built.Q(p.LoadOhms)).
		Float64("resonance_hz", built.ResonanceHz()).
		Msg("commercial components selected")

	// Invalid preview settings must fail before the first summary line.
	var preview *digital.Crossover
	if cfg.SampleRate > 0 {
		preview, err = digital.New(p, built, cfg.SampleRate)
		if err != nil {
			return Result{}, fmt.Errorf("report: digital preview: %w", err)
		}
	}

	res := Result{Params: p, Ideal: ideal, Selected: sel}
	pr := &printer{w: w}

	pr.printf("--- Second-order passive crossover design ---\n")
	pr.printf("Parameters: cutoff frequency = %g Hz, load impedance = %g Ohms\n\n", p.CutoffHz, p.LoadOhms)
	pr.printf("--- Ideal values ---\n")
	pr.printf("Ideal inductor (L): %.3f mH\n", ideal.InductanceMH())
	pr.printf("Ideal capacitor (C): %.3f µF\n\n", ideal.CapacitanceUF())
	pr.printf("--- Nearest commercial components ---\n")
	pr.printf("Selected inductor (L): %g %s\n", sel.InductanceMH, cfg.Inductors.Unit())
	pr.printf("Selected capacitor (C): %g %s\n\n", sel.CapacitanceUF, cfg.Capacitors.Unit())
	pr.printf("Generating Bode plots...\n")
	if pr.err != nil {
		return res, pr.err
	}

	for _, t := range cfg.Topologies {
		pair, err := response.Evaluate(t, cfg.Sweep, p, built)
		if err != nil {
			return res, fmt.Errorf("report: %v: %w", t, err)
		}
		res.Pairs = append(res.Pairs, pair)

		dev, at, err := response.MaxDeviation(pair.Real, pair.Ideal, FrequencyAxis.Min, FrequencyAxis.Max)
		if err != nil {
			return res, fmt.Errorf("report: %v: %w", t, err)
		}
		pr.printf("%v real cutoff: ~%d Hz (nominal %g Hz), max deviation from ideal %.2f dB at %.0f Hz\n",
			t, int(pair.RealCutoffHz), pair.NominalCutoffHz, dev, at)

		fig := Figure(pair)
		res.Figures = append(res.Figures, fig)
		log.Debug().
			Str("topology", t.String()).
			Float64("real_cutoff_hz", pair.RealCutoffHz).
			Float64("max_deviation_db", dev).
			Msg("rendering figure")
		if err := r.Render(fig); err != nil {
			return res, fmt.Errorf("report: render %v: %w", t, err)
		}
	}

	if preview != nil {
		devs, err := digitalPreview(cfg, preview)
		if err != nil {
			return res, err
		}
		res.Digital = devs
		for _, d := range devs {
			pr.printf("Digital preview @ %g Hz: %v max deviation %.2f dB at %.0f Hz\n",
				d.SampleRate, d.Topology, d.DeviationDB, d.AtHz)
		}
	}

	pr.printf("Analysis complete.\n")
	return res, pr.err
}

func digitalPreview(cfg Config, x *digital.Crossover) ([]DigitalDeviation, error) {
	devs := make([]DigitalDeviation, 0, len(cfg.Topologies))
	for _, t := range cfg.Topologies {
		dev, at, err := x.Deviation(t, cfg.Sweep, FrequencyAxis.Min, FrequencyAxis.Max)
		if err != nil {
			return nil, fmt.Errorf("report: digital preview %v: %w", t, err)
		}
		cfg.Logger.Debug().
			Str("topology", t.String()).
			Float64("sample_rate", x.SampleRate()).
			Float64("deviation_db", dev).
			Msg("digital preview measured")
		devs = append(devs, DigitalDeviation{Topology: t, SampleRate: x.SampleRate(), DeviationDB: dev, AtHz: at})
	}
	return devs, nil
}

// printer remembers the first write error so the summary can be written
// without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("report: write summary: %w", err)
	}
}
