package plot

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"
)

// TableRenderer prints a figure as an aligned text table. Rows are the
// series samples closest to each of the reference frequencies that fall
// inside the X axis range.
type TableRenderer struct {
	W io.Writer

	// Columns lists the X values to tabulate. Nil selects the ISO 1/3-octave
	// preferred frequencies from 20 Hz to 20 kHz.
	Columns []float64
}

var thirdOctaveHz = []float64{
	20, 25, 31.5, 40, 50, 63, 80, 100, 125, 160, 200, 250, 315, 400, 500,
	630, 800, 1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000,
	10000, 12500, 16000, 20000,
}

// Render writes the title, the markers and one row per reference frequency.
func (r TableRenderer) Render(fig Figure) error {
	cols := r.Columns
	if cols == nil {
		cols = thirdOctaveHz
	}

	if _, err := fmt.Fprintf(r.W, "\n== %s ==\n", fig.Title); err != nil {
		return fmt.Errorf("plot: write title: %w", err)
	}
	for _, m := range fig.Markers {
		if _, err := fmt.Fprintf(r.W, "  marker: %s at %.0f Hz\n", m.Label, m.X); err != nil {
			return fmt.Errorf("plot: write marker: %w", err)
		}
	}

	tw := tabwriter.NewWriter(r.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{fig.X.Label}
	rule := []string{strings.Repeat("-", len(fig.X.Label))}
	for _, s := range fig.Series {
		header = append(header, s.Label)
		rule = append(rule, strings.Repeat("-", len(s.Label)))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return fmt.Errorf("plot: write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(rule, "\t")+"\t"); err != nil {
		return fmt.Errorf("plot: write header: %w", err)
	}

	for _, x := range cols {
		if !fig.X.Contains(x) {
			continue
		}
		row := []string{formatHz(x)}
		for _, s := range fig.Series {
			y, ok := nearestY(s, x)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f", y))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return fmt.Errorf("plot: write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("plot: flush table: %w", err)
	}
	return nil
}

// nearestY returns the Y of the sample whose X is closest to x on a log
// scale. X must be ascending.
func nearestY(s Series, x float64) (float64, bool) {
	n := len(s.X)
	if n == 0 || n != len(s.Y) {
		return 0, false
	}
	i := sort.SearchFloat64s(s.X, x)
	switch {
	case i == 0:
		return s.Y[0], true
	case i == n:
		return s.Y[n-1], true
	}
	if math.Abs(mathLog(s.X[i]/x)) < math.Abs(mathLog(x/s.X[i-1])) {
		return s.Y[i], true
	}
	return s.Y[i-1], true
}

func formatHz(f float64) string {
	if f >= 1000 {
		return fmt.Sprintf("%gk", f/1000)
	}
	return fmt.Sprintf("%g", f)
}
