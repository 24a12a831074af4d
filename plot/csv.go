package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVRenderer writes figures in long format, one row per sample:
//
//	figure,kind,label,x,y
//
// Markers are written with kind "marker" and an empty y. The header is
// written before the first figure.
type CSVRenderer struct {
	w       *csv.Writer
	started bool
}

// NewCSVRenderer returns a CSVRenderer writing to w.
func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{w: csv.NewWriter(w)}
}

// Render writes every sample and marker of fig.
func (r *CSVRenderer) Render(fig Figure) error {
	if !r.started {
		if err := r.w.Write([]string{"figure", "kind", "label", "x", "y"}); err != nil {
			return fmt.Errorf("plot: write csv header: %w", err)
		}
		r.started = true
	}

	for _, s := range fig.Series {
		for i := range s.X {
			if i >= len(s.Y) {
				break
			}
			rec := []string{fig.Title, "series", s.Label, formatFloat(s.X[i]), formatFloat(s.Y[i])}
			if err := r.w.Write(rec); err != nil {
				return fmt.Errorf("plot: write csv row: %w", err)
			}
		}
	}
	for _, m := range fig.Markers {
		if err := r.w.Write([]string{fig.Title, "marker", m.Label, formatFloat(m.X), ""}); err != nil {
			return fmt.Errorf("plot: write csv marker: %w", err)
		}
	}

	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("plot: flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
