package plot

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFigure() Figure {
	return Figure{
		Title: "LPF",
		X:     Axis{Label: "Frequency (Hz)", Min: 100, Max: 20000, Scale: Log},
		Y:     Axis{Label: "Magnitude (dB)", Min: -40, Max: 5},
		Grid:  true,
		Series: []Series{
			{Label: "Ideal", Style: Dashed, X: []float64{100, 1000, 10000}, Y: []float64{0, -0.1, -40}},
			{Label: "Real", X: []float64{100, 1000, 10000}, Y: []float64{0, -0.2, -38}},
		},
		Markers: []Marker{{Label: "fc nominal", X: 2400, Style: Dotted}},
	}
}

func TestAxis(t *testing.T) {
	a := Axis{Min: 100, Max: 20000, Scale: Log}
	assert.True(t, a.Contains(100))
	assert.True(t, a.Contains(20000))
	assert.False(t, a.Contains(99.9))
	assert.Equal(t, "log", a.Scale.String())
	assert.Equal(t, "linear", Linear.String())
}

func TestRecorderAndDiscard(t *testing.T) {
	var rec Recorder
	require.NoError(t, rec.Render(sampleFigure()))
	require.NoError(t, rec.Render(Figure{Title: "HPF"}))
	require.Len(t, rec.Figures, 2)
	assert.Equal(t, "HPF", rec.Figures[1].Title)

	assert.NoError(t, Discard.Render(sampleFigure()))

	boom := errors.New("boom")
	assert.ErrorIs(t, RendererFunc(func(Figure) error { return boom }).Render(Figure{}), boom)
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := TableRenderer{W: &buf, Columns: []float64{20, 100, 1000, 8000, 20000, 40000}}
	require.NoError(t, r.Render(sampleFigure()))

	out := buf.String()
	assert.Contains(t, out, "== LPF ==")
	assert.Contains(t, out, "marker: fc nominal at 2400 Hz")
	assert.Contains(t, out, "Ideal")
	assert.Contains(t, out, "-0.20")
	// 8 kHz is closer to 10 kHz than 1 kHz on a log scale.
	assert.Contains(t, out, "-38.00")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// title, marker, header, rule, and rows for 100, 1k, 8k, 20k.
	assert.Len(t, lines, 8)
	assert.NotContains(t, out, "40k")
}

func TestTableRenderer_DefaultColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableRenderer{W: &buf}.Render(sampleFigure()))
	out := buf.String()
	assert.Contains(t, out, "2.5k")
	assert.Contains(t, out, "20k")
	// Preferred frequencies below the X range are skipped.
	assert.NotContains(t, out, "31.5")
}

func TestNearestY(t *testing.T) {
	s := Series{X: []float64{100, 1000}, Y: []float64{1, 2}}
	y, ok := nearestY(s, 50)
	assert.True(t, ok)
	assert.Equal(t, 1.0, y)

	y, _ = nearestY(s, 5000)
	assert.Equal(t, 2.0, y)

	y, _ = nearestY(s, 300)
	assert.Equal(t, 1.0, y)

	y, _ = nearestY(s, 400)
	assert.Equal(t, 2.0, y)

	_, ok = nearestY(Series{}, 1)
	assert.False(t, ok)
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewCSVRenderer(&buf)
	require.NoError(t, r.Render(sampleFigure()))
	require.NoError(t, r.Render(Figure{Title: "HPF", Markers: []Marker{{Label: "fc real (~2359 Hz)", X: 2359.0953}}}))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + 6 samples + 1 marker + 1 marker
	require.Len(t, recs, 9)
	assert.Equal(t, []string{"figure", "kind", "label", "x", "y"}, recs[0])
	assert.Equal(t, []string{"LPF", "series", "Ideal", "100", "0"}, recs[1])
	assert.Equal(t, []string{"LPF", "marker", "fc nominal", "2400", ""}, recs[7])
	assert.Equal(t, []string{"HPF", "marker", "fc real (~2359 Hz)", "2359.0953", ""}, recs[8])
}
