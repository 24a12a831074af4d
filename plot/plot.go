// Package plot describes Bode magnitude charts as plain data and defines the
// Renderer interface through which they are displayed.
//
// A [Figure] carries everything a 2D chart needs: curves, vertical markers,
// axis ranges and labels. Renderers decide how to draw it. The package ships
// text renderers for terminals and pipelines; any other chart backend only
// has to implement [Renderer].
package plot

// Scale selects how an axis maps values.
type Scale int

const (
	// Linear axes map values proportionally.
	Linear Scale = iota
	// Log axes map values by their logarithm.
	Log
)

// String returns "linear" or "log".
func (s Scale) String() string {
	if s == Log {
		return "log"
	}
	return "linear"
}

// Axis is a labelled value range.
type Axis struct {
	Label string
	Min   float64
	Max   float64
	Scale Scale
}

// Contains reports whether v lies inside the axis range.
func (a Axis) Contains(v float64) bool {
	return v >= a.Min && v <= a.Max
}

// LineStyle hints how a series or marker is stroked.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

// Series is one curve of a figure. X and Y have the same length.
type Series struct {
	Label string
	Color string
	Style LineStyle
	X     []float64
	Y     []float64
}

// Marker is a vertical line at X.
type Marker struct {
	Label string
	Color string
	Style LineStyle
	X     float64
}

// Figure is a complete chart description.
type Figure struct {
	Title   string
	X       Axis
	Y       Axis
	Grid    bool
	Series  []Series
	Markers []Marker
}

// Renderer displays figures.
type Renderer interface {
	Render(fig Figure) error
}

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(fig Figure) error

// Render calls f(fig).
func (f RendererFunc) Render(fig Figure) error { return f(fig) }

// Discard is a Renderer that drops every figure.
var Discard Renderer = RendererFunc(func(Figure) error { return nil })

// Recorder keeps every rendered figure in order.
type Recorder struct {
	Figures []Figure
}

// Render appends fig.
func (r *Recorder) Render(fig Figure) error {
	r.Figures = append(r.Figures, fig)
	return nil
}
