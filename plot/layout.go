package plot

import (
	"github.com/carbocation/gnpthreshold/threshold"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Layout sizes and labels one chart.
type Layout struct {
	Width, Height int

	LineWidth float64
	DotWidth  float64
	FontSize  float64

	XName, YName string

	// LegendFormat is applied to the graph size to name each curve.
	LegendFormat string

	// Panel charts take the model's short title.
	Panel bool
}

var (
	// Full is the layout of the per-property charts.
	Full = Layout{
		Width:        1000,
		Height:       700,
		LineWidth:    2,
		DotWidth:     3,
		FontSize:     10,
		XName:        "Edge Probability p",
		YName:        "P(G has property)",
		LegendFormat: "n = %d",
	}

	// Panel is the layout of one cell of the combined figure.
	Panel = Layout{
		Width:        533,
		Height:       450,
		LineWidth:    1.5,
		DotWidth:     2,
		FontSize:     8,
		XName:        "p",
		YName:        "P(property)",
		LegendFormat: "n=%d",
		Panel:        true,
	}
)

func (l Layout) title(property string) string {
	m, err := threshold.Lookup(property)
	if err != nil {
		return property
	}

	if l.Panel {
		return m.PanelTitle
	}

	return m.Title
}

const (
	XMin, XMax = 0.0, 1.0
	YMin, YMax = -0.05, 1.05

	// Curves take colors from the first 90% of the viridis ramp.
	paletteSpan = 0.9

	markerAlpha = 128
)

var gridColor = drawing.Color{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}

// Colors returns n colors spread evenly over the viridis ramp, darkest first.
func Colors(n int) []drawing.Color {
	out := make([]drawing.Color, 0, n)
	for i := 0; i < n; i++ {
		v := 0.0
		if n > 1 {
			v = paletteSpan * float64(i) / float64(n-1)
		}
		out = append(out, chart.Viridis(v, 0, 1))
	}

	return out
}
