package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/carbocation/gnpthreshold/results"
	"github.com/carbocation/gnpthreshold/threshold"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when a property has no series to draw.
var ErrNoData = errors.New("no data for property")

// PropertyChart builds a chart with one curve per graph size of property, in
// ascending size order. When the property has a threshold model, each size
// with a theoretical threshold strictly inside (0, 1) also gets a dashed
// vertical marker in its curve's color.
func PropertyChart(property string, model results.RecordModel, layout Layout) (chart.Chart, error) {
	sizes := model.Sizes(property)
	if len(sizes) == 0 {
		return chart.Chart{}, fmt.Errorf("%w %s", ErrNoData, property)
	}

	colors := Colors(len(sizes))
	series := make([]chart.Series, 0, len(sizes))
	markers := gridLines()

	for i, n := range sizes {
		s := model.Series(results.SeriesKey{Property: property, N: n})

		series = append(series, chart.ContinuousSeries{
			Name: fmt.Sprintf(layout.LegendFormat, n),
			Style: chart.Style{
				StrokeColor: colors[i],
				StrokeWidth: layout.LineWidth,
				DotColor:    colors[i],
				DotWidth:    layout.DotWidth,
			},
			XValues: s.PValues(),
			YValues: s.Probabilities(),
		})

		if t := threshold.Theoretical(property, n); t.Valid && t.Float64 > 0 && t.Float64 < 1 {
			markers = append(markers, chart.GridLine{
				Value: t.Float64,
				Style: chart.Style{
					StrokeColor:     colors[i].WithAlpha(markerAlpha),
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			})
		}
	}

	axisFont := chart.Style{FontSize: layout.FontSize}
	gridStyle := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}

	return chart.Chart{
		Title:      layout.title(property),
		TitleStyle: chart.Style{FontSize: layout.FontSize + 4},
		Width:      layout.Width,
		Height:     layout.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           layout.XName,
			NameStyle:      axisFont,
			Style:          axisFont,
			Range:          &chart.ContinuousRange{Min: XMin, Max: XMax},
			Ticks:          xTicks(),
			GridLines:      markers,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           layout.YName,
			NameStyle:      axisFont,
			Style:          axisFont,
			Range:          &chart.ContinuousRange{Min: YMin, Max: YMax},
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}, nil
}

func xTicks() []chart.Tick {
	out := make([]chart.Tick, 0, 6)
	for i := 0; i <= 5; i++ {
		v := float64(i) / 5
		out = append(out, chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}

	return out
}

// gridLines are the plain vertical grid lines at the inner x ticks. Setting
// XAxis.GridLines replaces go-chart's generated grid, so they are supplied
// alongside the threshold markers.
func gridLines() []chart.GridLine {
	ticks := xTicks()
	out := make([]chart.GridLine, 0, len(ticks))
	for _, t := range ticks[1 : len(ticks)-1] {
		out = append(out, chart.GridLine{Value: t.Value})
	}

	return out
}

// RenderPNG draws graph, with a legend, into an image.
func RenderPNG(graph chart.Chart) (image.Image, error) {
	graph.Elements = append(graph.Elements, chart.Legend(&graph))

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}

	return png.Decode(buffer)
}
