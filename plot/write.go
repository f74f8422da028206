package plot

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/carbocation/gnpthreshold/results"
	"github.com/carbocation/gnpthreshold/threshold"
	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
)

// CombinedFilename is the multi-panel figure written by WriteAll.
const CombinedFilename = "plot_combined.png"

// Output reports what WriteAll produced.
type Output struct {
	// Written holds the paths of every PNG saved, the combined figure last.
	Written []string

	// Skipped holds properties that had no data and therefore no chart of
	// their own.
	Skipped []string
}

// PropertyImage renders the chart of property with its threshold badge.
func PropertyImage(property string, model results.RecordModel, layout Layout) (image.Image, error) {
	graph, err := PropertyChart(property, model, layout)
	if err != nil {
		return nil, err
	}

	img, err := RenderPNG(graph)
	if err != nil {
		return nil, pfx.Err(err)
	}

	m, err := threshold.Lookup(property)
	if err != nil {
		// No theoretical threshold to label
		return img, nil
	}

	label := m.Label
	if !layout.Panel {
		label = "Threshold: " + m.Label
	}

	return AddBadge(img, label, layout), nil
}

// WriteAll saves one chart per property into dir, using the file name from the
// property's threshold model, followed by the combined figure. Properties
// without a model can't be named on disk and only appear in the combined
// figure.
func WriteAll(dir string, model results.RecordModel, properties []string) (Output, error) {
	out := Output{}
	panels := make([]image.Image, 0, len(properties))

	for _, property := range properties {
		panel, err := PropertyImage(property, model, Panel)
		if errors.Is(err, ErrNoData) {
			out.Skipped = append(out.Skipped, property)
			panels = append(panels, emptyPanel(Panel.title(property)))
			continue
		} else if err != nil {
			return out, err
		}
		panels = append(panels, panel)

		m, err := threshold.Lookup(property)
		if err != nil {
			continue
		}

		img, err := PropertyImage(property, model, Full)
		if err != nil {
			return out, err
		}

		path := filepath.Join(dir, m.Filename)
		if err := SavePNG(path, img); err != nil {
			return out, err
		}
		out.Written = append(out.Written, path)
	}

	path := filepath.Join(dir, CombinedFilename)
	if err := SavePNG(path, Combine(panels, CombinedTitle)); err != nil {
		return out, err
	}
	out.Written = append(out.Written, path)

	return out, nil
}

func emptyPanel(title string) image.Image {
	ctx := gg.NewContext(Panel.Width, Panel.Height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetFontFace(fontFace(Panel.FontSize + 4))
	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(title, float64(Panel.Width)/2, 30, 0.5, 0.5)

	ctx.SetRGB(0.5, 0.5, 0.5)
	ctx.DrawStringAnchored("no data", float64(Panel.Width)/2, float64(Panel.Height)/2, 0.5, 0.5)

	return ctx.Image()
}

// SavePNG encodes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return f.Close()
}
