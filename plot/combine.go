package plot

import (
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

const (
	// CombinedTitle heads the multi-panel figure.
	CombinedTitle = "Random Graph Properties: Threshold Effects in G(n,p)"

	CombinedColumns = 3
	CombinedRows    = 2

	titleBand = 60
)

// Combine tiles panels row by row into a CombinedRows x CombinedColumns grid
// under title. Nil panels, and cells past the last panel, stay blank. Every
// cell is sized to the Panel layout.
func Combine(panels []image.Image, title string) image.Image {
	width := float64(CombinedColumns * Panel.Width)
	height := float64(CombinedRows * Panel.Height)

	// One canvas unit per pixel.
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	for i, panel := range panels {
		if i >= CombinedColumns*CombinedRows {
			break
		}
		if panel == nil {
			continue
		}

		col, row := i%CombinedColumns, i/CombinedColumns

		// The canvas origin is bottom-left.
		x := float64(col * Panel.Width)
		y := height - float64((row+1)*Panel.Height)

		ctx.DrawImage(x, y, panel, 1)
	}

	img := rasterizer.Draw(c, canvas.Resolution(1), canvas.DefaultColorSpace)

	return addTitle(img, title, titleBand)
}
