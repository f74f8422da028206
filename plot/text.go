package plot

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var wheat = [4]float64{245.0 / 255, 222.0 / 255, 179.0 / 255, 0.5}

// fontFace returns go-chart's embedded Roboto at the given size, or a fixed
// bitmap face if it can't be parsed.
func fontFace(points float64) font.Face {
	f, err := chart.GetDefaultFont()
	if err != nil {
		return basicfont.Face7x13
	}

	return truetype.NewFace(f, &truetype.Options{Size: points})
}

// AddBadge writes label in a translucent wheat box anchored to the
// bottom-right corner of the plotting area.
func AddBadge(img image.Image, label string, layout Layout) image.Image {
	ctx := gg.NewContextForImage(img)
	ctx.SetFontFace(fontFace(layout.FontSize + 2))

	const pad = 6.0
	w, h := ctx.MeasureString(label)

	// Clear of the x axis labels and the right padding.
	right := float64(ctx.Width()) - 40
	bottom := float64(ctx.Height()) - 60
	x, y := right-w-2*pad, bottom-h-2*pad

	ctx.SetRGBA(wheat[0], wheat[1], wheat[2], wheat[3])
	ctx.DrawRoundedRectangle(x, y, w+2*pad, h+2*pad, pad)
	ctx.Fill()

	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(label, x+pad, y+pad, 0, 1)

	return ctx.Image()
}

// addTitle centers title in a white band of the given height above img.
func addTitle(img image.Image, title string, band int) image.Image {
	b := img.Bounds()
	ctx := gg.NewContext(b.Dx(), b.Dy()+band)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.DrawImage(img, 0, band)

	ctx.SetFontFace(fontFace(20))
	ctx.SetRGB(0, 0, 0)
	ctx.DrawStringAnchored(title, float64(b.Dx())/2, float64(band)/2, 0.5, 0.5)

	return ctx.Image()
}
