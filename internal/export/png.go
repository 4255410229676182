// Package export writes sampled grids to image and tabular files.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"litemath/internal/profiling"
	"litemath/pkg/heightmap"
)

// PNGOptions controls WritePNG.
type PNGOptions struct {
	Scale int    // integer upscale factor, at least 1
	Label string // drawn in the top-left corner when non-empty
}

// Gray renders the normalized grid as an 8-bit grayscale image, one pixel
// per cell.
func Gray(g *heightmap.Grid) *image.Gray {
	n := g.Normalized()
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(n.At(x, y)*255 + 0.5)})
		}
	}
	return img
}

// WritePNG encodes the grid as a PNG.
func WritePNG(w io.Writer, g *heightmap.Grid, opts PNGOptions) error {
	defer profiling.Track("export.WritePNG")()

	if g.Width == 0 || g.Height == 0 {
		return fmt.Errorf("writing png: empty %dx%d grid", g.Width, g.Height)
	}
	scale := max(opts.Scale, 1)

	src := Gray(g)
	dst := image.NewRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if opts.Label != "" {
		drawLabel(dst, opts.Label)
	}

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// drawLabel prints text on a dark strip so it stays readable over any noise.
func drawLabel(dst draw.Image, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil() + 8
	height := face.Metrics().Height.Ceil() + 6

	strip := image.Rect(0, 0, width, height).Intersect(dst.Bounds())
	draw.Draw(dst, strip, image.NewUniform(color.RGBA{A: 180}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 220, B: 80, A: 255}),
		Face: face,
		Dot:  fixed.P(4, face.Metrics().Ascent.Ceil()+3),
	}
	d.DrawString(text)
}
