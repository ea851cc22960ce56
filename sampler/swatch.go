package sampler

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/mmuldo/personalcolor/colorspace"
)

const swatchColumns = 4

// WriteSwatches encodes a png grid of size×size blocks, four per row, one per
// color in order.
func WriteSwatches(w io.Writer, colors []colorspace.RGB, size int) error {
	if len(colors) == 0 {
		return &colorspace.InvalidInputError{Reason: "no colors to draw"}
	}
	if size <= 0 {
		return &colorspace.InvalidInputError{Field: "size", Value: float64(size), Reason: "must be positive"}
	}

	cols := swatchColumns
	if len(colors) < cols {
		cols = len(colors)
	}
	rows := (len(colors) + swatchColumns - 1) / swatchColumns

	img := image.NewRGBA(image.Rect(0, 0, cols*size, rows*size))
	for i, c := range colors {
		x, y := (i%swatchColumns)*size, (i/swatchColumns)*size
		block := image.Rect(x, y, x+size, y+size)
		fill := color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
		draw.Draw(img, block, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	}

	return png.Encode(w, img)
}
