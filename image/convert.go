// Package image converts Go images into the packed raster form thermal
// printers understand.
package image

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"github.com/nanoprint/escpos/printer"
)

// Converter turns a Go image into packed 1-bit-per-pixel raster data.
type Converter struct {
	// MaxWidth is the printable width of the printer head, in dots.
	// Zero means unconstrained.
	MaxWidth int

	// Threshold is the lightness cutoff between white and black dots,
	// in the range 0..1. Pixels at or below it print black.
	Threshold float64
}

// ToRaster packs img row major, one bit per pixel, leftmost pixel in the
// high bit of each byte. Columns beyond MaxWidth are dropped; use Print to
// scale instead of truncate.
func (c *Converter) ToRaster(img image.Image) printer.RasterImage {
	sz := img.Bounds().Size()

	width := sz.X
	if c.MaxWidth > 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}

	stride := width / 8
	if width%8 != 0 {
		stride++
	}

	data := make([]byte, stride*sz.Y)
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < width; x++ {
			if lightness(img.At(x, y)) <= c.Threshold {
				data[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}

	return printer.RasterImage{
		Width:  uint16(width),
		Height: uint16(sz.Y),
		Data:   data,
	}
}

// Print scales img down to MaxWidth if needed, converts it, and sends it
// through p as a raster bit image.
func (c *Converter) Print(img image.Image, p *printer.Printer) error {
	if c.MaxWidth > 0 && img.Bounds().Dx() > c.MaxWidth {
		img = resize.Resize(uint(c.MaxWidth), 0, img, resize.Lanczos3)
	}
	return p.Image(c.ToRaster(img))
}

// Perceptual channel weights.
const (
	lumR, lumG, lumB = 55, 182, 18
)

func lightness(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return float64(lumR*r+lumG*g+lumB*b) / float64(0xffff*(lumR+lumG+lumB))
}
