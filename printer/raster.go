package printer

import (
	"github.com/nanoprint/escpos/util"
)

// RasterImage describes a packed 1-bit-per-pixel image, row major, MSB
// first within each byte. The caller must supply
// len(Data) == Height * ceil(Width/8); the driver sends whatever it is
// given and leaves a length mismatch to the firmware.
type RasterImage struct {
	Width  uint16 // width in pixels
	Height uint16 // height in pixels
	Data   []byte
}

// WidthBytes returns the row stride in bytes, ceil(Width/8). The raster
// header carries the width in bytes, not pixels.
func (img RasterImage) WidthBytes() int {
	return (int(img.Width) + 7) >> 3
}

// header builds GS v 0 with submode 0: xL xH is the width in bytes,
// yL yH the height in pixels, both little-endian.
func (img RasterImage) header() []byte {
	h := make([]byte, 0, 8)
	h = append(h, gs, 'v', '0', 0x00)
	h = append(h, util.IntLowHigh(img.WidthBytes(), 2)...)
	h = append(h, util.IntLowHigh(int(img.Height), 2)...)
	return h
}

// Image prints a raster bit image. The header and the bitmap go out as two
// separate writes forming one logical operation; if the header write fails
// the bitmap is not sent, and there is no atomicity across the two.
func (p *Printer) Image(img RasterImage) error {
	if err := p.t.Write(img.header()); err != nil {
		return err
	}
	return p.t.Write(img.Data)
}
