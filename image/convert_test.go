package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blackWhiteRow(t *testing.T, pixels []bool) *image.Gray {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, len(pixels), 1))
	for x, black := range pixels {
		v := uint8(255)
		if black {
			v = 0
		}
		img.SetGray(x, 0, color.Gray{Y: v})
	}
	return img
}

func TestToRasterPacksMSBFirst(t *testing.T) {
	c := &Converter{Threshold: 0.5}

	// Leftmost pixel lands in the high bit.
	img := blackWhiteRow(t, []bool{true, false, true, false, true, false, true, false})
	out := c.ToRaster(img)

	require.Equal(t, uint16(8), out.Width)
	require.Equal(t, uint16(1), out.Height)
	assert.Equal(t, []byte{0xAA}, out.Data)
}

func TestToRasterPadsPartialByte(t *testing.T) {
	c := &Converter{Threshold: 0.5}

	// 10 pixels, all black: 0xFF 0xC0 with 6 trailing pad bits clear.
	img := blackWhiteRow(t, []bool{true, true, true, true, true, true, true, true, true, true})
	out := c.ToRaster(img)

	require.Equal(t, uint16(10), out.Width)
	assert.Equal(t, 2, out.WidthBytes())
	assert.Equal(t, []byte{0xFF, 0xC0}, out.Data)
}

func TestToRasterMultipleRows(t *testing.T) {
	c := &Converter{Threshold: 0.5}

	img := image.NewGray(image.Rect(0, 0, 8, 2))
	for x := 0; x < 8; x++ {
		img.SetGray(x, 0, color.Gray{Y: 0})   // black row
		img.SetGray(x, 1, color.Gray{Y: 255}) // white row
	}

	out := c.ToRaster(img)
	require.Equal(t, uint16(2), out.Height)
	assert.Equal(t, []byte{0xFF, 0x00}, out.Data)
}

func TestToRasterTruncatesToMaxWidth(t *testing.T) {
	c := &Converter{MaxWidth: 8, Threshold: 0.5}

	img := image.NewGray(image.Rect(0, 0, 16, 1))
	for x := 0; x < 16; x++ {
		img.SetGray(x, 0, color.Gray{Y: 0})
	}

	out := c.ToRaster(img)
	assert.Equal(t, uint16(8), out.Width)
	assert.Equal(t, []byte{0xFF}, out.Data)
}

func TestThresholdBoundary(t *testing.T) {
	dark := &Converter{Threshold: 0.9}
	light := &Converter{Threshold: 0.1}

	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 128})

	assert.Equal(t, []byte{0x80}, dark.ToRaster(img).Data, "mid gray below high threshold prints black")
	assert.Equal(t, []byte{0x00}, light.ToRaster(img).Data, "mid gray above low threshold stays white")
}

func TestDataLengthMatchesHeaderContract(t *testing.T) {
	c := &Converter{Threshold: 0.5}

	img := image.NewGray(image.Rect(0, 0, 13, 7))
	out := c.ToRaster(img)

	assert.Equal(t, out.WidthBytes()*int(out.Height), len(out.Data))
}
