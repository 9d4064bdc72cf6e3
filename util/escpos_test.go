package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntLowHigh(t *testing.T) {
	tests := []struct {
		n     int
		width int
		want  []byte
	}{
		{0, 1, []byte{0x00}},
		{1, 2, []byte{0x01, 0x00}},
		{0x0102, 2, []byte{0x02, 0x01}},
		{831, 2, []byte{0x3F, 0x03}},
		{9600, 4, []byte{0x80, 0x25, 0x00, 0x00}},
		{0x01020304, 4, []byte{0x04, 0x03, 0x02, 0x01}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IntLowHigh(tt.n, tt.width), "n=%d width=%d", tt.n, tt.width)
	}
}
