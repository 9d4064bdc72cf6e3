// Package util holds small ESC/POS encoding helpers.
package util

// IntLowHigh splits n into width little-endian bytes, low byte first.
// ESC/POS carries every multi-byte numeric parameter in this order.
// width must be between 1 and 4.
func IntLowHigh(n int, width int) []byte {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[i] = byte(n % 256)
		n /= 256
	}
	return out
}
