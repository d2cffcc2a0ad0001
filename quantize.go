package genart

import "github.com/chewxy/math32"

// Quantize converts a channel value in [-1, 1] to an 8-bit intensity:
// (v+1)/2*255 truncated toward zero and saturated to [0, 255].
// NaN maps to 0, +Inf to 255 and -Inf to 0.
func Quantize(v float32) uint8 {
	f := (v + 1) / 2 * 255
	switch {
	case math32.IsNaN(f), f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
