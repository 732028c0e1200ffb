package render

import (
	"image/color"

	"lifegrid/pkg/sims/life"
)

// FillRGBA converts packed cell data into RGBA pixels in buf, one pixel per
// cell in row-major order. buf must hold at least 4*cells.Len() bytes.
func FillRGBA(buf []byte, cells life.View, on, off color.Color) {
	onPx := toRGBA(on)
	offPx := toRGBA(off)
	n := cells.Len()
	for w := 0; w < cells.WordCount(); w++ {
		word := cells.Word(w)
		base := w * life.WordBits
		for b := 0; b < life.WordBits && base+b < n; b++ {
			px := offPx
			if word&(1<<uint(b)) != 0 {
				px = onPx
			}
			copy(buf[(base+b)*4:], px[:])
		}
	}
}

func toRGBA(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
