package render

import "mad-sand/internal/matter"

// fillCellsRGBA converts packed cells into RGBA pixels in buf. Cell rows are
// stored bottom-up, so row y of the grid becomes image row h-1-y.
func fillCellsRGBA(buf []byte, cells []matter.Cell, w, h int) {
	if w <= 0 || len(cells) != w*h || len(buf) < 4*len(cells) {
		return
	}
	for y := 0; y < h; y++ {
		src := cells[y*w : (y+1)*w]
		dst := buf[(h-1-y)*w*4:]
		for x, c := range src {
			base := x * 4
			dst[base+0] = uint8(c >> 24)
			dst[base+1] = uint8(c >> 16)
			dst[base+2] = uint8(c >> 8)
			dst[base+3] = 0xff
		}
	}
}
