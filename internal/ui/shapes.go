package ui

import (
	"math"

	"mad-sand/internal/core"
)

// brushOutline returns the grid cells on the rim of a brush of radius r
// centred on c, one per degree step, without duplicates.
func brushOutline(c core.Point, r float64) []core.Point {
	if r < 0.5 || math.IsNaN(r) {
		return []core.Point{c}
	}
	seen := make(map[core.Point]bool)
	var out []core.Point
	samples := max(16, int(2*math.Pi*r))
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / float64(samples)
		p := core.Pt(c.X+int(math.Round(r*math.Cos(a))), c.Y+int(math.Round(r*math.Sin(a))))
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

var phaseTints = [6][3]uint8{
	{230, 80, 80}, {80, 200, 90}, {80, 120, 230},
	{220, 200, 70}, {190, 90, 210}, {70, 200, 210},
}

// fillPhaseRGBA paints a translucent tint for each of the six update phases
// (x%3, y%2) into buf, with world row 0 at the bottom of the image.
func fillPhaseRGBA(buf []byte, w, h int, alpha uint8) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	a := uint16(alpha)
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w * 4
		for x := 0; x < w; x++ {
			tint := phaseTints[(y%2)*3+x%3]
			base := row + x*4
			// Premultiplied alpha, as ebiten expects.
			buf[base+0] = uint8(uint16(tint[0]) * a / 255)
			buf[base+1] = uint8(uint16(tint[1]) * a / 255)
			buf[base+2] = uint8(uint16(tint[2]) * a / 255)
			buf[base+3] = alpha
		}
	}
}
