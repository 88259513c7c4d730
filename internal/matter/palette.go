package matter

import (
	"image/color"

	"mad-sand/internal/core"
)

// DefaultJitter is the maximum per-channel color offset, as a fraction of full
// scale, applied to newly placed matter.
const DefaultJitter = 0.1

// Palette maps kinds to their canonical colors. Empty uses the background.
type Palette struct {
	colors [KindCount]color.RGBA
}

// DefaultPalette returns the standard colors on a black background.
func DefaultPalette() Palette {
	return Palette{colors: [KindCount]color.RGBA{
		Empty: {A: 0xff},
		Sand:  {R: 0xc2, G: 0xb2, B: 0x80, A: 0xff},
		Wood:  {R: 0xba, G: 0x8c, B: 0x63, A: 0xff},
	}}
}

// WithBackground returns a copy of p whose Empty color is bg.
func (p Palette) WithBackground(bg color.RGBA) Palette {
	bg.A = 0xff
	p.colors[Empty] = bg
	return p
}

// Color returns the canonical color for k. Unknown kinds use the background.
func (p Palette) Color(k Kind) color.RGBA {
	if !k.Valid() {
		return p.colors[Empty]
	}
	return p.colors[k]
}

// EmptyCell is the cell value used to clear a grid.
func (p Palette) EmptyCell() Cell { return Pack(p.colors[Empty], Empty) }

// Encoder builds cells with per-placement color variation.
type Encoder struct {
	Palette Palette
	// Jitter is the maximum offset applied to each channel, in [0, 1].
	Jitter float64
	// Rand supplies the variation. A nil Rand disables jitter.
	Rand core.Source
}

// VariatedColor returns the color of k perturbed independently on each
// channel by up to ±Jitter of full scale. Empty is never perturbed and
// consumes no randomness.
func (e Encoder) VariatedColor(k Kind) color.RGBA {
	c := e.Palette.Color(k)
	if k == Empty || !k.Valid() || e.Rand == nil || e.Jitter <= 0 {
		return c
	}
	c.R = e.jitter(c.R)
	c.G = e.jitter(c.G)
	c.B = e.jitter(c.B)
	return c
}

// Cell returns a new cell of kind k with a freshly varied color.
func (e Encoder) Cell(k Kind) Cell {
	return Pack(e.VariatedColor(k), k)
}

func (e Encoder) jitter(v uint8) uint8 {
	offset := (2*e.Rand.Float64() - 1) * e.Jitter * 255
	f := float64(v) + offset
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f + 0.5)
}
