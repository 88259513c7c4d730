package matter

import "image/color"

// Cell packs a display color and a Kind into one value: red, green and blue
// occupy the three high bytes and the kind ordinal the low byte.
type Cell uint32

const kindMask = 0xff

// Pack combines a color and a kind. Alpha is discarded; cells are opaque.
func Pack(c color.RGBA, k Kind) Cell {
	if !k.Valid() {
		k = Empty
	}
	return Cell(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(k))
}

// Kind decodes the low byte. Ordinals outside the defined set decode to Empty.
func (c Cell) Kind() Kind {
	k := Kind(c & kindMask)
	if !k.Valid() {
		return Empty
	}
	return k
}

// Color returns the opaque display color of the cell.
func (c Cell) Color() color.RGBA {
	return color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: 0xff}
}

// RGBA implements color.Color.
func (c Cell) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// IsEmpty reports whether the cell holds no matter.
func (c Cell) IsEmpty() bool { return c.Kind() == Empty }

// Model converts arbitrary colors into empty cells of that color. It exists so
// views over cell buffers can satisfy image.Image.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if cell, ok := c.(Cell); ok {
		return cell
	}
	return Pack(color.RGBAModel.Convert(c).(color.RGBA), Empty)
})
