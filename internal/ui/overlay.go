//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the simulation.
type Overlay struct {
	size       core.Size
	scale      int
	showBrush  bool
	showPhases bool

	phaseImg *ebiten.Image
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{size: size, scale: scale, showBrush: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays: 4 brush outline, 5 update phases.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showBrush = !o.showBrush
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit5) {
		o.showPhases = !o.showPhases
	}
}

// Draw renders the enabled overlays. cursor is in grid coordinates and may be
// nil when the pointer is outside the view.
func (o *Overlay) Draw(screen *ebiten.Image, cursor *core.Point, radius float64) {
	if o.showPhases {
		o.drawPhases(screen)
	}
	if o.showBrush && cursor != nil {
		for _, p := range brushOutline(*cursor, radius) {
			o.drawCell(screen, p, color.RGBA{R: 255, G: 255, B: 255, A: 160})
		}
	}
}

func (o *Overlay) drawPhases(screen *ebiten.Image) {
	if o.phaseImg == nil {
		buf := make([]byte, 4*o.size.Area())
		fillPhaseRGBA(buf, o.size.W, o.size.H, 56)
		o.phaseImg = ebiten.NewImage(o.size.W, o.size.H)
		o.phaseImg.WritePixels(buf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.phaseImg, op)
}

func (o *Overlay) drawCell(screen *ebiten.Image, p core.Point, col color.RGBA) {
	if !o.size.Contains(p) {
		return
	}
	sx := float64(p.X * o.scale)
	sy := float64((o.size.H - 1 - p.Y) * o.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
