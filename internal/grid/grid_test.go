package grid

import (
	"image/color"
	"testing"

	"mad-sand/internal/matter"
)

var sand = matter.Pack(color.RGBA{R: 200, G: 180, B: 120, A: 0xff}, matter.Sand)

func TestNewFillsWithEmpty(t *testing.T) {
	bg := matter.Pack(color.RGBA{R: 9, A: 0xff}, matter.Empty)
	g := New(4, 3, bg)
	for i, c := range g.Cells() {
		if c != bg {
			t.Fatalf("cell %d = %#x, expected background", i, uint32(c))
		}
	}
	for i, c := range g.Scratch() {
		if c != bg {
			t.Fatalf("scratch cell %d not initialised", i)
		}
	}
	if len(g.Cells()) != len(g.Scratch()) {
		t.Fatal("buffers must have equal length")
	}
}

func TestNewClampsDimensions(t *testing.T) {
	g := New(0, -3, 0)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := New(3, 3, 0)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, -100}} {
		g.Set(p[0], p[1], sand)
		if got := g.Get(p[0], p[1]); got != g.Empty() {
			t.Fatalf("Get(%v) = %#x, expected empty", p, uint32(got))
		}
	}
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("out-of-bounds Set leaked into cell %d", i)
		}
	}
}

func TestSwapAndSync(t *testing.T) {
	g := New(2, 2, 0)
	g.Set(1, 0, sand)
	g.Swap()
	if g.Get(1, 0) != 0 {
		t.Fatal("after swap current buffer should be the untouched scratch")
	}
	g.Swap()
	g.Sync()
	if g.Scratch()[g.Index(1, 0)] != sand {
		t.Fatal("Sync must copy current into scratch")
	}
}

func TestImageFlipsRows(t *testing.T) {
	g := New(2, 3, 0)
	g.Set(0, 0, sand)
	img := g.Image()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if img.At(0, 2) != sand {
		t.Fatal("bottom-left world cell must be the bottom-left pixel")
	}
	if img.At(0, 0) == sand {
		t.Fatal("top-left pixel must be empty")
	}
	r, _, _, a := img.At(0, 2).RGBA()
	if r>>8 != 200 || a>>8 != 0xff {
		t.Fatalf("unexpected pixel color r=%d a=%d", r>>8, a>>8)
	}
}
