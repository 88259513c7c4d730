package matter

import (
	"errors"
	"image/color"
	"testing"
)

type scriptedSource struct {
	floats []float64
	calls  int
}

func (s *scriptedSource) Bool() bool { return false }

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.calls%len(s.floats)]
	s.calls++
	return v
}

func TestPackRoundTripsKindAndColor(t *testing.T) {
	col := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	for _, k := range Kinds() {
		c := Pack(col, k)
		if c.Kind() != k {
			t.Fatalf("Pack(%v).Kind() = %v", k, c.Kind())
		}
		if c.Color() != col {
			t.Fatalf("Pack(%v).Color() = %v, expected %v", k, c.Color(), col)
		}
	}
}

func TestDecodeIsTotal(t *testing.T) {
	for b := uint32(KindCount); b <= 0xff; b++ {
		c := Cell(0xaabbcc00 | b)
		if got := c.Kind(); got != Empty {
			t.Fatalf("byte %d decoded to %v, expected empty", b, got)
		}
	}
	if Pack(color.RGBA{}, Kind(200)).Kind() != Empty {
		t.Fatal("Pack must never store an undefined ordinal")
	}
}

func TestZeroCellIsEmptyOnDefaultPalette(t *testing.T) {
	var zero Cell
	if !zero.IsEmpty() {
		t.Fatal("zero cell must be empty")
	}
	if DefaultPalette().EmptyCell() != zero {
		t.Fatalf("default empty cell %#x, expected 0", uint32(DefaultPalette().EmptyCell()))
	}
}

func TestVariatedColorStaysWithinJitter(t *testing.T) {
	src := &scriptedSource{floats: []float64{0, 0.999999, 0.5, 0.25}}
	enc := Encoder{Palette: DefaultPalette(), Jitter: DefaultJitter, Rand: src}
	base := enc.Palette.Color(Sand)
	jitter := DefaultJitter
	limit := int(jitter*255) + 1
	for i := 0; i < 16; i++ {
		got := enc.VariatedColor(Sand)
		for _, pair := range [][2]uint8{{got.R, base.R}, {got.G, base.G}, {got.B, base.B}} {
			d := int(pair[0]) - int(pair[1])
			if d < -limit || d > limit {
				t.Fatalf("channel offset %d exceeds ±%d", d, limit)
			}
		}
	}
}

func TestVariatedColorClamps(t *testing.T) {
	white := DefaultPalette()
	white.colors[Wood] = color.RGBA{R: 250, G: 5, B: 128, A: 0xff}
	enc := Encoder{Palette: white, Jitter: 0.5, Rand: &scriptedSource{floats: []float64{0.999999, 0, 0.5}}}
	got := enc.VariatedColor(Wood)
	if got.R != 255 || got.G != 0 || got.B != 128 {
		t.Fatalf("expected clamped (255,0,128), got %v", got)
	}
}

func TestEmptyIsNeverJittered(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.9}}
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	enc := Encoder{Palette: DefaultPalette().WithBackground(bg), Jitter: 1, Rand: src}
	c := enc.Cell(Empty)
	if c.Color() != bg || c.Kind() != Empty {
		t.Fatalf("unexpected empty cell %v/%v", c.Color(), c.Kind())
	}
	if src.calls != 0 {
		t.Fatalf("empty consumed %d random draws", src.calls)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + k.String() + " ")
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("lava"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if got := Kind(9).String(); got != "kind(9)" {
		t.Fatalf("unexpected name %q", got)
	}
}
