package core

import "testing"

func TestPixelConstructors(t *testing.T) {
	p := RGB(10, 20, 30)
	if p.A != 255 {
		t.Errorf("Expected RGB to be opaque, got alpha %d", p.A)
	}
	if !p.Opaque() {
		t.Error("Expected RGB pixel to be opaque")
	}

	q := RGBA(10, 20, 30, 254)
	if q.Opaque() {
		t.Error("Expected alpha 254 to be non-opaque")
	}
	if p == q {
		t.Error("Expected pixels differing only in alpha to be unequal")
	}
	if RGBA(10, 20, 30, 255) != p {
		t.Error("Expected RGBA with full alpha to equal RGB")
	}
}

func TestNamedPixels(t *testing.T) {
	if White != (Pixel{255, 255, 255, 255}) {
		t.Errorf("Expected opaque white, got %+v", White)
	}
	if Black != (Pixel{0, 0, 0, 255}) {
		t.Errorf("Expected opaque black, got %+v", Black)
	}
}

func TestPaletteOrder(t *testing.T) {
	if len(Palette) != 20 {
		t.Fatalf("Expected 20 swatches, got %d", len(Palette))
	}

	checks := map[int]Pixel{
		0:  RGB(0, 0, 0),
		3:  RGB(237, 28, 36),
		9:  RGB(111, 49, 152),
		10: RGB(255, 255, 255),
		19: RGB(181, 165, 213),
	}
	for idx, want := range checks {
		if Palette[idx] != want {
			t.Errorf("Expected swatch %d to be %+v, got %+v", idx, want, Palette[idx])
		}
	}

	for i, p := range Palette {
		if !p.Opaque() {
			t.Errorf("Expected swatch %d to be opaque", i)
		}
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     int
		ok       bool
	}{
		{"first", 0, 0, 0, true},
		{"end of first row", 0, 9, 9, true},
		{"start of second row", 1, 0, 10, true},
		{"last", 1, 9, 19, true},
		{"column past grid", 0, 10, 0, false},
		{"row past grid", 2, 0, 0, false},
		{"negative column", 0, -1, 0, false},
		{"negative row", -1, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Swatch(tt.row, tt.col)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && p != Palette[tt.want] {
				t.Errorf("Expected swatch %d, got %+v", tt.want, p)
			}
		})
	}
}

func TestSwatchIndex(t *testing.T) {
	if idx := SwatchIndex(Palette[13]); idx != 13 {
		t.Errorf("Expected index 13, got %d", idx)
	}
	if idx := SwatchIndex(RGBA(0, 0, 0, 0)); idx != -1 {
		t.Errorf("Expected -1 for transparent pixel, got %d", idx)
	}
}
