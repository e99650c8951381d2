package bmfg

import "testing"

func TestAtlasLayoutCentersUnscaled(t *testing.T) {
	x, y, scale := atlasLayout(256, 256, 64, 64)
	if scale != 1 {
		t.Errorf("scale = %v, want 1 when the page fits", scale)
	}
	if x != 96 || y != 96 {
		t.Errorf("origin = (%v, %v), want (96, 96)", x, y)
	}
}

func TestAtlasLayoutScalesDown(t *testing.T) {
	_, _, scale := atlasLayout(256, 256, 512, 512)
	want := 224.0 / 512.0
	if scale != want {
		t.Errorf("scale = %v, want %v", scale, want)
	}

	// Never scaled up past 1:1.
	if _, _, scale := atlasLayout(4096, 4096, 64, 64); scale != 1 {
		t.Errorf("scale = %v for a tiny page, want 1", scale)
	}
}

func TestBlinkVisible(t *testing.T) {
	if !blinkVisible(0) {
		t.Error("blink off at clock 0")
	}
	if blinkVisible(0.9) {
		t.Error("blink on in the off phase")
	}
	if !blinkVisible(2.1) {
		t.Error("blink off at the start of a later second")
	}
}

func TestComposeSample(t *testing.T) {
	b := syntheticBake()

	// A(17) + kern(A,B)(-1) + B(16)
	img := composeSample(b, "AB")
	if got := img.Bounds().Dx(); got != 32 {
		t.Errorf("sample width = %d, want 32", got)
	}
	if got := img.Bounds().Dy(); got != b.Metrics.LineHeight {
		t.Errorf("sample height = %d, want %d", got, b.Metrics.LineHeight)
	}

	// 'A' covers its cell; its offsets place the top-left at (1, 2).
	if a := img.NRGBAAt(2, 3).A; a == 0 {
		t.Error("sample has no coverage inside the first glyph")
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Error("sample has coverage outside every glyph")
	}
}

func TestComposeSampleNoGlyphs(t *testing.T) {
	b := syntheticBake()

	img := composeSample(b, "xyz")
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("sample bounds degenerate: %v", img.Bounds())
	}
}
