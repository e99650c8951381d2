package bmfont

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/EliasRenko/bmfg/bake"
)

// testBake builds a two-glyph bake with a recognizable coverage
// pattern. charset is empty for Unicode bakes.
func testBake(charset string) *bake.Bake {
	atlas := image.NewAlpha(image.Rect(0, 0, 64, 64))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			atlas.SetAlpha(x, y, color.Alpha{A: 0xc0})
		}
	}
	return &bake.Bake{
		Info:    bake.Info{Face: "Test Face", Size: 16, Charset: charset},
		Metrics: bake.Metrics{LineHeight: 24, Base: 19},
		Atlas:   atlas,
		Glyphs: []bake.Glyph{
			{Rune: 'A', X: 0, Y: 0, Width: 16, Height: 16, XOffset: 1, YOffset: 2, XAdvance: 17},
			{Rune: 'B', X: 16, Y: 0, Width: 16, Height: 16, XAdvance: 16},
		},
		Kernings:  []bake.KernPair{{First: 'A', Second: 'B', Amount: -1}},
		FirstChar: 65,
		NumChars:  2,
	}
}

func TestFromBake(t *testing.T) {
	f, err := FromBake(testBake(""), "test_0.png")
	if err != nil {
		t.Fatalf("FromBake failed: %v", err)
	}

	if !f.Info.Unicode {
		t.Error("Info.Unicode = false for a bake without a charset")
	}
	if f.Common.ScaleW != 64 || f.Common.ScaleH != 64 {
		t.Errorf("page scale = %dx%d, want 64x64", f.Common.ScaleW, f.Common.ScaleH)
	}
	if f.Common.Pages != 1 || len(f.Pages) != 1 || f.Pages[0] != "test_0.png" {
		t.Errorf("pages = %d/%v", f.Common.Pages, f.Pages)
	}
	if len(f.Chars) != 2 || f.Chars[0].ID != 65 || f.Chars[1].ID != 66 {
		t.Errorf("Chars = %+v", f.Chars)
	}
	if f.Chars[0].Channel != 15 {
		t.Errorf("Channel = %d, want 15", f.Chars[0].Channel)
	}
	if len(f.Kernings) != 1 || f.Kernings[0].First != 65 {
		t.Errorf("Kernings = %+v", f.Kernings)
	}
}

func TestFromBakeUnknownCharset(t *testing.T) {
	b := testBake("No Such Encoding")
	if _, err := FromBake(b, "x.png"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("FromBake = %v, want ErrUnknownCharset", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, charset := range []string{"", charmap.Windows1252.String()} {
		name := charset
		if name == "" {
			name = "unicode"
		}
		t.Run(name, func(t *testing.T) {
			src := testBake(charset)
			f, err := FromBake(src, "test_0.png")
			if err != nil {
				t.Fatalf("FromBake failed: %v", err)
			}

			got, err := ToBake(f, src.RGBA())
			if err != nil {
				t.Fatalf("ToBake failed: %v", err)
			}

			if got.Info.Face != src.Info.Face || got.Info.Charset != src.Info.Charset {
				t.Errorf("Info = %+v, want %+v", got.Info, src.Info)
			}
			if got.Metrics != src.Metrics {
				t.Errorf("Metrics = %+v, want %+v", got.Metrics, src.Metrics)
			}
			if len(got.Glyphs) != len(src.Glyphs) {
				t.Fatalf("len(Glyphs) = %d, want %d", len(got.Glyphs), len(src.Glyphs))
			}
			for i := range src.Glyphs {
				if got.Glyphs[i] != src.Glyphs[i] {
					t.Errorf("Glyphs[%d] = %+v, want %+v", i, got.Glyphs[i], src.Glyphs[i])
				}
			}
			if len(got.Kernings) != 1 || got.Kernings[0] != src.Kernings[0] {
				t.Errorf("Kernings = %v, want %v", got.Kernings, src.Kernings)
			}
			if got.FirstChar != 65 || got.NumChars != 2 {
				t.Errorf("range = [%d, +%d), want [65, +2)", got.FirstChar, got.NumChars)
			}
			if a := got.Atlas.AlphaAt(4, 4).A; a != 0xc0 {
				t.Errorf("coverage at (4,4) = %#x, want 0xc0", a)
			}
		})
	}
}

func TestToBakeMultiPage(t *testing.T) {
	f := sampleFile()
	f.Pages = []string{"a.png", "b.png"}
	f.Common.Pages = 2

	if _, err := ToBake(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); !errors.Is(err, ErrMultiPage) {
		t.Errorf("ToBake = %v, want ErrMultiPage", err)
	}
}

func TestCoverageOpaqueFallback(t *testing.T) {
	// A generator that writes opaque white-on-black keeps coverage in
	// the color channels.
	page := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			page.SetNRGBA(x, y, color.NRGBA{A: 0xff})
		}
	}
	page.SetNRGBA(1, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	out := coverage(page)
	if got := out.AlphaAt(1, 1).A; got != 0xff {
		t.Errorf("coverage at lit pixel = %#x, want 0xff", got)
	}
	if got := out.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("coverage at dark pixel = %#x, want 0", got)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")

	if err := Save(path, testBake("")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".fnt"); err != nil {
		t.Errorf("descriptor missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out_0.png")); err != nil {
		t.Errorf("page missing: %v", err)
	}

	// Load resolves the page next to the descriptor, with or without
	// the extension on the given path.
	for _, p := range []string{path, path + ".fnt"} {
		b, err := Load(p)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", p, err)
		}
		if len(b.Glyphs) != 2 {
			t.Errorf("loaded %d glyphs, want 2", len(b.Glyphs))
		}
		if a := b.Atlas.AlphaAt(4, 4).A; a != 0xc0 {
			t.Errorf("loaded coverage at (4,4) = %#x, want 0xc0", a)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Load accepted a missing descriptor")
	}
}

func TestCharsetByName(t *testing.T) {
	cm, ok := charsetByName(charmap.Windows1252.String())
	if !ok || cm != charmap.Windows1252 {
		t.Errorf("charsetByName(%q) = (%v, %v)", charmap.Windows1252.String(), cm, ok)
	}
	if _, ok := charsetByName("No Such Encoding"); ok {
		t.Error("charsetByName found an unknown encoding")
	}
}
