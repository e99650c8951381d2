package bake

import (
	"image"
	"sort"
)

// Info describes the font a bake was produced from.
type Info struct {
	// Face is the font family name.
	Face string

	// Size is the font size in pixels.
	Size float64

	// Charset is the display name of the 8-bit charset used to resolve
	// character codes, empty when codes are Unicode code points.
	Charset string
}

// Metrics holds the line metrics of a bake, in pixels.
type Metrics struct {
	// LineHeight is the distance between consecutive baselines.
	LineHeight int

	// Base is the distance from the top of a line to the baseline.
	Base int
}

// Glyph is one baked character: its cell in the atlas page and the
// values needed to place it relative to a pen position.
type Glyph struct {
	// Rune is the character this cell renders.
	Rune rune

	// X, Y, Width, Height locate the cell in the atlas page.
	X, Y, Width, Height int

	// XOffset and YOffset move from the pen position (top of line) to
	// the cell's top-left corner.
	XOffset, YOffset int

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance int
}

// KernPair adjusts the advance between two specific runes.
type KernPair struct {
	First, Second rune
	Amount        int
}

// Bake is one generated glyph atlas with its metrics.
type Bake struct {
	Info    Info
	Metrics Metrics

	// Atlas is the coverage page.
	Atlas *image.Alpha

	// Glyphs is sorted by rune.
	Glyphs []Glyph

	// Kernings holds the non-zero kerning pairs within the baked range.
	Kernings []KernPair

	// FirstChar and NumChars record the requested character range.
	FirstChar, NumChars int
}

// Glyph returns the baked glyph for r.
func (b *Bake) Glyph(r rune) (Glyph, bool) {
	i := sort.Search(len(b.Glyphs), func(i int) bool {
		return b.Glyphs[i].Rune >= r
	})
	if i < len(b.Glyphs) && b.Glyphs[i].Rune == r {
		return b.Glyphs[i], true
	}
	return Glyph{}, false
}

// Kern returns the kerning adjustment between first and second, or 0
// when the pair has none.
func (b *Bake) Kern(first, second rune) int {
	for _, k := range b.Kernings {
		if k.First == first && k.Second == second {
			return k.Amount
		}
	}
	return 0
}

// RGBA expands the coverage page to white-on-transparent RGBA, the
// form used for preview rendering and PNG export.
func (b *Bake) RGBA() *image.NRGBA {
	bounds := b.Atlas.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := b.Atlas.AlphaAt(x, y).A
			i := out.PixOffset(x, y)
			out.Pix[i+0] = 0xff
			out.Pix[i+1] = 0xff
			out.Pix[i+2] = 0xff
			out.Pix[i+3] = a
		}
	}
	return out
}

// Advance returns the pen advance of the string s laid out from the
// bake, kerning included. Runes without a baked glyph contribute
// nothing.
func (b *Bake) Advance(s string) int {
	total := 0
	prev := rune(-1)
	for _, r := range s {
		g, ok := b.Glyph(r)
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			total += b.Kern(prev, r)
		}
		total += g.XAdvance
		prev = r
	}
	return total
}
