package bake

import (
	"image"
	"image/draw"
	"math"
	"sort"
)

// Baker produces atlases from a font face.
//
// Baker is not safe for concurrent use; the engine drives one bake at
// a time.
type Baker struct {
	face     Face
	faceName string
	kerner   Kerner
}

// BakerOption configures a Baker during creation.
type BakerOption func(*Baker)

// WithFaceName sets the font family name recorded in produced bakes.
func WithFaceName(name string) BakerOption {
	return func(b *Baker) { b.faceName = name }
}

// WithKerner sets the kerning source for produced bakes. Without one,
// bakes carry no kerning pairs.
func WithKerner(k Kerner) BakerOption {
	return func(b *Baker) { b.kerner = k }
}

// NewBaker creates a baker over the given face.
func NewBaker(face Face, opts ...BakerOption) *Baker {
	b := &Baker{face: face}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bake rasterizes the configured character range into a fresh atlas.
//
// The range is packed tallest-first into shelves. When it does not fit
// the requested page, Bake fails with an *AtlasFullError and produces
// no partial result. A zero-length range is rejected here too: the
// engine treats NumChars == 0 as "keep the current bake" and never
// reaches the baker.
func (b *Baker) Bake(cfg Config) (*Bake, error) {
	if b.face == nil {
		return nil, ErrNilFace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	type cell struct {
		r   rune
		img GlyphImage
	}

	runes := cfg.runes()
	cells := make([]cell, 0, len(runes))
	for _, r := range runes {
		if !b.face.HasGlyph(r) {
			continue
		}
		img, ok := b.face.Rasterize(r)
		if !ok {
			continue
		}
		cells = append(cells, cell{r: r, img: img})
	}
	if len(cells) == 0 {
		return nil, ErrNoGlyphs
	}

	// Shelf packing degrades with mixed heights; tallest-first keeps
	// shelves dense. Ties break on rune for deterministic output.
	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		hi := cells[order[i]].img.Bounds.Dy()
		hj := cells[order[j]].img.Bounds.Dy()
		if hi != hj {
			return hi > hj
		}
		return cells[order[i]].r < cells[order[j]].r
	})

	metrics := b.face.Metrics()
	base := int(math.Round(metrics.Ascent))

	atlas := image.NewAlpha(image.Rect(0, 0, cfg.AtlasWidth, cfg.AtlasHeight))
	packer := newShelfPacker(cfg.AtlasWidth, cfg.AtlasHeight, cfg.Padding)
	glyphs := make([]Glyph, 0, len(cells))

	for _, idx := range order {
		c := cells[idx]
		w := c.img.Bounds.Dx()
		h := c.img.Bounds.Dy()

		x, y, ok := packer.pack(w, h)
		if !ok {
			return nil, &AtlasFullError{
				Width:  cfg.AtlasWidth,
				Height: cfg.AtlasHeight,
				Rune:   c.r,
			}
		}

		dst := image.Rect(x, y, x+w, y+h)
		draw.Draw(atlas, dst, c.img.Mask, c.img.Mask.Bounds().Min, draw.Src)

		glyphs = append(glyphs, Glyph{
			Rune:     c.r,
			X:        x,
			Y:        y,
			Width:    w,
			Height:   h,
			XOffset:  c.img.Bounds.Min.X,
			YOffset:  base + c.img.Bounds.Min.Y,
			XAdvance: int(math.Round(c.img.Advance)),
		})
	}

	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i].Rune < glyphs[j].Rune })

	out := &Bake{
		Info: Info{
			Face:    b.faceName,
			Size:    cfg.Size,
			Charset: cfg.CharsetName(),
		},
		Metrics: Metrics{
			LineHeight: int(math.Round(metrics.LineHeight())),
			Base:       base,
		},
		Atlas:     atlas,
		Glyphs:    glyphs,
		FirstChar: cfg.FirstChar,
		NumChars:  cfg.NumChars,
	}
	out.Kernings = b.kernPairs(glyphs)
	return out, nil
}

// kernPairs collects the non-zero kerning adjustments between every
// ordered pair of baked runes. Quadratic in range size, which is fine
// for the sub-thousand ranges bitmap fonts use.
func (b *Baker) kernPairs(glyphs []Glyph) []KernPair {
	if b.kerner == nil {
		return nil
	}
	var pairs []KernPair
	for _, first := range glyphs {
		for _, second := range glyphs {
			amount := int(math.Round(b.kerner.Kern(first.Rune, second.Rune)))
			if amount == 0 {
				continue
			}
			pairs = append(pairs, KernPair{
				First:  first.Rune,
				Second: second.Rune,
				Amount: amount,
			})
		}
	}
	return pairs
}
