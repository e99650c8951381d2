package bake

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Source is a loaded font file. One Source can create faces at any
// number of sizes; the engine keeps exactly one as the active import.
type Source struct {
	data []byte
	font *opentype.Font
	name string
}

// NewSource parses TTF or OTF font data. The data slice is copied
// internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bake: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &Source{data: dataCopy, font: f}
	s.name = familyName(f)
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bake: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name, or an empty string when the font
// does not carry one.
func (s *Source) Name() string { return s.name }

// Data returns the raw font bytes. Callers must not modify the slice.
func (s *Source) Data() []byte { return s.data }

// Face creates a rasterizing face at the given size in pixels.
// The returned face is not safe for concurrent use.
func (s *Source) Face(size float64) (Face, error) {
	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("bake: failed to create face: %w", err)
	}
	return &openTypeFace{face: otFace}, nil
}

// familyName extracts the family name from the parsed font.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FaceMetrics holds font-level vertical metrics in pixels.
type FaceMetrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a
	// line (positive).
	Descent float64

	// LineGap is the extra gap between consecutive lines.
	LineGap float64
}

// LineHeight returns the distance between consecutive baselines.
func (m FaceMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// GlyphImage is one rasterized glyph.
type GlyphImage struct {
	// Mask is the coverage mask, with bounds starting at (0, 0).
	Mask *image.Alpha

	// Bounds places the mask relative to the pen position on the
	// baseline, y growing down: Min.Y is negative for glyphs that
	// rise above the baseline.
	Bounds image.Rectangle

	// Advance is the horizontal pen advance in pixels.
	Advance float64
}

// Face rasterizes the glyphs of one font at one size.
//
// Face is an interface so the baker can be exercised without font
// files; the production implementation wraps an opentype face.
type Face interface {
	// Metrics returns the font-level metrics in pixels.
	Metrics() FaceMetrics

	// HasGlyph reports whether the face can produce r.
	HasGlyph(r rune) bool

	// Rasterize renders r to a coverage mask. ok is false when the
	// font has no glyph for r.
	Rasterize(r rune) (GlyphImage, bool)

	// Close releases face resources. The face must not be used after
	// Close.
	Close() error
}

// openTypeFace implements Face using golang.org/x/image/font/opentype.
type openTypeFace struct {
	face font.Face
}

func (f *openTypeFace) Metrics() FaceMetrics {
	m := f.face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return FaceMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat(m.Height) - ascent - descent,
	}
}

func (f *openTypeFace) HasGlyph(r rune) bool {
	_, ok := f.face.GlyphAdvance(r)
	return ok
}

func (f *openTypeFace) Rasterize(r rune) (GlyphImage, bool) {
	bounds, advance, ok := f.face.GlyphBounds(r)
	if !ok {
		return GlyphImage{}, false
	}

	// Fixed-point bounds to pixels: floor the min, ceil the max.
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()

	w := maxX - minX
	h := maxY - minY
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	if w > 0 && h > 0 {
		drawer := &font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: f.face,
			Dot: fixed.Point26_6{
				X: -bounds.Min.X,
				Y: -bounds.Min.Y,
			},
		}
		drawer.DrawString(string(r))
	}

	return GlyphImage{
		Mask:    mask,
		Bounds:  image.Rect(minX, minY, maxX, maxY),
		Advance: fixedToFloat(advance),
	}, true
}

func (f *openTypeFace) Close() error {
	return f.face.Close()
}

// fixedToFloat converts 26.6 fixed point to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
