package bake

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Kerner reports the kerning adjustment between two runes, in pixels.
type Kerner interface {
	Kern(first, second rune) float64
}

// ShapedKerner derives kerning by shaping rune pairs through
// go-text/typesetting's HarfBuzz port: the adjustment is the shaped
// advance of the pair minus the advances of the runes shaped alone.
// Unlike the opentype rasterizer's kern table support, this picks up
// GPOS kerning, which is where modern fonts keep it.
//
// ShapedKerner is safe for concurrent use. HarfbuzzShaper instances
// are pooled since they carry mutable state; font.Face instances are
// created per call (they are cheap wrappers over the thread-safe
// *font.Font).
type ShapedKerner struct {
	font *font.Font
	size fixed.Int26_6

	shaperPool sync.Pool

	mu       sync.Mutex
	advances map[rune]fixed.Int26_6
}

// NewShapedKerner parses the font data and prepares a kerner for the
// given size in pixels.
func NewShapedKerner(data []byte, size float64) (*ShapedKerner, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bake: failed to parse font for kerning: %w", err)
	}
	return &ShapedKerner{
		font: face.Font,
		size: fixed.Int26_6(size * 64),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		advances: make(map[rune]fixed.Int26_6),
	}, nil
}

// Kern implements Kerner.
func (k *ShapedKerner) Kern(first, second rune) float64 {
	pair := k.shape([]rune{first, second})
	solo := k.soloAdvance(first) + k.soloAdvance(second)
	return float64(pair-solo) / 64
}

// soloAdvance returns the cached advance of a single shaped rune.
func (k *ShapedKerner) soloAdvance(r rune) fixed.Int26_6 {
	k.mu.Lock()
	adv, ok := k.advances[r]
	k.mu.Unlock()
	if ok {
		return adv
	}

	adv = k.shape([]rune{r})

	k.mu.Lock()
	k.advances[r] = adv
	k.mu.Unlock()
	return adv
}

// shape runs the runes through HarfBuzz and returns the run advance.
func (k *ShapedKerner) shape(runes []rune) fixed.Int26_6 {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(k.font),
		Size:      k.size,
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}

	shaper := k.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	k.shaperPool.Put(shaper)

	return output.Advance
}
