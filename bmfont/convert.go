package bmfont

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/EliasRenko/bmfg/bake"
)

// FromBake converts a bake to its descriptor form, referencing
// pageFile as the single atlas page.
func FromBake(b *bake.Bake, pageFile string) (*File, error) {
	unicode := b.Info.Charset == ""

	code := func(r rune) (int, bool) { return int(r), true }
	if !unicode {
		cm, ok := charsetByName(b.Info.Charset)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, b.Info.Charset)
		}
		code = func(r rune) (int, bool) {
			byt, ok := cm.EncodeRune(r)
			return int(byt), ok
		}
	}

	bounds := b.Atlas.Bounds()
	f := &File{
		Info: Info{
			Face:     b.Info.Face,
			Size:     int(b.Info.Size),
			Charset:  b.Info.Charset,
			Unicode:  unicode,
			StretchH: 100,
			Smooth:   true,
			AA:       1,
		},
		Common: Common{
			LineHeight: b.Metrics.LineHeight,
			Base:       b.Metrics.Base,
			ScaleW:     bounds.Dx(),
			ScaleH:     bounds.Dy(),
			Pages:      1,
		},
		Pages: []string{pageFile},
	}

	for _, g := range b.Glyphs {
		id, ok := code(g.Rune)
		if !ok {
			continue
		}
		f.Chars = append(f.Chars, Char{
			ID:       id,
			X:        g.X,
			Y:        g.Y,
			Width:    g.Width,
			Height:   g.Height,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
			XAdvance: g.XAdvance,
			Page:     0,
			Channel:  15,
		})
	}

	for _, k := range b.Kernings {
		first, ok1 := code(k.First)
		second, ok2 := code(k.Second)
		if !ok1 || !ok2 {
			continue
		}
		f.Kernings = append(f.Kernings, Kerning{
			First:  first,
			Second: second,
			Amount: k.Amount,
		})
	}

	return f, nil
}

// ToBake converts a parsed descriptor plus its atlas page back into a
// bake.
func ToBake(f *File, page image.Image) (*bake.Bake, error) {
	if len(f.Pages) == 0 {
		return nil, ErrNoPages
	}
	if len(f.Pages) > 1 || f.Common.Pages > 1 {
		return nil, ErrMultiPage
	}

	decode := func(id int) (rune, bool) { return rune(id), true }
	if !f.Info.Unicode {
		cm, ok := charsetByName(f.Info.Charset)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, f.Info.Charset)
		}
		decode = func(id int) (rune, bool) {
			if id < 0 || id > 255 {
				return 0, false
			}
			return cm.DecodeByte(byte(id)), true
		}
	}

	b := &bake.Bake{
		Info: bake.Info{
			Face:    f.Info.Face,
			Size:    float64(f.Info.Size),
			Charset: f.Info.Charset,
		},
		Metrics: bake.Metrics{
			LineHeight: f.Common.LineHeight,
			Base:       f.Common.Base,
		},
		Atlas: coverage(page),
	}

	minID, maxID := -1, -1
	for _, c := range f.Chars {
		r, ok := decode(c.ID)
		if !ok {
			continue
		}
		b.Glyphs = append(b.Glyphs, bake.Glyph{
			Rune:     r,
			X:        c.X,
			Y:        c.Y,
			Width:    c.Width,
			Height:   c.Height,
			XOffset:  c.XOffset,
			YOffset:  c.YOffset,
			XAdvance: c.XAdvance,
		})
		if minID < 0 || c.ID < minID {
			minID = c.ID
		}
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	sort.Slice(b.Glyphs, func(i, j int) bool { return b.Glyphs[i].Rune < b.Glyphs[j].Rune })

	for _, k := range f.Kernings {
		first, ok1 := decode(k.First)
		second, ok2 := decode(k.Second)
		if !ok1 || !ok2 {
			continue
		}
		b.Kernings = append(b.Kernings, bake.KernPair{
			First:  first,
			Second: second,
			Amount: k.Amount,
		})
	}

	if minID >= 0 {
		b.FirstChar = minID
		b.NumChars = maxID - minID + 1
	}
	return b, nil
}

// coverage extracts a single-channel coverage mask from a page image.
// Pages written by this package are white with alpha carrying the
// coverage; pages from generators that write opaque white-on-black
// carry it in the color channels instead, so a fully opaque page falls
// back to the red channel.
func coverage(page image.Image) *image.Alpha {
	bounds := page.Bounds()
	out := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	opaque := true
	for y := bounds.Min.Y; y < bounds.Max.Y && opaque; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := page.At(x, y).RGBA(); a < 0xffff {
				opaque = false
				break
			}
		}
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(page.At(x, y)).(color.NRGBA)
			v := c.A
			if opaque {
				v = c.R
			}
			out.SetAlpha(x-bounds.Min.X, y-bounds.Min.Y, color.Alpha{A: v})
		}
	}
	return out
}
