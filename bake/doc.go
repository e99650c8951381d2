// Package bake generates bitmap font atlases.
//
// A bake is a single-channel coverage atlas holding a rasterized range
// of characters from one font at one size, together with the per-glyph
// layout metrics and kerning pairs needed to lay text out from the
// atlas. Bakes are what the engine regenerates on every rebake request
// and what the bmfont package persists to disk.
//
// # Usage
//
//	src, err := bake.NewSourceFromFile("fonts/Roboto-Regular.ttf")
//	if err != nil { ... }
//
//	face, err := src.Face(32)
//	if err != nil { ... }
//	defer face.Close()
//
//	baker := bake.NewBaker(face, bake.WithFaceName(src.Name()))
//	b, err := baker.Bake(bake.DefaultConfig(32))
//	if err != nil { ... }
//
// Glyph rasterization uses golang.org/x/image/font/opentype. Kerning
// pairs are derived by shaping rune pairs through go-text/typesetting
// (see ShapedKerner), which picks up GPOS kerning that the opentype
// rasterizer does not expose.
package bake
