package bake

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Maximum atlas edge accepted by Validate. Large enough for any
// realistic bitmap font page, small enough to catch garbage input.
const maxAtlasEdge = 8192

// Config describes one atlas bake.
type Config struct {
	// Size is the font size in pixels.
	Size float64

	// AtlasWidth and AtlasHeight are the atlas page dimensions.
	AtlasWidth  int
	AtlasHeight int

	// FirstChar is the first character code of the baked range.
	// The range covered is [FirstChar, FirstChar+NumChars).
	FirstChar int

	// NumChars is the number of character codes to bake.
	// Zero is valid and means "keep the current bake".
	NumChars int

	// Padding is the pixel gap between glyph cells.
	Padding int

	// Charset optionally interprets character codes as bytes of an
	// 8-bit encoding instead of Unicode code points. When set, the
	// whole range must lie within [0, 256).
	Charset *charmap.Charmap
}

// DefaultConfig returns the engine's default bake for the given font
// size: printable ASCII on a 512x512 page.
func DefaultConfig(size float64) Config {
	return Config{
		Size:        size,
		AtlasWidth:  512,
		AtlasHeight: 512,
		FirstChar:   32,
		NumChars:    95,
		Padding:     1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if c.Size > 1024 {
		return &ConfigError{Field: "Size", Reason: "must be at most 1024"}
	}
	if c.AtlasWidth <= 0 {
		return &ConfigError{Field: "AtlasWidth", Reason: "must be positive"}
	}
	if c.AtlasWidth > maxAtlasEdge {
		return &ConfigError{Field: "AtlasWidth", Reason: "must be at most 8192"}
	}
	if c.AtlasHeight <= 0 {
		return &ConfigError{Field: "AtlasHeight", Reason: "must be positive"}
	}
	if c.AtlasHeight > maxAtlasEdge {
		return &ConfigError{Field: "AtlasHeight", Reason: "must be at most 8192"}
	}
	if c.FirstChar < 0 {
		return &ConfigError{Field: "FirstChar", Reason: "must be non-negative"}
	}
	if c.NumChars < 0 {
		return &ConfigError{Field: "NumChars", Reason: "must be non-negative"}
	}
	if c.Charset == nil && c.FirstChar+c.NumChars > utf8.MaxRune+1 {
		return &ConfigError{Field: "NumChars", Reason: "range exceeds Unicode code space"}
	}
	if c.Charset != nil && c.FirstChar+c.NumChars > 256 {
		return &ConfigError{Field: "Charset", Reason: "8-bit charset range must stay within [0, 256)"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.AtlasWidth/2 || c.Padding >= c.AtlasHeight/2 {
		return &ConfigError{Field: "Padding", Reason: "must be less than half the atlas edge"}
	}
	return nil
}

// CharsetName returns the display name of the configured charset, or
// an empty string when the bake uses Unicode code points directly.
func (c *Config) CharsetName() string {
	if c.Charset == nil {
		return ""
	}
	return c.Charset.String()
}
