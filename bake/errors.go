package bake

import (
	"errors"
	"fmt"
)

// Sentinel errors for bake package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("bake: empty font data")

	// ErrNilFace is returned when a Baker is created without a face.
	ErrNilFace = errors.New("bake: face is nil")

	// ErrNoGlyphs is returned when no character in the requested range
	// has a glyph in the font.
	ErrNoGlyphs = errors.New("bake: no glyphs in requested range")
)

// ConfigError reports an invalid bake configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "bake: invalid config." + e.Field + ": " + e.Reason
}

// AtlasFullError is returned when the requested character range does
// not fit the requested atlas dimensions. Rune is the first character
// that failed to pack.
type AtlasFullError struct {
	Width  int
	Height int
	Rune   rune
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("bake: atlas %dx%d full at %q", e.Width, e.Height, e.Rune)
}
