package bmfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for bmfont package.
var (
	// ErrNoPages is returned when a descriptor declares no atlas pages.
	ErrNoPages = errors.New("bmfont: descriptor has no pages")

	// ErrMultiPage is returned when loading a descriptor with more
	// than one page; bakes are single-page.
	ErrMultiPage = errors.New("bmfont: multi-page fonts are not supported")

	// ErrUnknownCharset is returned when a non-Unicode descriptor
	// names a charset this package cannot map back to runes.
	ErrUnknownCharset = errors.New("bmfont: unknown charset")
)

// ParseError reports a malformed descriptor line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bmfont: line %d: %s", e.Line, e.Msg)
}
