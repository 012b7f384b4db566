package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when a cache key names a font id that the
	// font lookup does not know.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrNoGlyphImage is returned when none of the image sources produced
	// pixels for a glyph, as is the case for whitespace.
	ErrNoGlyphImage = errors.New("text: glyph has no image")

	// ErrDistanceField is returned when the distance transform fails.
	ErrDistanceField = errors.New("text: distance field generation failed")

	// ErrNotMask is returned by operations that require ContentMask input.
	ErrNotMask = errors.New("text: image content is not an alpha mask")
)

// BufferSizeError reports a buffer whose length does not match the
// dimensions it is supposed to hold.
type BufferSizeError struct {
	Buffer string
	Got    int
	Want   int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("text: %s buffer has %d bytes, want %d", e.Buffer, e.Got, e.Want)
}
