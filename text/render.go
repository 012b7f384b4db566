package text

import (
	"github.com/gogpu/glyphs"
)

// Source is one way of producing a glyph image.
type Source uint8

const (
	// SourceColorOutline renders COLR layers with the first palette.
	SourceColorOutline Source = iota

	// SourceColorBitmap renders the best fitting bitmap strike.
	SourceColorBitmap

	// SourceOutline renders the monochrome outline.
	SourceOutline
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceColorOutline:
		return "ColorOutline"
	case SourceColorBitmap:
		return "ColorBitmap"
	case SourceOutline:
		return "Outline"
	default:
		return unknownStr
	}
}

// Sources is the order in which RenderGlyphImage tries the image sources.
var Sources = [...]Source{SourceColorOutline, SourceColorBitmap, SourceOutline}

// RenderGlyphImage renders the glyph identified by key into an alpha mask.
// The font size and sub-pixel offset come from the key and hinting is on.
// Sources are tried in the order of Sources and the first one producing
// pixels wins.
//
// An unknown font id is logged and returns ErrFontNotFound. A glyph with no
// pixels from any source, such as a space, returns ErrNoGlyphImage.
func RenderGlyphImage(fonts FontLookup, ctx *ScaleContext, key CacheKey) (*GlyphImage, error) {
	f, ok := fonts.Font(key.FontID)
	if !ok {
		glyphs.Logger().Warn("glyph image requested for unknown font",
			"font", key.FontID, "glyph", key.GlyphID)
		return nil, ErrFontNotFound
	}

	scaler := ctx.Scaler(f, key.FontSize(), true)
	dx, dy := key.Offset()
	for _, src := range Sources {
		var img *GlyphImage
		switch src {
		case SourceColorOutline:
			img = scaler.RenderColorOutline(key.GlyphID, 0, dx, dy)
		case SourceColorBitmap:
			img = scaler.RenderColorBitmap(key.GlyphID)
		case SourceOutline:
			img = scaler.RenderOutline(key.GlyphID, dx, dy)
		}
		if img != nil {
			glyphs.Logger().Debug("rendered glyph image",
				"font", key.FontID, "glyph", key.GlyphID, "source", src,
				"width", img.Placement.Width, "height", img.Placement.Height)
			return img, nil
		}
	}
	return nil, ErrNoGlyphImage
}
