package text

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/glyphs/geometry"
)

// LayoutGlyph is a glyph of a shaped line as produced by the shaper.
// Positions are in pixels, x right and y down, relative to the line origin
// on the baseline.
type LayoutGlyph struct {
	FontID   FontID
	GlyphID  uint16
	FontSize float32

	X, Y float32

	// W is the advance width in pixels.
	W float32
}

// PositionedGlyph is a glyph with an integer pixel anchor and a cache key
// carrying the sub-pixel remainder.
type PositionedGlyph struct {
	Key CacheKey

	// HitboxPos is the integer pixel anchor (x, y).
	HitboxPos [2]int32

	// HitboxWidth is the advance width in pixels; it is not quantized.
	HitboxWidth float32
}

// PixelBounds returns the bounds of the pixel at (dx, dy) relative to the
// glyph's anchor.
func (g PositionedGlyph) PixelBounds(dx, dy int32) geometry.Bounds {
	x := float32(g.HitboxPos[0] + dx)
	y := float32(g.HitboxPos[1] + dy)
	return geometry.Bounds{MinX: x, MinY: y, MaxX: x + 1, MaxY: y + 1}
}

// Hitbox returns the glyph's horizontal extent on its anchor row.
func (g PositionedGlyph) Hitbox() geometry.Bounds {
	x := float32(g.HitboxPos[0])
	y := float32(g.HitboxPos[1])
	return geometry.Bounds{MinX: x, MinY: y, MaxX: x + g.HitboxWidth, MaxY: y + 1}
}

// PlaceGlyphs converts layout glyphs into positioned glyphs, preserving
// order. When subpixel is false positions are first rounded to whole pixels
// (half away from zero), so every key carries bin 0.
func PlaceGlyphs(glyphs []LayoutGlyph, subpixel bool) []PositionedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]PositionedGlyph, len(glyphs))
	for i, g := range glyphs {
		x, y := g.X, g.Y
		if !subpixel {
			x, y = math32.Round(x), math32.Round(y)
		}
		key, ix, iy := NewCacheKey(g.FontID, g.GlyphID, g.FontSize, x, y)
		out[i] = PositionedGlyph{
			Key:         key,
			HitboxPos:   [2]int32{ix, iy},
			HitboxWidth: hitboxWidth(g.W),
		}
	}
	return out
}

func hitboxWidth(w float32) float32 {
	if math32.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}
