package text

import (
	"github.com/go-text/typesetting/font/opentype/tables"
)

// foregroundPalette is the palette index meaning "the text color".
const foregroundPalette = 0xFFFF

// maxPaintDepth bounds PaintColrGlyph recursion.
const maxPaintDepth = 8

// RenderColorOutline rasterizes a COLR glyph using the given CPAL palette.
// Layers are composited by their palette alpha; the color channels are
// dropped since the output is a coverage mask. It returns nil when the font
// has no color layers for gid or uses paints that cannot be flattened to
// solid-filled outlines (gradients, transforms, composites).
func (s *Scaler) RenderColorOutline(gid uint16, palette int, dx, dy float32) *GlyphImage {
	if !s.valid() || !s.font.HasColorGlyphs() {
		return nil
	}
	f := s.font.font
	paint, ok := f.COLR.Search(tables.GlyphID(gid))
	if !ok {
		return nil
	}
	if palette < 0 || palette >= len(f.CPAL) {
		palette = 0
	}

	var layers []colorLayer
	if !s.collectPaint(paint, f.CPAL[palette], &layers, 0) || len(layers) == 0 {
		return nil
	}
	return s.renderLayers(layers, dx, dy)
}

// collectPaint flattens a paint graph into solid layers, appending to out.
// It reports false on any paint it cannot express.
func (s *Scaler) collectPaint(paint tables.PaintTable, colors []tables.ColorRecord, out *[]colorLayer, depth int) bool {
	if depth > maxPaintDepth {
		return false
	}
	switch p := paint.(type) {
	case tables.PaintColrLayersResolved:
		for _, l := range p {
			segs, ok := s.outline(l.GlyphID)
			if !ok {
				continue
			}
			*out = append(*out, colorLayer{segs: segs, alpha: paletteAlpha(colors, l.PaletteIndex, 1)})
		}
		return true

	case tables.PaintColrLayers:
		children, err := s.font.font.COLR.LayerList.Resolve(p)
		if err != nil {
			return false
		}
		for _, child := range children {
			if !s.collectPaint(child, colors, out, depth+1) {
				return false
			}
		}
		return true

	case tables.PaintGlyph:
		alpha, ok := solidAlpha(p.Paint, colors)
		if !ok {
			return false
		}
		if segs, ok := s.outline(p.GlyphID); ok {
			*out = append(*out, colorLayer{segs: segs, alpha: alpha})
		}
		return true

	case tables.PaintColrGlyph:
		child, ok := s.font.font.COLR.Search(tables.GlyphID(p.GlyphID))
		if !ok {
			return false
		}
		return s.collectPaint(child, colors, out, depth+1)

	default:
		return false
	}
}

// solidAlpha returns the opacity of a solid fill paint.
func solidAlpha(paint tables.PaintTable, colors []tables.ColorRecord) (uint32, bool) {
	switch p := paint.(type) {
	case tables.PaintSolid:
		return paletteAlpha(colors, p.PaletteIndex, fixed214(p.Alpha)), true
	case tables.PaintVarSolid:
		return paletteAlpha(colors, p.PaletteIndex, fixed214(p.Alpha)), true
	default:
		return 0, false
	}
}

// paletteAlpha returns the 0..255 opacity of palette entry index scaled by
// alpha. The foreground entry and out of range indices are opaque.
func paletteAlpha(colors []tables.ColorRecord, index uint16, alpha float32) uint32 {
	a := float32(255)
	if index != foregroundPalette && int(index) < len(colors) {
		a = float32(colors[index].Alpha)
	}
	a *= min(max(alpha, 0), 1)
	return uint32(a + 0.5)
}

func fixed214(v tables.Fixed214) float32 {
	return float32(v) / (1 << 14)
}
