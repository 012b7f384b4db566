// Package glyphs turns shaped lines of text into positioned glyphs and
// resolution-independent glyph images for real-time 3D rendering.
//
// # Overview
//
// The pipeline has four stages:
//
//   - Placement: [text.PlaceGlyphs] quantizes each glyph's position into an
//     integer pixel anchor plus a sub-pixel bin, producing a cache key.
//   - Rendering: [text.RenderGlyphImage] rasterizes a cache key into an
//     8-bit alpha mask, trying color outlines, color bitmaps and plain
//     outlines in that order.
//   - Padding: [text.PadImage] adds a one pixel transparent border.
//   - Distance fields: [text.GenerateDistanceField] converts a mask into a
//     signed distance field through a pluggable transform such as
//     [sdf.Transform].
//
// Positioned glyphs are grouped into a [shapes.GlyphRun] that shares a model
// transform with other shapes of the same frame.
//
// # Quick Start
//
//	fonts := text.NewFontSystem()
//	ids, _ := fonts.LoadFontData(goregular.TTF)
//
//	line, _ := text.NewShaper().ShapeLine(fonts, ids[0], "Hello", 48)
//	placed := text.PlaceGlyphs(line.Glyphs, true)
//
//	ctx := text.NewScaleContext()
//	img, err := text.RenderGlyphImage(fonts, ctx, placed[0].Key)
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package glyphs
