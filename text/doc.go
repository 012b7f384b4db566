// Package text turns shaped text into positioned glyphs and glyph images.
//
// The pipeline follows a separation of concerns:
//
//   - FontSystem: loads fonts and hands out FontIDs
//   - Shaper: shapes one line into LayoutGlyphs (HarfBuzz via go-text)
//   - PlaceGlyphs: quantizes positions into CacheKeys and pixel anchors
//   - ScaleContext: reusable rasterization state, one per goroutine
//   - RenderGlyphImage: renders a CacheKey into an alpha mask
//   - PadImage, GenerateDistanceField: post-process masks for GPU sampling
//
// # Example usage
//
//	fonts := text.NewFontSystem()
//	ids, err := fonts.LoadFontFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line, _ := text.NewShaper().ShapeLine(fonts, ids[0], "Hello, GoGPU!", 48)
//	placed := text.PlaceGlyphs(line.Glyphs, true)
//
//	ctx := text.NewScaleContext()
//	for _, g := range placed {
//	    img, err := text.RenderGlyphImage(fonts, ctx, g.Key)
//	    if errors.Is(err, text.ErrNoGlyphImage) {
//	        continue // whitespace
//	    }
//	    // upload img at g.HitboxPos + (img.Placement.Left, -img.Placement.Top)
//	}
//
// # Image sources
//
// Glyphs are rendered from the first source that produces pixels: COLR
// color layers, then embedded bitmap strikes, then the plain outline. The
// result is always an 8-bit coverage mask.
package text
