// Package sdf computes single-channel signed distance fields from glyph
// coverage masks.
//
// Transform satisfies text.DistanceTransform:
//
//	img, err := text.RenderGlyphImage(fonts, ctx, key)
//	if err != nil {
//	    return err
//	}
//	field, err := text.GenerateDistanceField(img, sdf.Transform)
//
// Distances are computed with the exact Euclidean distance transform of
// Felzenszwalb and Huttenlocher, run twice: once from the inside of the
// glyph and once from the outside. Partial coverage at antialiased edges
// seeds the transforms with sub-pixel distances.
//
// # Encoding
//
// Each output byte is 255 - 255*(d/Radius + Cutoff), clamped, where d is
// the signed distance in pixels (negative inside). With the default cutoff
// of 0.25 the glyph edge encodes as 191, fully inside approaches 255 and
// anything 0.75*Radius or more outside is 0. A shader renders the glyph
// with
//
//	alpha = smoothstep(0.75 - w, 0.75 + w, sample)
package sdf
