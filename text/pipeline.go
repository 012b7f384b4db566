package text

import (
	"errors"

	"github.com/gogpu/glyphs"
)

// ImageSource produces the image for a cache key on a cache miss: it
// renders the glyph and, when a transform is set, converts the mask into a
// distance field. A failing transform falls back to the plain mask.
//
// ImageSource is not safe for concurrent use since it owns a ScaleContext.
type ImageSource struct {
	Fonts     FontLookup
	Context   *ScaleContext
	Transform DistanceTransform
}

// NewImageSource returns an ImageSource with a fresh ScaleContext.
// A nil transform yields plain masks.
func NewImageSource(fonts FontLookup, transform DistanceTransform, opts ...ScaleOption) *ImageSource {
	return &ImageSource{
		Fonts:     fonts,
		Context:   NewScaleContext(opts...),
		Transform: transform,
	}
}

// Image returns the image for key.
func (s *ImageSource) Image(key CacheKey) (*GlyphImage, error) {
	img, err := RenderGlyphImage(s.Fonts, s.Context, key)
	if err != nil {
		return nil, err
	}
	if s.Transform == nil {
		return img, nil
	}

	df, err := GenerateDistanceField(img, s.Transform)
	if err != nil {
		if !errors.Is(err, ErrDistanceField) {
			return nil, err
		}
		glyphs.Logger().Warn("falling back to mask image",
			"font", key.FontID, "glyph", key.GlyphID, "err", err)
		return img, nil
	}
	return df, nil
}
