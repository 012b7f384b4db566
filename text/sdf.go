package text

import (
	"fmt"

	"github.com/gogpu/glyphs"
)

// DistanceFieldPad is the margin, in pixels, that a distance field image
// adds on every side of the glyph mask. It also bounds the distance the
// field can encode.
const DistanceFieldPad = 6

// DistanceTransform computes a distance field.
//
// src is a padded mask of (width+2)*(height+2) bytes, where width and height
// are the dimensions of the mask before padding. dst has
// (width+2*DistanceFieldPad)*(height+2*DistanceFieldPad) bytes and must be
// filled completely. The transform reports false on failure and must not
// retain either slice.
type DistanceTransform func(dst, src []byte, width, height int) bool

// DistanceFieldSize returns the dimensions of the distance field generated
// for a width x height mask.
func DistanceFieldSize(width, height uint32) (uint32, uint32) {
	return width + 2*DistanceFieldPad, height + 2*DistanceFieldPad
}

// GenerateDistanceField converts a mask image into a distance field image.
// The mask is padded once, handed to transform, and the result is placed
// DistanceFieldPad pixels further out than the mask.
//
// On failure the error wraps ErrDistanceField and no image is returned.
// GenerateDistanceField panics if img is not a ContentMask image, and with
// a *BufferSizeError if its data does not match its placement.
func GenerateDistanceField(img *GlyphImage, transform DistanceTransform) (*GlyphImage, error) {
	if img.Content != ContentMask {
		panic(fmt.Errorf("%w: GenerateDistanceField got %v", ErrNotMask, img.Content))
	}
	w := int(img.Placement.Width)
	h := int(img.Placement.Height)
	if len(img.Data) != w*h {
		panic(&BufferSizeError{Buffer: "mask", Got: len(img.Data), Want: w * h})
	}

	padded := PadImage(img)

	ow, oh := DistanceFieldSize(img.Placement.Width, img.Placement.Height)
	n := int(ow) * int(oh)
	dst := make([]byte, n)

	if !runTransform(transform, dst[:n:n], padded.Data, w, h) {
		glyphs.Logger().Warn("distance transform failed",
			"width", w, "height", h)
		return nil, ErrDistanceField
	}

	return &GlyphImage{
		Placement: Placement{
			Left:   img.Placement.Left - DistanceFieldPad,
			Top:    img.Placement.Top + DistanceFieldPad,
			Width:  ow,
			Height: oh,
		},
		Content: ContentDistanceField,
		Data:    dst,
	}, nil
}

// runTransform calls transform, treating a panic as failure.
func runTransform(transform DistanceTransform, dst, src []byte, w, h int) (ok bool) {
	if transform == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			glyphs.Logger().Warn("distance transform panicked", "panic", r)
			ok = false
		}
	}()
	return transform(dst, src, w, h)
}
