package text

import "fmt"

// PadImage returns a copy of a mask image with a one pixel transparent
// border on every side. The placement moves by one pixel left and up so
// the glyph stays where it was.
//
// PadImage panics if img is not a ContentMask image.
func PadImage(img *GlyphImage) *GlyphImage {
	if img.Content != ContentMask {
		panic(fmt.Errorf("%w: PadImage got %v", ErrNotMask, img.Content))
	}
	w := int(img.Placement.Width)
	h := int(img.Placement.Height)
	if len(img.Data) != w*h {
		panic(&BufferSizeError{Buffer: "mask", Got: len(img.Data), Want: w * h})
	}

	pw := w + 2
	data := make([]byte, pw*(h+2))
	for y := 0; y < h; y++ {
		copy(data[(y+1)*pw+1:], img.Data[y*w:(y+1)*w])
	}

	return &GlyphImage{
		Placement: Placement{
			Left:   img.Placement.Left - 1,
			Top:    img.Placement.Top + 1,
			Width:  img.Placement.Width + 2,
			Height: img.Placement.Height + 2,
		},
		Content: ContentMask,
		Data:    data,
	}
}
