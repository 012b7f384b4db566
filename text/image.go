package text

import (
	"image"
)

// Content tells how the bytes of a GlyphImage are to be interpreted.
type Content uint8

const (
	// ContentMask is 8-bit coverage, 0 outside the glyph and 255 inside.
	ContentMask Content = iota

	// ContentDistanceField is an encoded signed distance to the glyph edge.
	ContentDistanceField
)

// String returns the string representation of the content kind.
func (c Content) String() string {
	switch c {
	case ContentMask:
		return "Mask"
	case ContentDistanceField:
		return "DistanceField"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Placement positions an image relative to the glyph origin on the
// baseline. Left grows right; Top is the distance from the baseline up to
// the first row.
type Placement struct {
	Left   int32
	Top    int32
	Width  uint32
	Height uint32
}

// Area returns Width*Height.
func (p Placement) Area() int {
	return int(p.Width) * int(p.Height)
}

// GlyphImage is a rasterized glyph. Data holds one byte per pixel, rows
// stored top to bottom, and always has Placement.Area() bytes.
type GlyphImage struct {
	Placement Placement
	Content   Content
	Data      []byte
}

// Alpha returns the image as an *image.Alpha sharing Data. The rectangle
// is expressed in pixel space with y down, so the glyph origin is (0, 0).
func (g *GlyphImage) Alpha() *image.Alpha {
	x0 := int(g.Placement.Left)
	y0 := -int(g.Placement.Top)
	return &image.Alpha{
		Pix:    g.Data,
		Stride: int(g.Placement.Width),
		Rect:   image.Rect(x0, y0, x0+int(g.Placement.Width), y0+int(g.Placement.Height)),
	}
}

// At returns the byte at column x, row y of the image.
func (g *GlyphImage) At(x, y int) byte {
	return g.Data[y*int(g.Placement.Width)+x]
}
