package text

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG strikes
	_ "image/png"  // register PNG strikes

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF strikes

	"github.com/gogpu/glyphs"
)

// BestFitStrike picks the bitmap strike for a size in pixels per em: the
// smallest strike at least as large as size, or the largest strike if none
// is. It returns false when sizes is empty.
func BestFitStrike(sizes []font.BitmapSize, size float32) (font.BitmapSize, bool) {
	if len(sizes) == 0 {
		return font.BitmapSize{}, false
	}
	best := -1
	largest := 0
	for i, s := range sizes {
		if s.YPpem > sizes[largest].YPpem {
			largest = i
		}
		if float32(s.YPpem) >= size && (best < 0 || s.YPpem < sizes[best].YPpem) {
			best = i
		}
	}
	if best < 0 {
		best = largest
	}
	return sizes[best], true
}

// RenderColorBitmap renders a glyph from the font's colour bitmap strikes
// (sbix or CBDT holding PNG, JPEG or TIFF data), picking the strike with
// BestFitStrike and resampling it to the scaler's size. Only the alpha
// channel is kept. Bitmaps sit on the pixel grid; no sub-pixel offset is
// applied. It returns nil when the font has no colour bitmap for gid.
// Monochrome EBDT strikes are left to the outline source.
func (s *Scaler) RenderColorBitmap(gid uint16) *GlyphImage {
	if !s.valid() {
		return nil
	}
	strike, ok := BestFitStrike(s.font.font.BitmapSizes(), s.size)
	if !ok || strike.YPpem == 0 {
		return nil
	}

	px, py := s.face.Ppem()
	s.face.SetPpem(strike.XPpem, strike.YPpem)
	bm, ok := s.face.GlyphDataBitmap(tables.GlyphID(gid))
	ext, hasExt := s.face.GlyphExtents(font.GID(gid))
	s.face.SetPpem(px, py)
	if !ok || !isColorBitmap(bm.Format) || bm.Width <= 0 || bm.Height <= 0 {
		return nil
	}

	src, err := decodeBitmap(bm)
	if err != nil {
		glyphs.Logger().Debug("bitmap glyph decode failed",
			"glyph", gid, "format", bm.Format, "err", err)
		return nil
	}

	ratio := s.size / float32(strike.YPpem)
	w := max(int(math32.Round(float32(bm.Width)*ratio)), 1)
	h := max(int(math32.Round(float32(bm.Height)*ratio)), 1)
	if w > maxGlyphDim || h > maxGlyphDim {
		return nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == src.Rect.Dx() && h == src.Rect.Dy() {
		copy(dst.Pix, src.Pix)
	} else {
		draw.BiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	}
	if isBlank(dst.Pix) {
		return nil
	}

	left, top := int32(0), int32(h)
	if hasExt {
		left = int32(math32.Round(ext.XBearing * s.scale))
		top = int32(math32.Round(ext.YBearing * s.scale))
	}
	return &GlyphImage{
		Placement: Placement{
			Left:   left,
			Top:    top,
			Width:  uint32(w), //nolint:gosec // w is bounded [1, maxGlyphDim]
			Height: uint32(h), //nolint:gosec // h is bounded [1, maxGlyphDim]
		},
		Content: ContentMask,
		Data:    dst.Pix,
	}
}

// isColorBitmap reports whether a strike format holds colour image data.
func isColorBitmap(f font.BitmapFormat) bool {
	switch f {
	case font.PNG, font.JPG, font.TIFF:
		return true
	}
	return false
}

// decodeBitmap decodes a colour bitmap glyph to its alpha channel.
func decodeBitmap(bm font.GlyphBitmap) (*image.Alpha, error) {
	if !isColorBitmap(bm.Format) {
		return nil, fmt.Errorf("text: unsupported bitmap format %d", bm.Format)
	}
	img, _, err := image.Decode(bytes.NewReader(bm.Data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	alpha := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(alpha, alpha.Rect, img, b.Min, draw.Src)
	return alpha, nil
}
