package text

import (
	"math"

	"github.com/chewxy/math32"
)

// SubpixelBins is the number of sub-pixel positions per axis.
// Offsets are 0, 0.25, 0.5 and 0.75 of a pixel.
const SubpixelBins = 4

// SubpixelBin is the quantized fractional part of a glyph position.
type SubpixelBin uint8

// Float returns the pixel offset the bin stands for.
func (b SubpixelBin) Float() float32 {
	return float32(b) / SubpixelBins
}

// FontID identifies a font within a FontSystem. Zero is never assigned.
type FontID uint32

// CacheKey identifies one renderable glyph image: a glyph of a font at a
// size and sub-pixel offset. Equal keys render to identical images.
type CacheKey struct {
	FontID  FontID
	GlyphID uint16

	// FontSizeBits is the IEEE-754 bit pattern of the font size in pixels,
	// so that the key stays comparable and hashable.
	FontSizeBits uint32

	XBin SubpixelBin
	YBin SubpixelBin
}

// NewCacheKey quantizes the position (x, y) and returns the key together
// with the integer pixel anchor.
func NewCacheKey(font FontID, glyph uint16, size float32, x, y float32) (CacheKey, int32, int32) {
	ix, xbin := Quantize(x)
	iy, ybin := Quantize(y)
	return CacheKey{
		FontID:       font,
		GlyphID:      glyph,
		FontSizeBits: math.Float32bits(size),
		XBin:         xbin,
		YBin:         ybin,
	}, ix, iy
}

// FontSize returns the font size in pixels.
func (k CacheKey) FontSize() float32 {
	return math.Float32frombits(k.FontSizeBits)
}

// Offset returns the sub-pixel offset (x right, y down) to apply when
// rendering the key.
func (k CacheKey) Offset() (float32, float32) {
	return k.XBin.Float(), k.YBin.Float()
}

// Quantize splits a position into its integer part (the floor) and the
// sub-pixel bin of the remaining fraction.
//
// For example:
//   - pos=10.0 returns (10, 0)
//   - pos=10.25 returns (10, 1)
//   - pos=10.9 returns (10, 3)
//   - pos=-0.1 returns (-1, 3)
//
// NaN maps to (0, 0); values outside the int32 range saturate.
func Quantize(pos float32) (int32, SubpixelBin) {
	if math32.IsNaN(pos) {
		return 0, 0
	}
	ip := math32.Floor(pos)
	switch {
	case ip >= math.MaxInt32:
		return math.MaxInt32, 0
	case ip <= math.MinInt32:
		return math.MinInt32, 0
	}

	bin := int((pos - ip) * SubpixelBins)
	if bin >= SubpixelBins {
		bin = SubpixelBins - 1
	}
	if bin < 0 {
		bin = 0
	}
	return int32(ip), SubpixelBin(bin) //nolint:gosec // bin is bounded [0, SubpixelBins-1]
}
