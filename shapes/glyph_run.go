package shapes

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/glyphs/geometry"
	"github.com/gogpu/glyphs/text"
)

// GlyphRunMetrics are the integer pixel extents of a run.
type GlyphRunMetrics struct {
	MaxAscent  uint32
	MaxDescent uint32
	Width      uint32
}

// Size returns the run's width and height in pixels.
func (m GlyphRunMetrics) Size() (width, height uint32) {
	return m.Width, m.MaxAscent + m.MaxDescent
}

// MetricsFromLine converts a shaped line's float extents: ascent and
// descent are truncated, width is rounded up.
func MetricsFromLine(line text.ShapedLine) GlyphRunMetrics {
	return GlyphRunMetrics{
		MaxAscent:  toPixels(line.MaxAscent),
		MaxDescent: toPixels(line.MaxDescent),
		Width:      toPixels(math32.Ceil(line.Width)),
	}
}

func toPixels(v float32) uint32 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math32.MaxUint32 {
		return math32.MaxUint32
	}
	return uint32(v)
}

// GlyphRun is a line of glyphs placed with a shared model transform.
// Glyphs are in visual order, left to right.
type GlyphRun struct {
	Transform *Transform
	Metrics   GlyphRunMetrics
	Glyphs    []text.PositionedGlyph
}

// NewGlyphRun assembles a run. The transform is shared, not copied.
func NewGlyphRun(transform *Transform, metrics GlyphRunMetrics, glyphs []text.PositionedGlyph) *GlyphRun {
	return &GlyphRun{
		Transform: transform,
		Metrics:   metrics,
		Glyphs:    glyphs,
	}
}

// GlyphRunFromLine places the glyphs of a shaped line and assembles a run.
func GlyphRunFromLine(transform *Transform, line text.ShapedLine, subpixel bool) *GlyphRun {
	return NewGlyphRun(transform, MetricsFromLine(line), text.PlaceGlyphs(line.Glyphs, subpixel))
}

// Kind implements Shape.
func (*GlyphRun) Kind() Kind { return KindGlyphRun }

func (*GlyphRun) shape() {}

// Bounds returns the run's box in pixel space, y down, with the baseline
// at y = 0.
func (r *GlyphRun) Bounds() geometry.Bounds {
	return geometry.Bounds{
		MinX: 0,
		MinY: -float32(r.Metrics.MaxAscent),
		MaxX: float32(r.Metrics.Width),
		MaxY: float32(r.Metrics.MaxDescent),
	}
}

// Keys returns the distinct cache keys of the run in first-use order.
func (r *GlyphRun) Keys() []text.CacheKey {
	seen := make(map[text.CacheKey]struct{}, len(r.Glyphs))
	keys := make([]text.CacheKey, 0, len(r.Glyphs))
	for _, g := range r.Glyphs {
		if _, ok := seen[g.Key]; ok {
			continue
		}
		seen[g.Key] = struct{}{}
		keys = append(keys, g.Key)
	}
	return keys
}
