package shapes

import (
	"github.com/gogpu/glyphs/geometry"
	"github.com/gogpu/glyphs/text"
)

// Frame is what an application hands the renderer each frame: where to
// look from and what to draw.
type Frame struct {
	Camera geometry.Camera
	Shapes []Shape
}

// NewFrame creates a frame viewed through camera.
func NewFrame(camera geometry.Camera, shapes ...Shape) *Frame {
	return &Frame{Camera: camera, Shapes: shapes}
}

// Add appends shapes to the frame.
func (f *Frame) Add(shapes ...Shape) {
	f.Shapes = append(f.Shapes, shapes...)
}

// GlyphRuns returns the frame's glyph runs, skipping other kinds.
func (f *Frame) GlyphRuns() []*GlyphRun {
	var runs []*GlyphRun
	for _, s := range f.Shapes {
		if r, ok := s.(*GlyphRun); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Keys returns the distinct glyph cache keys used by the frame, in
// first-use order. These are the images a renderer needs resident.
func (f *Frame) Keys() []text.CacheKey {
	seen := make(map[text.CacheKey]struct{})
	var keys []text.CacheKey
	for _, r := range f.GlyphRuns() {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
