package text

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/vector"
)

// maxGlyphDim bounds the width and height of a rendered glyph image.
// Keys with absurd font sizes render nothing instead of allocating.
const maxGlyphDim = 4096

// ScaleContext holds the mutable state needed to rasterize glyphs: the
// rasterizer, per-font faces and scratch buffers. It is reused across
// renders and must be used by one goroutine at a time.
type ScaleContext struct {
	config scaleConfig
	raster vector.Rasterizer
	faces  map[*font.Font]*font.Face
	layer  []byte
}

// NewScaleContext creates a ScaleContext.
func NewScaleContext(opts ...ScaleOption) *ScaleContext {
	config := defaultScaleConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &ScaleContext{
		config: config,
		faces:  make(map[*font.Font]*font.Face),
	}
}

// Hinting returns the grid fitting the context applies.
func (c *ScaleContext) Hinting() xfont.Hinting {
	return c.config.hinting
}

// face returns the context's face for f. Faces are not safe for concurrent
// use, so they live in the context rather than on the font.
func (c *ScaleContext) face(f *Font) *font.Face {
	face, ok := c.faces[f.font]
	if !ok {
		face = font.NewFace(f.font)
		c.faces[f.font] = face
	}
	return face
}

// Scaler rasterizes the glyphs of one font at one size.
type Scaler struct {
	ctx     *ScaleContext
	font    *Font
	face    *font.Face
	size    float32
	scale   float32 // pixels per font unit
	hinting xfont.Hinting
}

// Scaler returns a scaler for f at size pixels per em.
// The context's hinting applies when hint is true.
func (c *ScaleContext) Scaler(f *Font, size float32, hint bool) *Scaler {
	s := &Scaler{
		ctx:     c,
		font:    f,
		face:    c.face(f),
		size:    size,
		hinting: xfont.HintingNone,
	}
	if upem := f.Upem(); upem > 0 {
		s.scale = size / float32(upem)
	}
	if hint {
		s.hinting = c.config.hinting
	}
	return s
}

// valid reports whether the scaler can produce pixels at all.
func (s *Scaler) valid() bool {
	return s.scale > 0 && !math32.IsInf(s.scale, 0) && !math32.IsNaN(s.scale)
}

// outline returns the glyph's outline segments in font units.
func (s *Scaler) outline(gid uint16) ([]font.Segment, bool) {
	o, ok := s.face.GlyphDataOutline(tables.GlyphID(gid))
	if !ok || len(o.Segments) == 0 {
		return nil, false
	}
	return o.Segments, true
}

// RenderOutline rasterizes the glyph's monochrome outline with the given
// sub-pixel offset (x right, y down). It returns nil when the glyph has no
// outline or the outline covers no pixels.
func (s *Scaler) RenderOutline(gid uint16, dx, dy float32) *GlyphImage {
	if !s.valid() {
		return nil
	}
	segs, ok := s.outline(gid)
	if !ok {
		return nil
	}
	return s.renderLayers([]colorLayer{{segs: segs, alpha: 255}}, dx, dy)
}

// colorLayer is one outline with the opacity it is painted with.
type colorLayer struct {
	segs  []font.Segment
	alpha uint32 // 0..255
}

// renderLayers rasterizes layers into a shared box and composites them
// in order with the source-over rule on coverage.
func (s *Scaler) renderLayers(layers []colorLayer, dx, dy float32) *GlyphImage {
	box, ok := segmentsBounds(layers)
	if !ok {
		return nil
	}
	m := s.pixelMap(box, dx, dy)

	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, l := range layers {
		for _, seg := range l.segs {
			for _, p := range seg.ArgsSlice() {
				x, y := m.apply(p)
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if !finite(minX, minY, maxX, maxY) || maxX-minX > maxGlyphDim || maxY-minY > maxGlyphDim {
		return nil
	}
	x0, y0 := math32.Floor(minX), math32.Floor(minY)
	w := int(math32.Ceil(maxX) - x0)
	h := int(math32.Ceil(maxY) - y0)
	if w <= 0 || h <= 0 || w > maxGlyphDim || h > maxGlyphDim {
		return nil
	}

	n := w * h
	out := make([]byte, n)
	if cap(s.ctx.layer) < n {
		s.ctx.layer = make([]byte, n)
	}
	scratch := s.ctx.layer[:n]

	for _, l := range layers {
		if l.alpha == 0 {
			continue
		}
		clear(scratch)
		s.rasterize(scratch, w, h, l.segs, m, x0, y0)
		for i, c := range scratch {
			cv := uint32(c) * l.alpha / 255
			d := uint32(out[i])
			out[i] = byte(cv + d*(255-cv)/255)
		}
	}

	if isBlank(out) {
		return nil
	}
	return &GlyphImage{
		Placement: Placement{
			Left:   int32(x0),
			Top:    -int32(y0),
			Width:  uint32(w), //nolint:gosec // w is bounded [1, maxGlyphDim]
			Height: uint32(h), //nolint:gosec // h is bounded [1, maxGlyphDim]
		},
		Content: ContentMask,
		Data:    out,
	}
}

// rasterize fills dst (w x h, zeroed) with the coverage of segs.
func (s *Scaler) rasterize(dst []byte, w, h int, segs []font.Segment, m pixelMap, x0, y0 float32) {
	z := &s.ctx.raster
	z.Reset(w, h)
	z.DrawOp = draw.Src

	pt := func(p ot.SegmentPoint) (float32, float32) {
		x, y := m.apply(p)
		return x - x0, y - y0
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := &image.Alpha{Pix: dst, Stride: w, Rect: image.Rect(0, 0, w, h)}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
}

// pixelMap maps font units (y up) to pixel space (y down, origin on the
// baseline): px = ax*x + bx, py = ay*y + by.
type pixelMap struct {
	ax, bx float32
	ay, by float32
}

func (m pixelMap) apply(p ot.SegmentPoint) (float32, float32) {
	return m.ax*p.X + m.bx, m.ay*p.Y + m.by
}

// fontBox is an outline bounding box in font units.
type fontBox struct {
	minX, minY, maxX, maxY float32
}

// pixelMap builds the font-to-pixel mapping for the scaler. With hinting,
// the scaled box edges are snapped to whole pixels (vertical edges for
// HintingVertical, both axes for HintingFull) and the outline is stretched
// uniformly between them. The sub-pixel offset is applied after snapping.
func (s *Scaler) pixelMap(box fontBox, dx, dy float32) pixelMap {
	kx, cx := snapAxis(box.minX*s.scale, box.maxX*s.scale, s.hinting == xfont.HintingFull)
	ky, cy := snapAxis(box.minY*s.scale, box.maxY*s.scale, s.hinting != xfont.HintingNone)
	return pixelMap{
		ax: s.scale * kx,
		bx: cx + dx,
		ay: -s.scale * ky,
		by: -cy + dy,
	}
}

// snapAxis returns the linear remap v' = k*v + c that moves lo and hi to
// whole pixels. Without snapping it is the identity.
func snapAxis(lo, hi float32, snap bool) (k, c float32) {
	if !snap || hi <= lo {
		return 1, 0
	}
	slo := math32.Round(lo)
	shi := math32.Round(hi)
	if shi <= slo {
		shi = slo + 1
	}
	k = (shi - slo) / (hi - lo)
	return k, slo - lo*k
}

// segmentsBounds returns the control box of all layers' segments.
func segmentsBounds(layers []colorLayer) (fontBox, bool) {
	b := fontBox{
		minX: math32.Inf(1), minY: math32.Inf(1),
		maxX: math32.Inf(-1), maxY: math32.Inf(-1),
	}
	found := false
	for _, l := range layers {
		for _, seg := range l.segs {
			for _, p := range seg.ArgsSlice() {
				b.minX, b.maxX = min(b.minX, p.X), max(b.maxX, p.X)
				b.minY, b.maxY = min(b.minY, p.Y), max(b.maxY, p.Y)
				found = true
			}
		}
	}
	return b, found
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func isBlank(data []byte) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}
