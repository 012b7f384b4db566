package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedLine is one line of shaped text in visual order.
type ShapedLine struct {
	Glyphs []LayoutGlyph

	// MaxAscent and MaxDescent are the line's extents above and below the
	// baseline, both positive, in pixels.
	MaxAscent  float32
	MaxDescent float32

	// Width is the total advance of the line in pixels.
	Width float32
}

// Shaper shapes single lines of text with HarfBuzz via go-text/typesetting.
//
// Shaper is safe for concurrent use. The HarfbuzzShaper instances are
// pooled since they are not.
type Shaper struct {
	pool   sync.Pool
	config shaperConfig
}

// NewShaper creates a Shaper.
func NewShaper(opts ...ShaperOption) *Shaper {
	config := defaultShaperConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		config: config,
	}
}

// ShapeLine shapes text in font id at size pixels. Bidirectional text is
// split into runs which are shaped separately and laid out left to right.
func (s *Shaper) ShapeLine(fonts FontLookup, id FontID, text string, size float32) (ShapedLine, error) {
	f, ok := fonts.Font(id)
	if !ok {
		return ShapedLine{}, ErrFontNotFound
	}
	runes := []rune(text)
	if len(runes) == 0 || size <= 0 {
		return ShapedLine{}, nil
	}

	// font.Face is not safe for concurrent use; one per call.
	face := font.NewFace(f.font)
	lang := language.NewLanguage(s.config.language)

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var line ShapedLine
	var pen fixed.Int26_6
	for _, seg := range segmentLine(runes) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  seg.Start,
			RunEnd:    seg.End,
			Direction: seg.Direction,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    seg.Script,
			Language:  lang,
		})

		line.MaxAscent = max(line.MaxAscent, fixedToFloat(out.LineBounds.Ascent))
		line.MaxDescent = max(line.MaxDescent, -fixedToFloat(out.LineBounds.Descent))
		line.Glyphs = appendGlyphs(line.Glyphs, out.Glyphs, id, size, &pen)
	}
	line.Width = fixedToFloat(pen)
	return line, nil
}

// appendGlyphs converts shaped glyphs to layout glyphs, advancing pen.
func appendGlyphs(dst []LayoutGlyph, glyphs []shaping.Glyph, id FontID, size float32, pen *fixed.Int26_6) []LayoutGlyph {
	for _, g := range glyphs {
		if g.GlyphID > 0xFFFF {
			*pen += g.XAdvance
			continue
		}
		dst = append(dst, LayoutGlyph{
			FontID:   id,
			GlyphID:  uint16(g.GlyphID),
			FontSize: size,
			X:        fixedToFloat(*pen + g.XOffset),
			// Shaper offsets grow up; layout y grows down.
			Y: -fixedToFloat(g.YOffset),
			W: fixedToFloat(g.XAdvance),
		})
		*pen += g.XAdvance
	}
	return dst
}

// floatToFixed converts a pixel size to fixed.Int26_6.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
