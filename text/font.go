package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// Font is a parsed font registered in a FontSystem.
// Font is read-only and safe for concurrent use.
type Font struct {
	id   FontID
	font *font.Font
}

// ID returns the font's id within its FontSystem.
func (f *Font) ID() FontID { return f.id }

// Upem returns the font's units per em.
func (f *Font) Upem() uint16 { return f.font.Upem() }

// GlyphIndex returns the glyph for r, or false if the font does not map it.
func (f *Font) GlyphIndex(r rune) (uint16, bool) {
	gid, ok := f.font.NominalGlyph(r)
	if !ok || gid > 0xFFFF {
		return 0, false
	}
	return uint16(gid), true
}

// HasColorGlyphs reports whether the font carries COLR layers.
func (f *Font) HasColorGlyphs() bool {
	return f.font.COLR != nil && len(f.font.CPAL) > 0
}

// HasBitmapGlyphs reports whether the font carries bitmap strikes.
func (f *Font) HasBitmapGlyphs() bool {
	return len(f.font.BitmapSizes()) > 0
}

// FontLookup resolves font ids to fonts.
type FontLookup interface {
	Font(id FontID) (*Font, bool)
}

// FontSystem owns the loaded fonts and assigns their ids.
//
// FontSystem is safe for concurrent use.
type FontSystem struct {
	mu    sync.RWMutex
	fonts []*Font // fonts[i] has id i+1
}

// NewFontSystem returns an empty font system.
func NewFontSystem() *FontSystem {
	return &FontSystem{}
}

// LoadFontData parses a font file (TTF, OTF or a TTC collection) and
// registers every font it contains. The data slice is not retained beyond
// what the parser keeps.
func (s *FontSystem) LoadFontData(data []byte) ([]FontID, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]FontID, len(faces))
	for i, face := range faces {
		id := FontID(len(s.fonts) + 1) //nolint:gosec // font count stays far below 2^32
		s.fonts = append(s.fonts, &Font{id: id, font: face.Font})
		ids[i] = id
	}
	return ids, nil
}

// LoadFontFile reads and registers a font file from disk.
func (s *FontSystem) LoadFontFile(path string) ([]FontID, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return s.LoadFontData(data)
}

// Font implements FontLookup.
func (s *FontSystem) Font(id FontID) (*Font, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == 0 || int(id) > len(s.fonts) {
		return nil, false
	}
	return s.fonts[id-1], true
}

// Len returns the number of registered fonts.
func (s *FontSystem) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fonts)
}
