package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadGoRegular returns a font system holding Go Regular and its id.
func loadGoRegular(t *testing.T) (*FontSystem, FontID) {
	t.Helper()
	fonts := NewFontSystem()
	ids, err := fonts.LoadFontData(goregular.TTF)
	if err != nil {
		t.Fatalf("LoadFontData failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("LoadFontData returned %d ids, want 1", len(ids))
	}
	return fonts, ids[0]
}

// loadTestFont loads a font from testdata and returns it with its system.
// colr-layers.ttf maps 'A' to a two layer COLR glyph and 'B' to a plain
// square. sbix-strike.ttf maps 'A' to a 16x20 PNG in a 20 ppem strike and
// 'B' to a plain square.
func loadTestFont(t *testing.T, name string) (*FontSystem, *Font) {
	t.Helper()
	fonts := NewFontSystem()
	ids, err := fonts.LoadFontFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("LoadFontFile(%s) failed: %v", name, err)
	}
	f, _ := fonts.Font(ids[0])
	return fonts, f
}

func TestFontSystem_LoadFontData(t *testing.T) {
	fonts, id := loadGoRegular(t)
	if id != 1 {
		t.Errorf("first font id = %d, want 1", id)
	}

	ids, err := fonts.LoadFontData(gobold.TTF)
	if err != nil {
		t.Fatalf("LoadFontData(gobold) failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("second font ids = %v, want [2]", ids)
	}
	if fonts.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fonts.Len())
	}

	f, ok := fonts.Font(id)
	if !ok {
		t.Fatal("Font(1) not found")
	}
	if f.ID() != id {
		t.Errorf("ID() = %d, want %d", f.ID(), id)
	}
	if f.Upem() != 2048 {
		t.Errorf("Upem() = %d, want 2048", f.Upem())
	}
}

func TestFontSystem_Errors(t *testing.T) {
	fonts := NewFontSystem()
	if _, err := fonts.LoadFontData(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("LoadFontData(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := fonts.LoadFontData([]byte("not a font")); err == nil {
		t.Error("LoadFontData(garbage) should fail")
	}
	if fonts.Len() != 0 {
		t.Errorf("Len() = %d after failed loads, want 0", fonts.Len())
	}
	for _, id := range []FontID{0, 1, 99} {
		if _, ok := fonts.Font(id); ok {
			t.Errorf("Font(%d) found in empty system", id)
		}
	}
}

func TestFontSystem_LoadFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	fonts := NewFontSystem()
	ids, err := fonts.LoadFontFile(path)
	if err != nil {
		t.Fatalf("LoadFontFile failed: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("LoadFontFile returned %d ids, want 1", len(ids))
	}

	if _, err := fonts.LoadFontFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("LoadFontFile(missing) should fail")
	}
}

func TestFont_GlyphIndex(t *testing.T) {
	fonts, id := loadGoRegular(t)
	f, _ := fonts.Font(id)

	a, ok := f.GlyphIndex('A')
	if !ok || a == 0 {
		t.Errorf("GlyphIndex('A') = (%d, %v), want a glyph", a, ok)
	}
	b, _ := f.GlyphIndex('B')
	if a == b {
		t.Error("'A' and 'B' map to the same glyph")
	}
	if _, ok := f.GlyphIndex('\U0001F600'); ok {
		t.Error("Go Regular should not map an emoji")
	}
	if f.HasColorGlyphs() {
		t.Error("Go Regular has no color glyphs")
	}
	if f.HasBitmapGlyphs() {
		t.Error("Go Regular has no bitmap strikes")
	}
}

func TestFontSystem_ConcurrentAccess(t *testing.T) {
	fonts, id := loadGoRegular(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := fonts.Font(id); !ok {
				t.Error("Font not found")
			}
			if _, err := fonts.LoadFontData(goregular.TTF); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if fonts.Len() != 9 {
		t.Errorf("Len() = %d, want 9", fonts.Len())
	}
}
