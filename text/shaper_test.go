package text

import (
	"errors"
	"sync"
	"testing"

	"github.com/chewxy/math32"
)

func TestShapeLine_Latin(t *testing.T) {
	fonts, id := loadGoRegular(t)
	shaper := NewShaper()

	line, err := shaper.ShapeLine(fonts, id, "Hi", 100)
	if err != nil {
		t.Fatalf("ShapeLine failed: %v", err)
	}
	if len(line.Glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(line.Glyphs))
	}

	f, _ := fonts.Font(id)
	wantH, _ := f.GlyphIndex('H')
	wantI, _ := f.GlyphIndex('i')
	if line.Glyphs[0].GlyphID != wantH || line.Glyphs[1].GlyphID != wantI {
		t.Errorf("glyph ids = %d, %d; want %d, %d",
			line.Glyphs[0].GlyphID, line.Glyphs[1].GlyphID, wantH, wantI)
	}

	g0, g1 := line.Glyphs[0], line.Glyphs[1]
	if g0.X != 0 {
		t.Errorf("first glyph X = %v, want 0", g0.X)
	}
	if g1.X != g0.X+g0.W {
		t.Errorf("second glyph X = %v, want %v", g1.X, g0.X+g0.W)
	}
	if got := g0.W + g1.W; math32.Abs(got-line.Width) > 1e-3 {
		t.Errorf("Width = %v, want sum of advances %v", line.Width, got)
	}
	for i, g := range line.Glyphs {
		if g.FontID != id || g.FontSize != 100 || g.Y != 0 {
			t.Errorf("glyph %d = %+v, want font %d size 100 on the baseline", i, g, id)
		}
	}
	if line.MaxAscent <= 50 || line.MaxAscent > 150 {
		t.Errorf("MaxAscent = %v, want a plausible ascent at size 100", line.MaxAscent)
	}
	if line.MaxDescent <= 0 || line.MaxDescent > 100 {
		t.Errorf("MaxDescent = %v, want positive", line.MaxDescent)
	}
}

func TestShapeLine_ScalesWithSize(t *testing.T) {
	fonts, id := loadGoRegular(t)
	shaper := NewShaper()

	small, err := shaper.ShapeLine(fonts, id, "Hello", 12)
	if err != nil {
		t.Fatal(err)
	}
	large, err := shaper.ShapeLine(fonts, id, "Hello", 48)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.Width / small.Width
	if ratio < 3.8 || ratio > 4.2 {
		t.Errorf("width ratio = %v, want about 4", ratio)
	}
}

func TestShapeLine_Mixed(t *testing.T) {
	fonts, id := loadGoRegular(t)
	line, err := NewShaper(WithLanguage("he")).ShapeLine(fonts, id, "ab שלום cd", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(line.Glyphs) == 0 {
		t.Fatal("no glyphs")
	}
	for i := 1; i < len(line.Glyphs); i++ {
		if line.Glyphs[i].X < line.Glyphs[i-1].X {
			t.Errorf("glyph %d X = %v precedes glyph %d X = %v",
				i, line.Glyphs[i].X, i-1, line.Glyphs[i-1].X)
		}
	}
}

func TestShapeLine_EdgeCases(t *testing.T) {
	fonts, id := loadGoRegular(t)
	shaper := NewShaper()

	if _, err := shaper.ShapeLine(fonts, id+1, "x", 12); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("unknown font error = %v, want ErrFontNotFound", err)
	}
	for _, tt := range []struct {
		text string
		size float32
	}{
		{"", 12},
		{"x", 0},
		{"x", -3},
	} {
		line, err := shaper.ShapeLine(fonts, id, tt.text, tt.size)
		if err != nil {
			t.Errorf("ShapeLine(%q, %v) error = %v", tt.text, tt.size, err)
		}
		if len(line.Glyphs) != 0 || line.Width != 0 {
			t.Errorf("ShapeLine(%q, %v) = %+v, want empty line", tt.text, tt.size, line)
		}
	}
}

func TestShaper_Concurrency(t *testing.T) {
	fonts, id := loadGoRegular(t)
	shaper := NewShaper()
	want, err := shaper.ShapeLine(fonts, id, "concurrent", 16)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := shaper.ShapeLine(fonts, id, "concurrent", 16)
			if err != nil {
				t.Error(err)
				return
			}
			if got.Width != want.Width || len(got.Glyphs) != len(want.Glyphs) {
				t.Errorf("concurrent shape = %v/%d, want %v/%d",
					got.Width, len(got.Glyphs), want.Width, len(want.Glyphs))
			}
		}()
	}
	wg.Wait()
}

func TestFixedConversion(t *testing.T) {
	for _, v := range []float32{0, 1, 12.5, 100, -3.25} {
		if got := fixedToFloat(floatToFixed(v)); got != v {
			t.Errorf("fixedToFloat(floatToFixed(%v)) = %v", v, got)
		}
	}
}
