package text

import (
	"testing"

	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/google/go-cmp/cmp"
)

func TestPaletteAlpha(t *testing.T) {
	colors := []tables.ColorRecord{
		{Red: 255, Alpha: 255},
		{Green: 255, Alpha: 128},
		{Alpha: 0},
	}
	tests := []struct {
		name  string
		index uint16
		alpha float32
		want  uint32
	}{
		{"opaque entry", 0, 1, 255},
		{"half entry", 1, 1, 128},
		{"transparent entry", 2, 1, 0},
		{"scaled", 0, 0.5, 128},
		{"foreground", foregroundPalette, 1, 255},
		{"out of range", 7, 1, 255},
		{"alpha clamped high", 0, 2, 255},
		{"alpha clamped low", 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paletteAlpha(colors, tt.index, tt.alpha); got != tt.want {
				t.Errorf("paletteAlpha(%d, %v) = %d, want %d", tt.index, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestFixed214(t *testing.T) {
	if got := fixed214(1 << 14); got != 1 {
		t.Errorf("fixed214(1<<14) = %v, want 1", got)
	}
	if got := fixed214(1 << 13); got != 0.5 {
		t.Errorf("fixed214(1<<13) = %v, want 0.5", got)
	}
}

func TestRenderColorOutline_NoColorTables(t *testing.T) {
	fonts, id := loadGoRegular(t)
	f, _ := fonts.Font(id)
	gid, _ := f.GlyphIndex('A')
	if img := NewScaleContext().Scaler(f, 24, true).RenderColorOutline(gid, 0, 0, 0); img != nil {
		t.Error("RenderColorOutline returned an image for a font without COLR")
	}
}

func TestCollectPaint(t *testing.T) {
	fonts, id := loadGoRegular(t)
	f, _ := fonts.Font(id)
	gidH, _ := f.GlyphIndex('H')
	gidO, _ := f.GlyphIndex('O')
	scaler := NewScaleContext().Scaler(f, 32, true)
	colors := []tables.ColorRecord{{Alpha: 255}, {Alpha: 102}}

	t.Run("single opaque layer matches outline", func(t *testing.T) {
		var layers []colorLayer
		paint := tables.PaintColrLayersResolved{{GlyphID: gidH, PaletteIndex: 0}}
		if !scaler.collectPaint(paint, colors, &layers, 0) {
			t.Fatal("collectPaint rejected resolved layers")
		}
		got := scaler.renderLayers(layers, 0, 0)
		want := scaler.RenderOutline(gidH, 0, 0)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("layer image differs from outline (-want +got):\n%s", diff)
		}
	})

	t.Run("translucent layer", func(t *testing.T) {
		var layers []colorLayer
		paint := tables.PaintGlyph{
			Paint:   tables.PaintSolid{PaletteIndex: 1, Alpha: 1 << 14},
			GlyphID: gidO,
		}
		if !scaler.collectPaint(paint, colors, &layers, 0) {
			t.Fatal("collectPaint rejected a solid glyph paint")
		}
		if len(layers) != 1 || layers[0].alpha != 102 {
			t.Fatalf("layers = %+v, want one layer with alpha 102", layers)
		}
		img := scaler.renderLayers(layers, 0, 0)
		if img == nil {
			t.Fatal("renderLayers returned nil")
		}
		for i, v := range img.Data {
			if v > 102 {
				t.Fatalf("pixel %d = %d exceeds layer alpha 102", i, v)
			}
		}
	})

	t.Run("layers composite over", func(t *testing.T) {
		layers := []colorLayer{}
		paint := tables.PaintColrLayersResolved{
			{GlyphID: gidO, PaletteIndex: 1},
			{GlyphID: gidO, PaletteIndex: 1},
		}
		if !scaler.collectPaint(paint, colors, &layers, 0) {
			t.Fatal("collectPaint rejected resolved layers")
		}
		img := scaler.renderLayers(layers, 0, 0)
		maxV := byte(0)
		for _, v := range img.Data {
			maxV = max(maxV, v)
		}
		// 102 over 102 is 102 + 102*153/255.
		if maxV != 163 {
			t.Errorf("max coverage = %d, want 163", maxV)
		}
	})

	t.Run("unsupported paints", func(t *testing.T) {
		for _, paint := range []tables.PaintTable{
			tables.PaintGlyph{Paint: tables.PaintLinearGradient{}, GlyphID: gidH},
			tables.PaintTranslate{},
			tables.PaintComposite{},
		} {
			var layers []colorLayer
			if scaler.collectPaint(paint, colors, &layers, 0) {
				t.Errorf("collectPaint(%T) = true, want false", paint)
			}
		}
	})

	t.Run("depth limit", func(t *testing.T) {
		var layers []colorLayer
		paint := tables.PaintColrLayersResolved{{GlyphID: gidH}}
		if scaler.collectPaint(paint, colors, &layers, maxPaintDepth+1) {
			t.Error("collectPaint ignored the depth limit")
		}
	})
}

func TestRenderColorOutline_Layers(t *testing.T) {
	_, f := loadTestFont(t, "colr-layers.ttf")
	if !f.HasColorGlyphs() {
		t.Fatal("HasColorGlyphs = false for a COLR font")
	}
	gid, _ := f.GlyphIndex('A')

	// 1024 units per em at 64 px is 1/16 px per unit, so both layer
	// squares land on whole pixels.
	img := NewScaleContext().Scaler(f, 64, true).RenderColorOutline(gid, 0, 0, 0)
	if img == nil {
		t.Fatal("RenderColorOutline returned nil for a COLR glyph")
	}
	want := Placement{Left: 8, Top: 48, Width: 48, Height: 48}
	if diff := cmp.Diff(want, img.Placement); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
	if img.Content != ContentMask {
		t.Errorf("Content = %v, want Mask", img.Content)
	}

	tests := []struct {
		name     string
		row, col int
		want     byte
	}{
		{"outer layer at half alpha", 2, 2, 128},
		{"inner layer opaque", 24, 24, 255},
		{"outer layer far corner", 45, 45, 128},
	}
	for _, tt := range tests {
		got := img.Data[tt.row*48+tt.col]
		if d := int(got) - int(tt.want); d < -1 || d > 1 {
			t.Errorf("%s: pixel (%d, %d) = %d, want %d", tt.name, tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRenderColorOutline_PlainGlyph(t *testing.T) {
	_, f := loadTestFont(t, "colr-layers.ttf")
	gid, _ := f.GlyphIndex('B')
	if img := NewScaleContext().Scaler(f, 64, true).RenderColorOutline(gid, 0, 0, 0); img != nil {
		t.Errorf("RenderColorOutline = %+v, want nil for a glyph without layers", img.Placement)
	}
}
