// Command glyphdump shapes a line of text, places its glyphs into a glyph
// run and writes the image of every distinct glyph as a PNG file.
//
// Usage:
//
//	glyphdump --text "Hello, world!" --size 100 --sdf --out glyphs
//	glyphdump --config glyphdump.toml
package main

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphs"
	"github.com/gogpu/glyphs/geometry"
	"github.com/gogpu/glyphs/internal/config"
	"github.com/gogpu/glyphs/internal/parallel"
	"github.com/gogpu/glyphs/shapes"
	"github.com/gogpu/glyphs/text"
	"github.com/gogpu/glyphs/text/sdf"
)

// options are the command line flags. Zero values leave the config file
// (or built-in default) untouched.
type options struct {
	Config   string  `long:"config" description:"TOML or YAML settings file"`
	Text     string  `long:"text" description:"line of text to shape"`
	Size     float32 `long:"size" description:"font size in pixels"`
	Font     string  `long:"font" description:"font file (default Go Regular)"`
	Language string  `long:"language" description:"BCP 47 language tag"`
	Hinting  string  `long:"hinting" description:"none, vertical or full"`
	Subpixel bool    `long:"subpixel" description:"position glyphs at sub-pixel offsets"`
	SDF      bool    `long:"sdf" description:"write signed distance fields instead of masks"`
	Out      string  `long:"out" description:"output directory"`
	Workers  int     `long:"workers" default:"4" description:"parallel glyph renderers"`
	Verbose  bool    `short:"v" long:"verbose" description:"debug logging"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	glyphs.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := glyphs.Logger()

	cfg, err := loadConfig(&opts)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if err := run(cfg, max(opts.Workers, 1)); err != nil {
		log.Error("glyphdump failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with the flags.
func loadConfig(opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return cfg, err
		}
	}
	if opts.Text != "" {
		cfg.Text = opts.Text
	}
	if opts.Size != 0 {
		cfg.Size = opts.Size
	}
	if opts.Font != "" {
		cfg.Font = opts.Font
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}
	if opts.Hinting != "" {
		cfg.Hinting = opts.Hinting
	}
	if opts.Out != "" {
		cfg.Out = opts.Out
	}
	cfg.Subpixel = cfg.Subpixel || opts.Subpixel
	cfg.DistanceField = cfg.DistanceField || opts.SDF
	return cfg, cfg.Validate()
}

func run(cfg config.Config, workers int) error {
	log := glyphs.Logger()

	fonts := text.NewFontSystem()
	var ids []text.FontID
	var err error
	if cfg.Font == "" {
		ids, err = fonts.LoadFontData(goregular.TTF)
	} else {
		ids, err = fonts.LoadFontFile(cfg.Font)
	}
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return text.ErrFontNotFound
	}

	line, err := text.NewShaper(text.WithLanguage(cfg.Language)).ShapeLine(fonts, ids[0], cfg.Text, cfg.Size)
	if err != nil {
		return err
	}

	camera := geometry.NewCamera(geometry.Vec3(0, 0, geometry.UnitDistance(geometry.DefaultFovY)), geometry.Vec3(0, 0, 0))
	transform := shapes.NewTransform(camera.PixelMatrix(cfg.SurfaceHeight))
	glyphRun := shapes.GlyphRunFromLine(transform, line, cfg.Subpixel)
	frame := shapes.NewFrame(camera, glyphRun)

	w, h := glyphRun.Metrics.Size()
	log.Info("shaped line", "text", cfg.Text, "glyphs", len(glyphRun.Glyphs),
		"width", w, "height", h, "ascent", glyphRun.Metrics.MaxAscent, "descent", glyphRun.Metrics.MaxDescent)

	if err := os.MkdirAll(cfg.Out, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var transformFn text.DistanceTransform
	if cfg.DistanceField {
		transformFn = sdf.Transform
	}

	keys := frame.Keys()
	written, err := renderKeys(fonts, keys, transformFn, cfg, workers)
	log.Info("wrote glyph images", "dir", cfg.Out, "images", written, "keys", len(keys))
	return err
}

// renderKeys renders keys on a pool of workers, each owning its own
// ImageSource, and writes one PNG per key.
func renderKeys(fonts text.FontLookup, keys []text.CacheKey, transform text.DistanceTransform, cfg config.Config, workers int) (int, error) {
	log := glyphs.Logger()
	pool := parallel.NewImagePool(workers, func() *text.ImageSource {
		return text.NewImageSource(fonts, transform, text.WithHinting(cfg.HintingMode()))
	})
	defer pool.Close()

	var (
		written int
		errs    []error
	)
	for _, r := range pool.RenderAll(keys) {
		err := r.Err
		if errors.Is(err, text.ErrNoGlyphImage) {
			log.Debug("glyph has no image", "glyph", r.Key.GlyphID)
			continue
		}
		if err == nil {
			err = writePNG(filepath.Join(cfg.Out, fileName(r.Key, r.Image)), r.Image)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("glyph %d: %w", r.Key.GlyphID, err))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func fileName(key text.CacheKey, img *text.GlyphImage) string {
	kind := "mask"
	if img.Content == text.ContentDistanceField {
		kind = "sdf"
	}
	return fmt.Sprintf("f%d_g%d_%d_%d_%s.png", key.FontID, key.GlyphID, key.XBin, key.YBin, kind)
}

func writePNG(path string, img *text.GlyphImage) error {
	// #nosec G304 -- path is built from the output directory setting
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.Alpha()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
