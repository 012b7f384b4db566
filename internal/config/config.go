// Package config loads the settings of the glyphdump command from TOML or
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
	xfont "golang.org/x/image/font"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files whose extension is neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds the glyphdump settings. Field names double as TOML and YAML
// keys.
type Config struct {
	// Text is the line to shape.
	Text string `toml:"text" yaml:"text"`

	// Size is the font size in pixels.
	Size float32 `toml:"size" yaml:"size"`

	// Font is the path of a TTF/OTF/TTC file. Empty selects Go Regular.
	Font string `toml:"font" yaml:"font"`

	// Language is the BCP 47 tag passed to the shaper.
	Language string `toml:"language" yaml:"language"`

	// Subpixel enables sub-pixel glyph positioning.
	Subpixel bool `toml:"subpixel" yaml:"subpixel"`

	// DistanceField converts masks into signed distance fields.
	DistanceField bool `toml:"sdf" yaml:"sdf"`

	// Hinting is one of "none", "vertical" or "full".
	Hinting string `toml:"hinting" yaml:"hinting"`

	// SurfaceHeight is the height in pixels of the target surface, used to
	// build the pixel transform of the glyph run.
	SurfaceHeight uint32 `toml:"surface_height" yaml:"surface_height"`

	// Out is the directory PNG files are written to.
	Out string `toml:"out" yaml:"out"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Text:          "Hello, world!",
		Size:          100,
		Language:      "en",
		Hinting:       "vertical",
		SurfaceHeight: 600,
		Out:           "glyphs",
	}
}

// Load reads a config file over the defaults. The format is chosen by the
// file extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(&cfg, filepath.Ext(path), data); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode unmarshals data in the format named by ext into cfg.
func Decode(cfg *Config, ext string, data []byte) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return toml.Unmarshal(data, cfg)
	case "yaml", "yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if !(c.Size > 0) || math32.IsInf(c.Size, 0) {
		return fmt.Errorf("config: size must be positive and finite, got %v", c.Size)
	}
	if _, err := ParseHinting(c.Hinting); err != nil {
		return err
	}
	return nil
}

// HintingMode returns the parsed hinting setting, falling back to
// vertical hinting for an invalid value.
func (c Config) HintingMode() xfont.Hinting {
	h, err := ParseHinting(c.Hinting)
	if err != nil {
		return xfont.HintingVertical
	}
	return h
}

// ParseHinting parses "none", "vertical" or "full". Empty means vertical.
func ParseHinting(s string) (xfont.Hinting, error) {
	switch strings.ToLower(s) {
	case "none":
		return xfont.HintingNone, nil
	case "", "vertical":
		return xfont.HintingVertical, nil
	case "full":
		return xfont.HintingFull, nil
	default:
		return xfont.HintingNone, fmt.Errorf("config: unknown hinting %q", s)
	}
}
