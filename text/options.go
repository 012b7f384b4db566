package text

import (
	xfont "golang.org/x/image/font"
)

// ShaperOption configures a Shaper.
type ShaperOption func(*shaperConfig)

type shaperConfig struct {
	language string
}

func defaultShaperConfig() shaperConfig {
	return shaperConfig{language: "en"}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
// The default is "en".
func WithLanguage(tag string) ShaperOption {
	return func(c *shaperConfig) {
		c.language = tag
	}
}

// ScaleOption configures a ScaleContext.
type ScaleOption func(*scaleConfig)

type scaleConfig struct {
	hinting xfont.Hinting
}

func defaultScaleConfig() scaleConfig {
	return scaleConfig{hinting: xfont.HintingVertical}
}

// WithHinting sets the grid fitting applied to outlines.
// The default is HintingVertical.
func WithHinting(h xfont.Hinting) ScaleOption {
	return func(c *scaleConfig) {
		c.hinting = h
	}
}
