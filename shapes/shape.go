package shapes

// Kind identifies the variant of a Shape.
type Kind uint8

// Shape kind constants.
const (
	// KindGlyphRun is a line of positioned glyphs.
	KindGlyphRun Kind = iota
)

// String returns a human-readable name for the shape kind.
func (k Kind) String() string {
	switch k {
	case KindGlyphRun:
		return "GlyphRun"
	default:
		return "Unknown"
	}
}

// Shape is a renderable shape. The set of implementations is closed; the
// unexported method keeps other packages from adding variants.
type Shape interface {
	// Kind returns the shape's variant.
	Kind() Kind

	shape()
}
