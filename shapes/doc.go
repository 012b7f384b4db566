// Package shapes defines the renderable shapes handed to a renderer each
// frame.
//
// A Frame carries the camera and a list of Shapes. Shape is a closed set of
// variants; today the only one is GlyphRun, a line of positioned glyphs
// sharing a model Transform. Renderers dispatch with a type switch and skip
// kinds they do not know:
//
//	for _, s := range frame.Shapes {
//	    switch s := s.(type) {
//	    case *shapes.GlyphRun:
//	        drawRun(s)
//	    }
//	}
package shapes
