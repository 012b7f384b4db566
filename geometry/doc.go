// Package geometry provides the float32 vector, matrix and camera types used
// to place glyph runs in a 3D scene.
package geometry
