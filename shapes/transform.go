package shapes

import "github.com/gogpu/glyphs/geometry"

// Transform is a model matrix shared by several shapes. It is immutable
// once created, so shapes can hold the same *Transform without copying or
// locking.
type Transform struct {
	m geometry.Matrix4
}

// NewTransform returns a shared handle for m.
func NewTransform(m geometry.Matrix4) *Transform {
	return &Transform{m: m}
}

// IdentityTransform returns a handle for the identity matrix.
func IdentityTransform() *Transform {
	return NewTransform(geometry.Identity4())
}

// Matrix returns the model matrix. A nil Transform is the identity.
func (t *Transform) Matrix() geometry.Matrix4 {
	if t == nil {
		return geometry.Identity4()
	}
	return t.m
}
