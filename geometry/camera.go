package geometry

import "github.com/chewxy/math32"

// DefaultFovY is the vertical field of view, in degrees, used by NewCamera.
const DefaultFovY = 45

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	Eye    Vector3
	Target Vector3
	Up     Vector3

	// FovY is the vertical field of view in degrees.
	FovY float32

	Near, Far float32
}

// NewCamera returns a camera with a 45° field of view and +Y up.
func NewCamera(eye, target Vector3) Camera {
	return Camera{
		Eye:    eye,
		Target: target,
		Up:     Vec3(0, 1, 0),
		FovY:   DefaultFovY,
		Near:   0.1,
		Far:    100,
	}
}

// UnitDistance returns the distance from the target at which a plane of
// height 2 exactly fills the vertical field of view.
func UnitDistance(fovy float32) float32 {
	return 1 / math32.Tan(fovy*math32.Pi/360)
}

// View returns the world-to-camera matrix.
func (c Camera) View() Matrix4 {
	return LookAt(c.Eye, c.Target, c.Up)
}

// ViewProjection returns the combined projection * view matrix.
func (c Camera) ViewProjection(aspect float32) Matrix4 {
	return Perspective(c.FovY, aspect, c.Near, c.Far).Mul(c.View())
}

// PixelMatrix returns a model matrix that maps pixel units (x right, y down)
// onto the target plane so that one pixel covers one screen pixel of a
// surface surfaceHeight pixels tall. The origin is centered on the target.
// A zero height yields the identity.
func (c Camera) PixelMatrix(surfaceHeight uint32) Matrix4 {
	if surfaceHeight == 0 {
		return Identity4()
	}
	dist := c.Target.Sub(c.Eye).Length()
	visible := 2 * dist * math32.Tan(c.FovY*math32.Pi/360)
	s := visible / float32(surfaceHeight)
	return Translate4(c.Target.X, c.Target.Y, c.Target.Z).Mul(Scale4(s, -s, s))
}
