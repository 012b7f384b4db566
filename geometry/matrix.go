package geometry

import "github.com/chewxy/math32"

// Matrix4 is a 4x4 transformation matrix stored in column-major order,
// the layout GPU uniform buffers expect:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
//
// Points are column vectors, so a.Mul(b) applies b first.
type Matrix4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation matrix.
func Translate4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale4 returns a scaling matrix.
func Scale4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// At returns the element at row r, column c.
func (m Matrix4) At(r, c int) float32 {
	return m[c*4+r]
}

// Mul returns m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * o[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies m to p with w = 1 and performs the perspective divide.
func (m Matrix4) TransformPoint(p Vector3) Vector3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		x, y, z = x/w, y/w, z/w
	}
	return Vector3{X: x, Y: y, Z: z}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// Perspective returns a right-handed perspective projection with a depth
// range of [0, 1]. fovy is the vertical field of view in degrees.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / math32.Tan(fovy*math32.Pi/360)
	var m Matrix4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
	return m
}

// LookAt returns a right-handed view matrix.
func LookAt(eye, target, up Vector3) Matrix4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
