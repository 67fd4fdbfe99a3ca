package geom

import "github.com/chewxy/math32"

// Rotation is a 2x2 rotation matrix applied to row vectors:
//
//	| m[0][0]  m[0][1] |   =   |  cos  -sin |
//	| m[1][0]  m[1][1] |       |  sin   cos |
//
// so v·R = (x*cos + y*sin, -x*sin + y*cos).
type Rotation [2][2]float32

// IdentityRotation returns the identity matrix.
func IdentityRotation() Rotation {
	return Rotation{{1, 0}, {0, 1}}
}

// NewRotation returns the rotation matrix for an angle in radians.
func NewRotation(radians float32) Rotation {
	sin := math32.Sin(radians)
	cos := math32.Cos(radians)
	return Rotation{{cos, -sin}, {sin, cos}}
}

// Apply returns the row-vector product v·R.
func (m Rotation) Apply(v Vertex) Vertex {
	return Vertex{
		X: v.X*m[0][0] + v.Y*m[1][0],
		Y: v.X*m[0][1] + v.Y*m[1][1],
	}
}

// Transpose returns the inverse rotation.
func (m Rotation) Transpose() Rotation {
	return Rotation{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// RotateAbout returns center + (v - center)·R.
func (m Rotation) RotateAbout(v, center Vertex) Vertex {
	return center.Add(m.Apply(v.Sub(center)))
}

// IsIdentity checks if this is the identity matrix (within epsilon).
func (m Rotation) IsIdentity() bool {
	const eps = 1e-7
	return math32.Abs(m[0][0]-1) < eps &&
		math32.Abs(m[0][1]) < eps &&
		math32.Abs(m[1][0]) < eps &&
		math32.Abs(m[1][1]-1) < eps
}
