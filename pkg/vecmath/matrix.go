package vecmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is column major, like OpenGL.
type Mat4 = mgl32.Mat4

// Mat4Identity is the 4x4 identity matrix.
var Mat4Identity = mgl32.Ident4()

// LookAt builds a view matrix looking from eye towards center.
func LookAt(eye, center, up Vec3) Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Perspective builds a projection matrix. fov is the vertical field of view
// in degrees.
func Perspective(fov, aspect, near, far float32) Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

// Rotate returns a rotation of angle radians around axis.
func Rotate(angle float32, axis Vec3) Mat4 {
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}

func Translate(t Vec3) Mat4 { return mgl32.Translate3D(t[0], t[1], t[2]) }

func Scale(s Vec3) Mat4 { return mgl32.Scale3D(s[0], s[1], s[2]) }

// MulPoint transforms p as a point (w = 1) and divides by the resulting w.
func MulPoint(m Mat4, p Vec3) Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// MulVec4 transforms v by m.
func MulVec4(m Mat4, v Vec4) Vec4 {
	return m.Mul4x1(v)
}
