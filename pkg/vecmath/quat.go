package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Quat stores the scalar part in W and the vector part in V.
type Quat = mgl32.Quat

// QuatIdentity is the rotation that does nothing.
var QuatIdentity = mgl32.QuatIdent()

var (
	axisX = Vec3{1, 0, 0}
	axisY = Vec3{0, 1, 0}
	axisZ = Vec3{0, 0, 1}
)

// QuatFromEuler converts roll/pitch/yaw (e.X, e.Y, e.Z, radians) into a
// quaternion. The rotations apply about X first, then Y, then Z.
func QuatFromEuler(e Vec3) Quat {
	qx := mgl32.QuatRotate(e[0], axisX)
	qy := mgl32.QuatRotate(e[1], axisY)
	qz := mgl32.QuatRotate(e[2], axisZ)
	return qz.Mul(qy).Mul(qx)
}

// QuatToEuler is the inverse of QuatFromEuler. Pitch is confined to
// [-π/2, π/2]; at the poles roll and yaw are not unique.
func QuatToEuler(q Quat) Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W

	roll := math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	var pitch float32
	sinp := 2 * (w*y - z*x)
	if math32.Abs(sinp) >= 1 {
		pitch = math32.Copysign(math32.Pi/2, sinp)
	} else {
		pitch = math32.Asin(sinp)
	}

	yaw := math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return Vec3{roll, pitch, yaw}
}

// QuatAngleAxis rotates angle radians around axis.
func QuatAngleAxis(angle float32, axis Vec3) Quat {
	return mgl32.QuatRotate(angle, axis.Normalize())
}

// QuatSlerp returns the rotation t of the way from a to b.
func QuatSlerp(a, b Quat, t float32) Quat {
	return mgl32.QuatSlerp(a, b, t)
}

// QuatAddReal adds r to the scalar part of q.
func QuatAddReal(q Quat, r float32) Quat {
	return Quat{W: q.W + r, V: q.V}
}

// QuatNegate negates every component. The result is the same rotation.
func QuatNegate(q Quat) Quat {
	return q.Scale(-1)
}

// QuatEqual reports whether a and b are component-wise equal within
// mgl32's default epsilon.
func QuatEqual(a, b Quat) bool {
	return a.ApproxEqual(b)
}

// QuatToMat4 returns the homogeneous rotation matrix of q.
func QuatToMat4(q Quat) Mat4 {
	return q.Normalize().Mat4()
}
