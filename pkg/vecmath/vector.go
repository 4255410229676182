// Package vecmath adds the vector, matrix and quaternion helpers the rest of
// the library expects on top of mathgl's float32 types.
package vecmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"litemath/pkg/mathf"
)

type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
)

func Vec2Up(s float32) Vec2    { return Vec2{0, s} }
func Vec2Down(s float32) Vec2  { return Vec2{0, -s} }
func Vec2Left(s float32) Vec2  { return Vec2{-s, 0} }
func Vec2Right(s float32) Vec2 { return Vec2{s, 0} }
func Vec2One(s float32) Vec2   { return Vec2{s, s} }

func Vec3Up(s float32) Vec3      { return Vec3{0, s, 0} }
func Vec3Down(s float32) Vec3    { return Vec3{0, -s, 0} }
func Vec3Left(s float32) Vec3    { return Vec3{-s, 0, 0} }
func Vec3Right(s float32) Vec3   { return Vec3{s, 0, 0} }
func Vec3Forward(s float32) Vec3 { return Vec3{0, 0, s} }
func Vec3Back(s float32) Vec3    { return Vec3{0, 0, -s} }
func Vec3One(s float32) Vec3     { return Vec3{s, s, s} }

// Vec4Zero is the origin as a point (w = 1).
var Vec4Zero = Vec4{0, 0, 0, 1}

// The Vec4 direction helpers put the scalar in w as well.
func Vec4Up(s float32) Vec4      { return Vec4{0, s, 0, s} }
func Vec4Down(s float32) Vec4    { return Vec4{0, -s, 0, s} }
func Vec4Left(s float32) Vec4    { return Vec4{-s, 0, 0, s} }
func Vec4Right(s float32) Vec4   { return Vec4{s, 0, 0, s} }
func Vec4Forward(s float32) Vec4 { return Vec4{0, 0, s, s} }
func Vec4Back(s float32) Vec4    { return Vec4{0, 0, -s, s} }
func Vec4One(s float32) Vec4     { return Vec4{s, s, s, s} }

// Lerp2 returns the point t of the way from a to b. t is not clamped.
func Lerp2(a, b Vec2, t float32) Vec2 {
	return Vec2{mathf.Lerp(a[0], b[0], t), mathf.Lerp(a[1], b[1], t)}
}

// Lerp3 returns the point t of the way from a to b. t is not clamped.
func Lerp3(a, b Vec3, t float32) Vec3 {
	return Vec3{mathf.Lerp(a[0], b[0], t), mathf.Lerp(a[1], b[1], t), mathf.Lerp(a[2], b[2], t)}
}

// Lerp4 returns the point t of the way from a to b. t is not clamped.
func Lerp4(a, b Vec4, t float32) Vec4 {
	return Vec4{
		mathf.Lerp(a[0], b[0], t),
		mathf.Lerp(a[1], b[1], t),
		mathf.Lerp(a[2], b[2], t),
		mathf.Lerp(a[3], b[3], t),
	}
}

func LerpClamped2(a, b Vec2, t float32) Vec2 { return Lerp2(a, b, mathf.Clamp01(t)) }
func LerpClamped3(a, b Vec3, t float32) Vec3 { return Lerp3(a, b, mathf.Clamp01(t)) }
func LerpClamped4(a, b Vec4, t float32) Vec4 { return Lerp4(a, b, mathf.Clamp01(t)) }

// Max3 is the component-wise maximum.
func Max3(a, b Vec3) Vec3 {
	return Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// Min3 is the component-wise minimum.
func Min3(a, b Vec3) Vec3 {
	return Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func Max4(a, b Vec4) Vec4 {
	return Vec4{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

func Min4(a, b Vec4) Vec4 {
	return Vec4{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

func Distance2(a, b Vec2) float32 { return b.Sub(a).Len() }
func Distance3(a, b Vec3) float32 { return b.Sub(a).Len() }
func Distance4(a, b Vec4) float32 { return b.Sub(a).Len() }

// MoveTowards3 moves current towards target by at most maxDelta and never
// overshoots.
func MoveTowards3(current, target Vec3, maxDelta float32) Vec3 {
	d := target.Sub(current)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(d.Mul(maxDelta / dist))
}

// ClampMagnitude3 shortens v to maxLen if it is longer.
func ClampMagnitude3(v Vec3, maxLen float32) Vec3 {
	if v.LenSqr() > maxLen*maxLen {
		return v.Normalize().Mul(maxLen)
	}
	return v
}

// Angle3 returns the unsigned angle between a and b in radians.
func Angle3(a, b Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}
	return math32.Acos(mathf.Clamp(a.Dot(b)/denom, -1, 1))
}

// Project3 projects v onto onto.
func Project3(v, onto Vec3) Vec3 {
	sq := onto.LenSqr()
	if sq < 1e-15 {
		return Vec3{}
	}
	return onto.Mul(v.Dot(onto) / sq)
}

// ProjectOnPlane3 removes the component of v along the plane normal.
func ProjectOnPlane3(v, normal Vec3) Vec3 {
	return v.Sub(Project3(v, normal))
}

// Reflect3 reflects v off the plane with the given unit normal.
func Reflect3(v, normal Vec3) Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}
