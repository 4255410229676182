package noise

import (
	"math"

	"litemath/pkg/mathf"
)

// Value3DScale divides the 3D value noise so that 16-octave sums stay small.
// Field and RawValue3D skip it.
const Value3DScale = 50

// CosineInterpolate blends a and b by t with zero slope at both ends.
// t is expected in [0, 1] but is not clamped.
func CosineInterpolate(a, b, t float64) float64 {
	return mathf.CosInterpolate(a, b, t)
}

// cell splits a coordinate into the lower lattice corner and the offset
// inside the cell.
func cell(x float64) (int, float64) {
	fl := math.Floor(x)
	return int(fl), x - fl
}

func value1(l Lattice, x float64) float64 {
	x0, fx := cell(x)
	return CosineInterpolate(l.At1(x0), l.At1(x0+1), fx)
}

func value2(l Lattice, x, y float64) float64 {
	x0, fx := cell(x)
	y0, fy := cell(y)

	bottom := CosineInterpolate(l.At2(x0, y0), l.At2(x0+1, y0), fx)
	top := CosineInterpolate(l.At2(x0, y0+1), l.At2(x0+1, y0+1), fx)
	return CosineInterpolate(bottom, top, fy)
}

// value3 blends the 8 cube corners: 4 edges along x, 2 faces along y, then
// the cube along z.
func value3(l Lattice, x, y, z float64) float64 {
	x0, fx := cell(x)
	y0, fy := cell(y)
	z0, fz := cell(z)

	rearBottom := CosineInterpolate(l.At3(x0, y0, z0), l.At3(x0+1, y0, z0), fx)
	rearTop := CosineInterpolate(l.At3(x0, y0+1, z0), l.At3(x0+1, y0+1, z0), fx)
	frontBottom := CosineInterpolate(l.At3(x0, y0, z0+1), l.At3(x0+1, y0, z0+1), fx)
	frontTop := CosineInterpolate(l.At3(x0, y0+1, z0+1), l.At3(x0+1, y0+1, z0+1), fx)

	rear := CosineInterpolate(rearBottom, rearTop, fy)
	front := CosineInterpolate(frontBottom, frontTop, fy)
	return CosineInterpolate(rear, front, fz)
}

// Value1D returns cosine-interpolated value noise in [0, 1).
// At integer x it equals Sample1D(x).
func Value1D(x float64) float64 {
	return value1(sine, x)
}

// Value2D returns cosine-interpolated value noise in [0, 1).
func Value2D(x, y float64) float64 {
	return value2(sine, x, y)
}

// Value3D returns cosine-interpolated value noise divided by Value3DScale,
// so the result is in [0, 1/Value3DScale).
func Value3D(x, y, z float64) float64 {
	return value3(sine, x, y, z) / Value3DScale
}

// RawValue3D is Value3D without the scale divisor, in [0, 1).
func RawValue3D(x, y, z float64) float64 {
	return value3(sine, x, y, z)
}

// SmoothValue1D interpolates the smoothed lattice instead of the raw one.
func SmoothValue1D(x float64) float64 {
	return value1(smoothed, x)
}

// SmoothValue2D interpolates the smoothed lattice instead of the raw one.
func SmoothValue2D(x, y float64) float64 {
	return value2(smoothed, x, y)
}
