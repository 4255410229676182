// Package mathf holds scalar helpers shared by the noise and vector packages.
// Every function is generic over float32 and float64.
package mathf

import "math"

// Float is the set of floating point types the helpers accept.
type Float interface {
	~float32 | ~float64
}

// Epsilon is the default tolerance for ApproxEqual.
const Epsilon = 1e-4

const (
	Pi  = math.Pi
	Tau = 2 * math.Pi
)

// Rad2Deg converts n radians into degrees.
func Rad2Deg[T Float](n T) T {
	return n * T(180.0/math.Pi)
}

// Deg2Rad converts n degrees into radians.
func Deg2Rad[T Float](n T) T {
	return n * T(math.Pi/180.0)
}

// WrapAngle wraps an angle in radians into [0, 2π).
func WrapAngle[T Float](a T) T {
	w := math.Mod(float64(a), Tau)
	if w < 0 {
		w += Tau
	}
	return T(w)
}

// Clamp confines n to [min, max].
func Clamp[T Float](n, min, max T) T {
	if n < min {
		n = min
	}
	if n > max {
		return max
	}
	return n
}

// Clamp01 confines n to [0, 1].
func Clamp01[T Float](n T) T {
	return Clamp(n, 0, 1)
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// LerpClamped is Lerp with t confined to [0, 1].
func LerpClamped[T Float](a, b, t T) T {
	return a + (b-a)*Clamp01(t)
}

// Norm returns where n sits between min and max as a fraction.
func Norm[T Float](n, min, max T) T {
	return (n - min) / (max - min)
}

// Map converts n from the range [fromMin, fromMax] to [toMin, toMax].
func Map[T Float](n, fromMin, fromMax, toMin, toMax T) T {
	return (n-fromMin)*(toMax-toMin)/(fromMax-fromMin) + toMin
}

// ApproxEqual reports whether a and b differ by less than tolerance.
func ApproxEqual[T Float](a, b, tolerance T) bool {
	return math.Abs(float64(a-b)) < float64(tolerance)
}

// CosInterpolate blends a and b with a cosine ease. The weight is
// (1 - cos(tπ)) / 2, so the slope is zero at t=0 and t=1.
func CosInterpolate[T Float](a, b, t T) T {
	// cos(tπ) == sin((0.5-t)π); this form is exact at t = 0, 0.5 and 1.
	c := math.Sin((0.5 - float64(t)) * math.Pi)
	f := T((1 - c) * 0.5)
	return a*(1-f) + b*f
}

// Sigmoid is the logistic function 1 / (1 + e^-n).
func Sigmoid[T Float](n T) T {
	return T(1 / (1 + math.Exp(-float64(n))))
}

// Loop wraps n so it is never larger than length and never smaller than 0.
func Loop[T Float](n, length T) T {
	return Clamp(n-T(math.Floor(float64(n/length)))*length, 0, length)
}

// PingPong moves n back and forth between 0 and length.
func PingPong[T Float](n, length T) T {
	n = Loop(n, length*2)
	return T(math.Abs(float64(n - length)))
}

// AngleDelta returns the shortest difference between two angles in degrees,
// in the range (-180, 180].
func AngleDelta[T Float](a, b T) T {
	delta := Loop(b-a, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// Fraction returns x - floor(x). The result is in [0, 1) for every finite
// x, including negatives; NaN and ±Inf yield NaN.
func Fraction[T Float](x T) T {
	f := x - T(math.Floor(float64(x)))
	// tiny negative x rounds up to exactly 1
	if f >= 1 {
		return 0
	}
	return f
}
