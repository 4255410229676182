package noise

import (
	"math"

	"litemath/pkg/mathf"
)

// Lattice maps integer grid coordinates to deterministic pseudo-random
// values in [0, 1). The 1D, 2D and 3D variants are independent functions.
type Lattice interface {
	At1(x int) float64
	At2(x, y int) float64
	At3(x, y, z int) float64
}

// Multipliers of the sine lattice. They are shared by every dimension so a
// point on the x axis samples the same way in 1D, 2D and 3D.
const (
	sineKX   = 53
	sineKY   = 97
	sineKZ   = 193
	sineGain = 6151
)

// SineLattice hashes coordinates through sin(). It is the package default.
// Precision of sin() degrades for very large coordinates, which shows up as
// axis-aligned banding; use HashLattice when that matters.
type SineLattice struct{}

func (SineLattice) At1(x int) float64 {
	return sineWave(x * sineKX)
}

func (SineLattice) At2(x, y int) float64 {
	return sineWave(x*sineKX + y*sineKY)
}

func (SineLattice) At3(x, y, z int) float64 {
	return sineWave(x*sineKX + y*sineKY + z*sineKZ)
}

func sineWave(n int) float64 {
	return mathf.Fraction(math.Sin(float64(n)) * sineGain)
}

// HashLattice hashes coordinates with a SplitMix64 finalizer. Unlike the
// sine lattice it is seedable and keeps its quality at any magnitude.
type HashLattice struct {
	Seed int64
}

// Per-axis odd constants so that swapped axes hash differently.
const (
	hashKX = 0x9E3779B97F4A7C15
	hashKY = 0x517CC1B727220A95
	hashKZ = 0x6C62272E07BB0142
)

func (h HashLattice) At1(x int) float64 {
	return unitFloat(mix64(uint64(x)*hashKX + uint64(h.Seed)))
}

func (h HashLattice) At2(x, y int) float64 {
	return unitFloat(mix64(uint64(x)*hashKX + uint64(y)*hashKY + uint64(h.Seed)))
}

func (h HashLattice) At3(x, y, z int) float64 {
	return unitFloat(mix64(uint64(x)*hashKX + uint64(y)*hashKY + uint64(z)*hashKZ + uint64(h.Seed)))
}

func mix64(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unitFloat keeps the top 53 bits so the result is in [0, 1).
func unitFloat(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// Smoothed blurs another lattice with the separable 1/4, 1/2, 1/4 kernel
// over the neighbouring points. The weights sum to 1, so the output stays
// in [0, 1). A nil inner lattice means SineLattice.
type Smoothed struct {
	Inner Lattice
}

var kernel = [3]float64{0.25, 0.5, 0.25}

func (s Smoothed) inner() Lattice {
	if s.Inner == nil {
		return SineLattice{}
	}
	return s.Inner
}

func (s Smoothed) At1(x int) float64 {
	l := s.inner()
	sum := 0.0
	for i := -1; i <= 1; i++ {
		sum += kernel[i+1] * l.At1(x+i)
	}
	return sum
}

func (s Smoothed) At2(x, y int) float64 {
	l := s.inner()
	sum := 0.0
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			sum += kernel[i+1] * kernel[j+1] * l.At2(x+i, y+j)
		}
	}
	return sum
}

func (s Smoothed) At3(x, y, z int) float64 {
	l := s.inner()
	sum := 0.0
	for k := -1; k <= 1; k++ {
		for j := -1; j <= 1; j++ {
			for i := -1; i <= 1; i++ {
				sum += kernel[i+1] * kernel[j+1] * kernel[k+1] * l.At3(x+i, y+j, z+k)
			}
		}
	}
	return sum
}

var (
	sine     = SineLattice{}
	smoothed = Smoothed{Inner: sine}
)

// Sample1D returns the raw lattice value at x.
func Sample1D(x int) float64 { return sine.At1(x) }

// Sample2D returns the raw lattice value at (x, y).
func Sample2D(x, y int) float64 { return sine.At2(x, y) }

// Sample3D returns the raw lattice value at (x, y, z).
func Sample3D(x, y, z int) float64 { return sine.At3(x, y, z) }

// Smoothed1D returns the lattice value at x blurred with its neighbours.
func Smoothed1D(x int) float64 { return smoothed.At1(x) }

// Smoothed2D returns the lattice value at (x, y) blurred with its neighbours.
func Smoothed2D(x, y int) float64 { return smoothed.At2(x, y) }

// Smoothed3D returns the lattice value at (x, y, z) blurred with its neighbours.
func Smoothed3D(x, y, z int) float64 { return smoothed.At3(x, y, z) }
