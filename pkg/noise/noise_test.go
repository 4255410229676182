package noise

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

// TestSampleDeterministic verifies repeated calls give bit-identical values
func TestSampleDeterministic(t *testing.T) {
	first := Sample1D(5)
	second := Sample1D(5)
	if math.Float64bits(first) != math.Float64bits(second) {
		t.Errorf("Sample1D(5) not deterministic: %v then %v", first, second)
	}

	var results [100]float64
	for i := range results {
		results[i] = Sample3D(10, -20, 30)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("Sample3D not deterministic: results[0]=%v, results[%d]=%v", results[0], i, results[i])
		}
	}
}

// TestSampleRange verifies lattice samples stay in [0,1), negatives included
func TestSampleRange(t *testing.T) {
	for x := -500; x <= 500; x++ {
		if v := Sample1D(x); v < 0 || v >= 1 {
			t.Fatalf("Sample1D(%d) = %v, expected in [0,1)", x, v)
		}
	}
	for x := -40; x <= 40; x++ {
		for y := -40; y <= 40; y++ {
			if v := Sample2D(x, y); v < 0 || v >= 1 {
				t.Fatalf("Sample2D(%d,%d) = %v, expected in [0,1)", x, y, v)
			}
			if v := Sample3D(x, y, x-y); v < 0 || v >= 1 {
				t.Fatalf("Sample3D(%d,%d,%d) = %v, expected in [0,1)", x, y, x-y, v)
			}
		}
	}
}

// TestSampleDistribution checks the sine lattice is roughly uniform
func TestSampleDistribution(t *testing.T) {
	samples := make([]float64, 0, 20000)
	for x := -10000; x < 10000; x++ {
		samples = append(samples, Sample1D(x))
	}
	mean := stat.Mean(samples, nil)
	variance := stat.Variance(samples, nil)

	// Uniform [0,1): mean 1/2, variance 1/12.
	if math.Abs(mean-0.5) > 0.05 {
		t.Errorf("Sample1D mean = %v, expected near 0.5", mean)
	}
	if math.Abs(variance-1.0/12.0) > 0.02 {
		t.Errorf("Sample1D variance = %v, expected near %v", variance, 1.0/12.0)
	}
}

// TestSamplersDiffer verifies the dimensional samplers are distinct functions
func TestSamplersDiffer(t *testing.T) {
	if Sample2D(1, 2) == Sample2D(2, 1) {
		t.Errorf("Sample2D should differ for axis swap: %v", Sample2D(1, 2))
	}
	if Sample3D(1, 2, 3) == Sample3D(3, 2, 1) {
		t.Errorf("Sample3D should differ for axis swap: %v", Sample3D(1, 2, 3))
	}
}

func TestCosineInterpolate(t *testing.T) {
	if got := CosineInterpolate(0.0, 10.0, 0.5); got != 5.0 {
		t.Errorf("CosineInterpolate(0, 10, 0.5) = %v, want 5", got)
	}
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 200; i++ {
		a := rng.Float64()*200 - 100
		b := rng.Float64()*200 - 100
		if got := CosineInterpolate(a, b, 0); math.Abs(got-a) > 1e-4 {
			t.Errorf("CosineInterpolate(%v, %v, 0) = %v", a, b, got)
		}
		if got := CosineInterpolate(a, b, 1); math.Abs(got-b) > 1e-4 {
			t.Errorf("CosineInterpolate(%v, %v, 1) = %v", a, b, got)
		}
		if got := CosineInterpolate(a, b, 0.5); math.Abs(got-(a+b)/2) > 1e-4 {
			t.Errorf("CosineInterpolate(%v, %v, 0.5) = %v, want %v", a, b, got, (a+b)/2)
		}
	}
}

// TestValue1DAtLatticePoint verifies interpolation degenerates to the raw sample
func TestValue1DAtLatticePoint(t *testing.T) {
	for x := -5; x <= 5; x++ {
		if got, want := Value1D(float64(x)), Sample1D(x); got != want {
			t.Errorf("Value1D(%d) = %v, want Sample1D(%d) = %v", x, got, x, want)
		}
	}
	if got, want := Value1D(3.0), Sample1D(3); got != want {
		t.Errorf("Value1D(3.0) = %v, want %v", got, want)
	}
	if got, want := Value2D(-2, 7), Sample2D(-2, 7); got != want {
		t.Errorf("Value2D(-2,7) = %v, want %v", got, want)
	}
	if got, want := RawValue3D(1, 2, 3), Sample3D(1, 2, 3); got != want {
		t.Errorf("RawValue3D(1,2,3) = %v, want %v", got, want)
	}
	if got, want := Value3D(1, 2, 3), Sample3D(1, 2, 3)/Value3DScale; got != want {
		t.Errorf("Value3D(1,2,3) = %v, want %v", got, want)
	}
}

// TestValue1DContinuity verifies no jumps across integer cell boundaries
func TestValue1DContinuity(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0, 1, 2, 2.5, 17} {
		v := Value1D(x)
		for _, eps := range []float64{1e-4, -1e-4, 1e-6, -1e-6} {
			if diff := math.Abs(Value1D(x+eps) - v); diff > 1e-3 {
				t.Errorf("Value1D not continuous at %v: |f(x%+g)-f(x)| = %v", x, eps, diff)
			}
		}
	}

	// Shrinking steps must shrink the difference.
	prev := math.Inf(1)
	for _, eps := range []float64{1e-1, 1e-2, 1e-3, 1e-4} {
		diff := math.Abs(Value1D(2.0+eps) - Value1D(2.0))
		if diff > prev {
			t.Errorf("difference grew as eps shrank: eps=%v diff=%v prev=%v", eps, diff, prev)
		}
		prev = diff
	}
}

// TestValue2DContinuity checks both axes on and off cell boundaries
func TestValue2DContinuity(t *testing.T) {
	points := [][2]float64{{1, 1}, {0.5, 2}, {-1, -3}, {2.25, 0}}
	for _, p := range points {
		v := Value2D(p[0], p[1])
		for _, eps := range []float64{1e-5, -1e-5} {
			if diff := math.Abs(Value2D(p[0]+eps, p[1]) - v); diff > 1e-3 {
				t.Errorf("Value2D jumps near %v along x: diff=%v", p, diff)
			}
			if diff := math.Abs(Value2D(p[0], p[1]+eps) - v); diff > 1e-3 {
				t.Errorf("Value2D jumps near %v along y: diff=%v", p, diff)
			}
		}
	}
}

// TestValue3DContinuity verifies smooth interpolation across all three axes
func TestValue3DContinuity(t *testing.T) {
	points := [][3]float64{{1, 1, 1}, {0.5, 2, -3}, {-1, -1, -1}}
	for _, p := range points {
		v := RawValue3D(p[0], p[1], p[2])
		for axis := 0; axis < 3; axis++ {
			q := p
			q[axis] -= 1e-5
			if diff := math.Abs(RawValue3D(q[0], q[1], q[2]) - v); diff > 1e-3 {
				t.Errorf("RawValue3D jumps near %v on axis %d: diff=%v", p, axis, diff)
			}
		}
	}
}

// TestValueRange verifies interpolated noise stays within the corner range
func TestValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100

		if v := Value1D(x); v < 0 || v >= 1 {
			t.Errorf("Value1D(%f) = %f, expected in [0,1)", x, v)
		}
		if v := Value2D(x, y); v < 0 || v >= 1 {
			t.Errorf("Value2D(%f, %f) = %f, expected in [0,1)", x, y, v)
		}
		if v := Value3D(x, y, z); v < 0 || v >= 1.0/Value3DScale {
			t.Errorf("Value3D(%f, %f, %f) = %f, expected in [0,1/50)", x, y, z, v)
		}
	}
}

func TestValueNaNPropagates(t *testing.T) {
	if v := Value1D(math.NaN()); !math.IsNaN(v) {
		t.Errorf("Value1D(NaN) = %v, want NaN", v)
	}
	if v := Value3D(0, math.Inf(1), 0); !math.IsNaN(v) {
		t.Errorf("Value3D with +Inf = %v, want NaN", v)
	}
}

// TestFractalAttenuation verifies octave i contributes at most persistence^i
func TestFractalAttenuation(t *testing.T) {
	x, y, z := 1.37, -4.2, 0.81
	for n := 0; n < 20; n++ {
		step := math.Abs(Fractal1D(x, 0.5, n+1) - Fractal1D(x, 0.5, n))
		if step > math.Pow(0.5, float64(n))+1e-12 {
			t.Errorf("octave %d contributes %v, more than %v", n, step, math.Pow(0.5, float64(n)))
		}
		step2 := math.Abs(Fractal2D(x, y, 0.5, n+1) - Fractal2D(x, y, 0.5, n))
		if step2 > math.Pow(0.5, float64(n))+1e-12 {
			t.Errorf("2D octave %d contributes %v", n, step2)
		}
		step3 := math.Abs(Fractal3D(x, y, z, 0.5, n+1) - Fractal3D(x, y, z, 0.5, n))
		if step3 > math.Pow(0.5, float64(n))/Value3DScale+1e-12 {
			t.Errorf("3D octave %d contributes %v", n, step3)
		}
	}

	if d := math.Abs(Fractal3D(x, y, z, 0.5, 20) - Fractal3D(x, y, z, 0.5, 16)); d > 1e-5 {
		t.Errorf("Fractal3D does not converge: octaves 20 vs 16 differ by %v", d)
	}
	if d := math.Abs(Fractal2D(x, y, 0.5, 20) - Fractal2D(x, y, 0.5, 16)); d > 1e-4 {
		t.Errorf("Fractal2D does not converge: octaves 20 vs 16 differ by %v", d)
	}
	if d := math.Abs(Fractal1D(x, 0.5, 20) - Fractal1D(x, 0.5, 16)); d > 1e-4 {
		t.Errorf("Fractal1D does not converge: octaves 20 vs 16 differ by %v", d)
	}
}

func TestFractalDegenerateOctaves(t *testing.T) {
	if v := Fractal1D(1.5, 0.5, 0); v != 0 {
		t.Errorf("Fractal1D with 0 octaves = %v, want 0", v)
	}
	if v := Fractal2D(1.5, 2.5, 0.5, -3); v != 0 {
		t.Errorf("Fractal2D with -3 octaves = %v, want 0", v)
	}
	if got, want := Fractal3D(1.5, 2.5, 3.5, 0.5, 1), Value3D(1.5, 2.5, 3.5); got != want {
		t.Errorf("Fractal3D with 1 octave = %v, want Value3D = %v", got, want)
	}
}

func TestPerlin3D(t *testing.T) {
	got := Perlin3D(0.3, 0.6, 0.9)
	want := Fractal3D(0.3, 0.6, 0.9, 0.5, 16)
	if got != want {
		t.Errorf("Perlin3D = %v, want %v", got, want)
	}
	// 16 octaves of values below 1/50, weights summing below 2.
	if got < 0 || got >= 2.0/Value3DScale {
		t.Errorf("Perlin3D = %v, out of range", got)
	}
}
