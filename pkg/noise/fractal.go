package noise

// Octave count and persistence of Perlin3D.
const (
	PerlinOctaves     = 16
	PerlinPersistence = 0.5
)

// Fractal1D sums octaves of Value1D. Octave i is sampled at frequency 2^i
// and weighted by persistence^i. octaves <= 0 yields 0.
func Fractal1D(x, persistence float64, octaves int) float64 {
	total := 0.0
	freq, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += Value1D(x*freq) * amplitude
		freq *= 2
		amplitude *= persistence
	}
	return total
}

// Fractal2D sums octaves of Value2D. See Fractal1D.
func Fractal2D(x, y, persistence float64, octaves int) float64 {
	total := 0.0
	freq, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += Value2D(x*freq, y*freq) * amplitude
		freq *= 2
		amplitude *= persistence
	}
	return total
}

// Fractal3D sums octaves of Value3D, including its scale divisor.
// See Fractal1D.
func Fractal3D(x, y, z, persistence float64, octaves int) float64 {
	total := 0.0
	freq, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += Value3D(x*freq, y*freq, z*freq) * amplitude
		freq *= 2
		amplitude *= persistence
	}
	return total
}

// Perlin3D is Fractal3D with 16 octaves and persistence 0.5.
func Perlin3D(x, y, z float64) float64 {
	return Fractal3D(x, y, z, PerlinPersistence, PerlinOctaves)
}
