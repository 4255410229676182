package noise

// Field is a configurable fractal value-noise generator.
//
// Unlike the package-level functions, a Field evaluates raw (unscaled)
// value noise in every dimension and applies Amplitude itself, so 1D, 2D
// and 3D output share the same range: [0, Amplitude * Σ persistence^i).
//
// Field is a plain value; it holds no mutable state and may be shared
// between goroutines.
type Field struct {
	// Lattice supplies corner values. nil means SineLattice.
	Lattice Lattice

	Octaves     int
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency growth per octave
	Frequency   float64 // frequency of the first octave
	Amplitude   float64 // amplitude of the first octave
}

// DefaultField matches Perlin3D's octave layout without its scale divisor.
func DefaultField() Field {
	return Field{
		Lattice:     SineLattice{},
		Octaves:     PerlinOctaves,
		Persistence: PerlinPersistence,
		Lacunarity:  2,
		Frequency:   1,
		Amplitude:   1,
	}
}

func (f Field) lattice() Lattice {
	if f.Lattice == nil {
		return sine
	}
	return f.Lattice
}

// Eval1 samples the field at x.
func (f Field) Eval1(x float64) float64 {
	l := f.lattice()
	total := 0.0
	freq, amplitude := f.Frequency, f.Amplitude
	for i := 0; i < f.Octaves; i++ {
		total += value1(l, x*freq) * amplitude
		freq *= f.Lacunarity
		amplitude *= f.Persistence
	}
	return total
}

// Eval2 samples the field at (x, y).
func (f Field) Eval2(x, y float64) float64 {
	l := f.lattice()
	total := 0.0
	freq, amplitude := f.Frequency, f.Amplitude
	for i := 0; i < f.Octaves; i++ {
		total += value2(l, x*freq, y*freq) * amplitude
		freq *= f.Lacunarity
		amplitude *= f.Persistence
	}
	return total
}

// Eval3 samples the field at (x, y, z).
func (f Field) Eval3(x, y, z float64) float64 {
	l := f.lattice()
	total := 0.0
	freq, amplitude := f.Frequency, f.Amplitude
	for i := 0; i < f.Octaves; i++ {
		total += value3(l, x*freq, y*freq, z*freq) * amplitude
		freq *= f.Lacunarity
		amplitude *= f.Persistence
	}
	return total
}

// MaxValue is the supremum of the field's output, the partial geometric sum
// Amplitude * (1 + p + ... + p^(Octaves-1)).
func (f Field) MaxValue() float64 {
	total := 0.0
	amplitude := f.Amplitude
	for i := 0; i < f.Octaves; i++ {
		total += amplitude
		amplitude *= f.Persistence
	}
	return total
}
