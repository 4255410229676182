// Package noise generates coherent pseudo-random value noise.
//
// The pipeline has four layers:
//
//   - a lattice sampler maps integer coordinates to values in [0, 1)
//     (Sample1D, Sample2D, Sample3D, or any Lattice);
//   - CosineInterpolate eases between two samples;
//   - the value-noise evaluators (Value1D, Value2D, Value3D) blend the
//     corners of the lattice cell around a point;
//   - the fractal sums (Fractal1D, Fractal2D, Fractal3D, Perlin3D) add
//     octaves at doubling frequency and decaying amplitude.
//
// Every function is pure and safe for concurrent use. NaN and ±Inf inputs
// propagate to the output; nothing is validated.
package noise
