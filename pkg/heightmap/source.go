package heightmap

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"litemath/pkg/noise"
)

// Source2D is anything that can be sampled on a plane. noise.Field and
// opensimplex.Noise both satisfy it.
type Source2D interface {
	Eval2(x, y float64) float64
}

// Source3D is anything that can be sampled in a volume.
type Source3D interface {
	Eval3(x, y, z float64) float64
}

var (
	_ Source2D = noise.Field{}
	_ Source3D = noise.Field{}
	_ Source2D = opensimplex.Noise(nil)
	_ Source2D = Slice{}
)

// Slice samples the plane z = Z of a 3D source.
type Slice struct {
	Src Source3D
	Z   float64
}

func (s Slice) Eval2(x, y float64) float64 {
	return s.Src.Eval3(x, y, s.Z)
}

// NewSimplex returns OpenSimplex gradient noise rescaled to [0, 1], for
// comparing against value noise on the same grid.
func NewSimplex(seed int64) Source2D {
	return opensimplex.NewNormalized(seed)
}
