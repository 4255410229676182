// Package heightmap samples noise sources onto regular 2D grids.
package heightmap

import (
	"runtime"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Region describes which part of the source plane a grid covers. Cell
// (i, j) samples the point (OriginX + i*Step, OriginY + j*Step).
type Region struct {
	OriginX, OriginY float64
	Step             float64
	Width, Height    int
}

// Grid holds row-major samples.
type Grid struct {
	Width, Height int
	Data          []float64
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// At returns the sample at (x, y), clamping out-of-range coordinates to
// the border.
func (g *Grid) At(x, y int) float64 {
	x = min(max(x, 0), g.Width-1)
	y = min(max(y, 0), g.Height-1)
	return g.Data[g.index(x, y)]
}

func (g *Grid) Set(x, y int, v float64) {
	g.Data[g.index(x, y)] = v
}

// Generate samples src over region. Rows are spread across workers
// goroutines; workers <= 0 uses one per CPU. The result does not depend on
// the worker count.
func Generate(src Source2D, region Region, workers int) *Grid {
	g := NewGrid(max(region.Width, 0), max(region.Height, 0))
	if region.Width <= 0 || region.Height <= 0 {
		return g
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	workers = min(workers, region.Height)

	rows := make(chan int, region.Height)
	for y := 0; y < region.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				fillRow(g, src, region, y)
			}
		}()
	}
	wg.Wait()
	return g
}

func fillRow(g *Grid, src Source2D, r Region, y int) {
	py := r.OriginY + float64(y)*r.Step
	row := g.Data[y*g.Width : (y+1)*g.Width]
	for x := range row {
		row[x] = src.Eval2(r.OriginX+float64(x)*r.Step, py)
	}
}

// Stats summarises the values of a grid.
type Stats struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
	Median   float64
}

// Stats computes summary statistics. An empty grid yields zero Stats.
func (g *Grid) Stats() Stats {
	if len(g.Data) == 0 {
		return Stats{}
	}
	sorted := make([]float64, len(g.Data))
	copy(sorted, g.Data)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(g.Data, nil)
	if len(g.Data) == 1 {
		std = 0
	}
	return Stats{
		Min:    floats.Min(g.Data),
		Max:    floats.Max(g.Data),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
}

// Normalized returns a copy rescaled to [0, 1]. A flat grid maps to 0.
func (g *Grid) Normalized() *Grid {
	out := NewGrid(g.Width, g.Height)
	copy(out.Data, g.Data)
	if len(out.Data) == 0 {
		return out
	}
	lo, hi := floats.Min(out.Data), floats.Max(out.Data)
	span := hi - lo
	if span == 0 {
		for i := range out.Data {
			out.Data[i] = 0
		}
		return out
	}
	floats.AddConst(-lo, out.Data)
	floats.Scale(1/span, out.Data)
	return out
}

// Normal returns the unit surface normal at (x, y), treating samples as
// heights scaled by heightScale over cells of unit size. Y is up.
func (g *Grid) Normal(x, y int, heightScale float32) mgl32.Vec3 {
	hl := float32(g.At(x-1, y)) * heightScale
	hr := float32(g.At(x+1, y)) * heightScale
	hd := float32(g.At(x, y-1)) * heightScale
	hu := float32(g.At(x, y+1)) * heightScale

	// Tangents along the grid's x and y (world z) axes.
	tx := mgl32.Vec3{2, hr - hl, 0}
	tz := mgl32.Vec3{0, hu - hd, 2}
	return tz.Cross(tx).Normalize()
}
