package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"litemath/internal/profiling"
	"litemath/pkg/heightmap"
)

// ErrSparseCSV is returned when a file does not hold exactly one row per
// cell of its grid.
var ErrSparseCSV = errors.New("csv does not cover a full grid")

// Sample is one CSV row.
type Sample struct {
	X     int     `csv:"x"`
	Y     int     `csv:"y"`
	Value float64 `csv:"value"`
}

// Samples flattens the grid row by row.
func Samples(g *heightmap.Grid) []Sample {
	out := make([]Sample, 0, len(g.Data))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Sample{X: x, Y: y, Value: g.At(x, y)})
		}
	}
	return out
}

// WriteCSV writes a header and one row per cell.
func WriteCSV(w io.Writer, g *heightmap.Grid) error {
	defer profiling.Track("export.WriteCSV")()

	if err := gocsv.Marshal(Samples(g), w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ReadCSV rebuilds a grid written by WriteCSV.
func ReadCSV(r io.Reader) (*heightmap.Grid, error) {
	var rows []Sample
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	width, height := 0, 0
	for _, s := range rows {
		if s.X < 0 || s.Y < 0 {
			return nil, fmt.Errorf("reading csv: negative cell (%d, %d)", s.X, s.Y)
		}
		// a dense grid never extends past its row count on either axis
		if s.X >= len(rows) || s.Y >= len(rows) {
			return nil, fmt.Errorf("%w: cell (%d, %d) outside a %d-row file", ErrSparseCSV, s.X, s.Y, len(rows))
		}
		width = max(width, s.X+1)
		height = max(height, s.Y+1)
	}
	if width*height != len(rows) {
		return nil, fmt.Errorf("%w: %d rows for a %dx%d grid", ErrSparseCSV, len(rows), width, height)
	}

	g := heightmap.NewGrid(width, height)
	seen := make([]bool, len(rows))
	for _, s := range rows {
		i := s.Y*width + s.X
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate cell (%d, %d)", ErrSparseCSV, s.X, s.Y)
		}
		seen[i] = true
		g.Set(s.X, s.Y, s.Value)
	}
	return g, nil
}
