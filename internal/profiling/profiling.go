package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Recorder accumulates wall time per named stage. The zero value is ready
// to use and safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	counts map[string]int
}

// Stage is one entry of a Recorder snapshot.
type Stage struct {
	Name  string
	Total time.Duration
	Calls int
}

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer rec.Track("export.WritePNG")()
func (r *Recorder) Track(name string) func() {
	start := time.Now()
	return func() {
		r.Add(name, time.Since(start))
	}
}

// Add records one call of duration d under name.
func (r *Recorder) Add(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.totals == nil {
		r.totals = make(map[string]time.Duration)
		r.counts = make(map[string]int)
	}
	r.totals[name] += d
	r.counts[name]++
}

// Reset forgets every recorded stage.
func (r *Recorder) Reset() {
	r.mu.Lock()
	clear(r.totals)
	clear(r.counts)
	r.mu.Unlock()
}

// Snapshot returns the recorded stages, slowest first.
func (r *Recorder) Snapshot() []Stage {
	r.mu.Lock()
	out := make([]Stage, 0, len(r.totals))
	for name, d := range r.totals {
		out = append(out, Stage{Name: name, Total: d, Calls: r.counts[name]})
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN formats the n slowest stages.
// Example: "heightmap.Generate:41.2ms, export.WritePNG:3.5ms"
func (r *Recorder) TopN(n int) string {
	stages := r.Snapshot()
	n = min(max(n, 0), len(stages))
	parts := make([]string, 0, n)
	for _, s := range stages[:n] {
		parts = append(parts, s.Name+":"+formatMs(s.Total))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}

var std Recorder

// Track records into the process-wide recorder.
func Track(name string) func() { return std.Track(name) }

// Reset clears the process-wide recorder.
func Reset() { std.Reset() }

// Snapshot returns the process-wide recorder's stages.
func Snapshot() []Stage { return std.Snapshot() }

// TopN formats the process-wide recorder's slowest stages.
func TopN(n int) string { return std.TopN(n) }
