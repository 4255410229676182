// Package config loads the settings shared by the noise tools.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"litemath/pkg/heightmap"
	"litemath/pkg/noise"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tool setting.
type Config struct {
	Noise  NoiseConfig  `yaml:"noise"`
	Grid   GridConfig   `yaml:"grid"`
	Output OutputConfig `yaml:"output"`
}

// NoiseConfig selects and parameterises the noise source.
type NoiseConfig struct {
	Source      string  `yaml:"source"`  // value | simplex
	Lattice     string  `yaml:"lattice"` // sine | hash
	Smooth      bool    `yaml:"smooth"`  // blur the lattice before interpolating
	Seed        int64   `yaml:"seed"`    // hash lattice and simplex only
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
}

// GridConfig describes the sampled region.
type GridConfig struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Step    float64 `yaml:"step"`
	Z       float64 `yaml:"z"`
	ThreeD  bool    `yaml:"three_d"`
	Workers int     `yaml:"workers"`
}

// OutputConfig names the files the tools write. Empty paths are skipped.
type OutputConfig struct {
	PNG   string `yaml:"png"`
	CSV   string `yaml:"csv"`
	Scale int    `yaml:"scale"`
	Label bool   `yaml:"label"`
}

const (
	SourceValue   = "value"
	SourceSimplex = "simplex"

	LatticeSine = "sine"
	LatticeHash = "hash"
)

var (
	ErrUnknownSource  = errors.New("unknown noise source")
	ErrUnknownLattice = errors.New("unknown lattice")
	ErrInvalidValue   = errors.New("invalid value")
)

// Load reads the embedded defaults and overlays the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Noise.Source {
	case SourceValue, SourceSimplex:
	default:
		return fmt.Errorf("noise.source %q: %w", c.Noise.Source, ErrUnknownSource)
	}
	switch c.Noise.Lattice {
	case LatticeSine, LatticeHash:
	default:
		return fmt.Errorf("noise.lattice %q: %w", c.Noise.Lattice, ErrUnknownLattice)
	}
	if c.Noise.Octaves < 0 {
		return fmt.Errorf("noise.octaves %d must not be negative: %w", c.Noise.Octaves, ErrInvalidValue)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive: %w", c.Grid.Width, c.Grid.Height, ErrInvalidValue)
	}
	if c.Grid.Step <= 0 {
		return fmt.Errorf("grid.step %v must be positive: %w", c.Grid.Step, ErrInvalidValue)
	}
	if c.Output.Scale < 1 {
		return fmt.Errorf("output.scale %d must be at least 1: %w", c.Output.Scale, ErrInvalidValue)
	}
	return nil
}

// WriteYAML saves the config, e.g. to record the settings of a run.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Field builds the value-noise field described by n.
func (n NoiseConfig) Field() noise.Field {
	var l noise.Lattice = noise.SineLattice{}
	if n.Lattice == LatticeHash {
		l = noise.HashLattice{Seed: n.Seed}
	}
	if n.Smooth {
		l = noise.Smoothed{Inner: l}
	}
	return noise.Field{
		Lattice:     l,
		Octaves:     n.Octaves,
		Persistence: n.Persistence,
		Lacunarity:  n.Lacunarity,
		Frequency:   n.Frequency,
		Amplitude:   n.Amplitude,
	}
}

// Source builds the 2D source the grid is sampled from. Value noise is
// sliced at grid.z when grid.three_d is set.
func (c *Config) Source() heightmap.Source2D {
	if c.Noise.Source == SourceSimplex {
		return scaled{
			src:  heightmap.NewSimplex(c.Noise.Seed),
			freq: c.Noise.Frequency,
			amp:  c.Noise.Amplitude,
		}
	}
	f := c.Noise.Field()
	if c.Grid.ThreeD {
		return heightmap.Slice{Src: f, Z: c.Grid.Z}
	}
	return f
}

// Region returns the sampled area.
func (c *Config) Region() heightmap.Region {
	return heightmap.Region{
		OriginX: c.Grid.OriginX,
		OriginY: c.Grid.OriginY,
		Step:    c.Grid.Step,
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
	}
}

// scaled applies frequency and amplitude to a source that has neither.
type scaled struct {
	src       heightmap.Source2D
	freq, amp float64
}

func (s scaled) Eval2(x, y float64) float64 {
	return s.src.Eval2(x*s.freq, y*s.freq) * s.amp
}

var (
	mu     sync.RWMutex
	global *Config
)

// Init loads path and installs it as the process-wide config.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Set(cfg)
	return nil
}

// Set replaces the process-wide config.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	global = cfg
}

// Cfg returns the process-wide config, loading the defaults on first use.
func Cfg() *Config {
	mu.RLock()
	cfg := global
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		def, err := Load("")
		if err != nil {
			panic(fmt.Errorf("embedded defaults are invalid: %w", err))
		}
		global = def
	}
	return global
}
