// noisegen samples a noise field onto a grid and writes it as PNG and/or CSV.
//
// Usage: go run ./cmd/noisegen -config noise.yaml -png out.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"litemath/internal/config"
	"litemath/internal/export"
	"litemath/internal/profiling"
	"litemath/pkg/heightmap"
)

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	pngPath := flag.String("png", "", "Override output.png")
	csvPath := flag.String("csv", "", "Override output.csv")
	seed := flag.Int64("seed", 0, "Override noise.seed (hash lattice and simplex)")
	octaves := flag.Int("octaves", -1, "Override noise.octaves (-1 = keep)")
	source := flag.String("source", "", "Override noise.source (value|simplex)")
	saveConfig := flag.String("save-config", "", "Write the effective config to this YAML file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "png":
			cfg.Output.PNG = *pngPath
		case "csv":
			cfg.Output.CSV = *csvPath
		case "seed":
			cfg.Noise.Seed = *seed
		case "octaves":
			cfg.Noise.Octaves = *octaves
		case "source":
			cfg.Noise.Source = *source
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	config.Set(cfg)

	if *saveConfig != "" {
		if err := cfg.WriteYAML(*saveConfig); err != nil {
			log.Fatalf("failed to save config: %v", err)
		}
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("Timings: %s", profiling.TopN(5))
}

func run(cfg *config.Config) error {
	stop := profiling.Track("heightmap.Generate")
	grid := heightmap.Generate(cfg.Source(), cfg.Region(), cfg.Grid.Workers)
	stop()

	st := grid.Stats()
	log.Printf("Sampled %dx%d %s noise: min=%.4f max=%.4f mean=%.4f stddev=%.4f median=%.4f",
		grid.Width, grid.Height, cfg.Noise.Source, st.Min, st.Max, st.Mean, st.StdDev, st.Median)

	if cfg.Output.PNG != "" {
		opts := export.PNGOptions{Scale: cfg.Output.Scale}
		if cfg.Output.Label {
			opts.Label = label(cfg)
		}
		if err := writeFile(cfg.Output.PNG, func(f *os.File) error {
			return export.WritePNG(f, grid, opts)
		}); err != nil {
			return err
		}
		log.Printf("Wrote %s", cfg.Output.PNG)
	}

	if cfg.Output.CSV != "" {
		if err := writeFile(cfg.Output.CSV, func(f *os.File) error {
			return export.WriteCSV(f, grid)
		}); err != nil {
			return err
		}
		log.Printf("Wrote %s", cfg.Output.CSV)
	}
	return nil
}

func label(cfg *config.Config) string {
	n := cfg.Noise
	if n.Source == config.SourceSimplex {
		return fmt.Sprintf("simplex seed=%d f=%g", n.Seed, n.Frequency)
	}
	return fmt.Sprintf("%s oct=%d p=%g f=%g", n.Lattice, n.Octaves, n.Persistence, n.Frequency)
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
