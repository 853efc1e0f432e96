// Package config loads pipeline configuration from a TOML file and
// validates it before any work is done.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// Chunking controls how document text is split into chunks.
type Chunking struct {
	// Size is the chunk size in characters. Must be positive.
	Size int `toml:"size"`

	// Overlap is the number of overlapping characters between
	// consecutive chunks. Must be non-negative and less than Size.
	Overlap int `toml:"overlap"`
}

// Clustering controls cluster-count selection and k-means behaviour.
type Clustering struct {
	// KMin is the lower bound of the cluster-count search range.
	KMin int `toml:"k_min"`

	// KMax is the configured ceiling of the search range. The effective
	// upper bound is further limited by the corpus size.
	KMax int `toml:"k_max"`

	// Seed makes centroid initialization reproducible.
	Seed int64 `toml:"seed"`

	// MaxIterations bounds the k-means loop.
	MaxIterations int `toml:"max_iterations"`
}

// Naming controls topic label derivation.
type Naming struct {
	// TopN is the number of distinguishing terms per cluster name.
	TopN int `toml:"top_n"`

	// Separator joins the selected terms into a label.
	Separator string `toml:"separator"`
}

// Artifact controls the persisted JSON output.
type Artifact struct {
	// Output is the destination path of the artifact.
	Output string `toml:"output"`

	// Title is the display title embedded in the artifact.
	Title string `toml:"title"`

	// Description is the description embedded in the artifact.
	Description string `toml:"description"`

	// Similarity is the link-rendering threshold passed through to the
	// visualization layer.
	Similarity float64 `toml:"similarity"`

	// CharsPerPixel is the chunk-sizing hint passed through to the
	// visualization layer.
	CharsPerPixel int `toml:"chars_per_pixel"`
}

// Config is the full pipeline configuration.
type Config struct {
	Chunking   Chunking   `toml:"chunking"`
	Clustering Clustering `toml:"clustering"`
	Naming     Naming     `toml:"naming"`
	Artifact   Artifact   `toml:"artifact"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Chunking: Chunking{
			Size:    1000,
			Overlap: 200,
		},
		Clustering: Clustering{
			KMin:          2,
			KMax:          50,
			Seed:          42,
			MaxIterations: 100,
		},
		Naming: Naming{
			TopN:      3,
			Separator: " & ",
		},
		Artifact: Artifact{
			Output:        "docexplore.json",
			Title:         "Document Insights",
			Description:   "Explore key topics and insights extracted from the documents.",
			Similarity:    0.8,
			CharsPerPixel: 20,
		},
	}
}

// Load reads a TOML config file over the defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks all parameters before the pipeline starts.
// Invalid parameters are fatal; the run aborts before any work.
func (c Config) Validate() error {
	if c.Chunking.Size <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidConfig, c.Chunking.Size)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.Size {
		return fmt.Errorf("%w: chunk overlap must be in [0, size), got %d", domain.ErrInvalidConfig, c.Chunking.Overlap)
	}
	if c.Clustering.KMin < 1 {
		return fmt.Errorf("%w: k_min must be at least 1, got %d", domain.ErrInvalidConfig, c.Clustering.KMin)
	}
	if c.Clustering.KMax < c.Clustering.KMin {
		return fmt.Errorf("%w: k_max %d is below k_min %d", domain.ErrInvalidConfig, c.Clustering.KMax, c.Clustering.KMin)
	}
	if c.Clustering.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be at least 1, got %d", domain.ErrInvalidConfig, c.Clustering.MaxIterations)
	}
	if c.Naming.TopN < 1 {
		return fmt.Errorf("%w: top_n must be at least 1, got %d", domain.ErrInvalidConfig, c.Naming.TopN)
	}
	if c.Artifact.Output == "" {
		return fmt.Errorf("%w: artifact output path is empty", domain.ErrInvalidConfig)
	}
	return nil
}
