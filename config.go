package hierclust

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of a clustering run. Linkage and metric are
// given by name; see LinkageByName and MetricByName.
type FileConfig struct {
	Linkage     string  `yaml:"linkage"`
	Metric      string  `yaml:"metric"`
	MinkowskiP  float64 `yaml:"minkowski_p,omitempty"`
	NumClusters int     `yaml:"num_clusters"`
	TrackTree   bool    `yaml:"track_tree"`
	TreeDepth   int     `yaml:"tree_depth"`
	Strict      bool    `yaml:"strict"`
}

// LoadConfig reads a FileConfig from a YAML file.
func LoadConfig(filePath string) (*FileConfig, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseConfig(bin)
}

// ParseConfig decodes a FileConfig from YAML.
func ParseConfig(bin []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(bin, &fc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return &fc, nil
}

// GenerateSample writes a sample config with default values to filePath.
func GenerateSample(filePath string) error {
	fc := FileConfig{
		Linkage:     SingleLinkage{}.Name(),
		Metric:      "squared_euclidean",
		NumClusters: 2,
	}
	bin, err := yaml.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Config resolves the named linkage and metric into a Config.
// The "minkowski" metric takes its order from MinkowskiP (default 2).
func (fc FileConfig) Config() (Config, error) {
	linkage, err := LinkageByName(fc.Linkage)
	if err != nil {
		return Config{}, err
	}

	var metric DistanceMetric
	if fc.Metric == "minkowski" {
		p := fc.MinkowskiP
		if p == 0 {
			p = 2
		}
		if p < 1 {
			return Config{}, fmt.Errorf("%w: minkowski_p must be >= 1, got %g", ErrInvalidInput, p)
		}
		metric = MinkowskiMetric{P: p}
	} else if metric, err = MetricByName(fc.Metric); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Linkage:   linkage,
		Metric:    metric,
		TrackTree: fc.TrackTree,
		TreeDepth: fc.TreeDepth,
		Strict:    fc.Strict,
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
