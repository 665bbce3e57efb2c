package config

import (
	"fmt"
	"os"

	"github.com/HiroakiMikami/deep-coder/internal/errs"
	"gopkg.in/yaml.v3"
)

// Strategy selects which synthesiser search strategy the synth command
// runs; gen only records it in the dataset manifest.
type Strategy string

const (
	StrategyDFS         Strategy = "dfs"
	StrategySortAndAdd  Strategy = "sort_and_add"
)

// BucketSpec names one input-shape bucket the dataset harness fills: how
// many reads of each kind, in order, and how many examples-bundles it
// targets.
type BucketSpec struct {
	Name      string   `yaml:"name"`
	Reads     []string `yaml:"reads"` // "int" or "list", one per read-prefix slot
	TargetSize int     `yaml:"target_size"`
}

// Config is the dataset harness's top-level configuration, loaded from a
// YAML file.
type Config struct {
	Buckets         []BucketSpec `yaml:"buckets"`
	Strategy        Strategy     `yaml:"strategy,omitempty"`
	MaxLength       int          `yaml:"max_length,omitempty"`
	Seed            int64        `yaml:"seed,omitempty"`
	Workers         int          `yaml:"workers,omitempty"`
	DatabasePath    string       `yaml:"database_path,omitempty"`
	PredictorURL    string       `yaml:"predictor_url,omitempty"`
	SamplingInterval string      `yaml:"sampling_interval,omitempty"`
}

// Load reads and parses a dataset harness config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses config content from bytes. path is used only in error
// messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Strategy == "" {
		c.Strategy = StrategyDFS
	}
	if c.MaxLength == 0 {
		c.MaxLength = 4
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "dataset.db"
	}
	if c.SamplingInterval == "" {
		c.SamplingInterval = "5s"
	}
}

func (c *Config) validate(path string) error {
	if len(c.Buckets) == 0 {
		return fmt.Errorf("%s: %w: no buckets defined", path, errs.ErrConfigInvalid)
	}
	seen := make(map[string]bool, len(c.Buckets))
	for i, b := range c.Buckets {
		if b.Name == "" {
			return fmt.Errorf("%s: buckets[%d]: %w: name is required", path, i, errs.ErrConfigInvalid)
		}
		if seen[b.Name] {
			return fmt.Errorf("%s: buckets[%d]: %w: duplicate bucket name %q", path, i, errs.ErrConfigInvalid, b.Name)
		}
		seen[b.Name] = true
		if len(b.Reads) == 0 {
			return fmt.Errorf("%s: bucket %q: %w: at least one read is required", path, b.Name, errs.ErrConfigInvalid)
		}
		for _, r := range b.Reads {
			if r != "int" && r != "list" {
				return fmt.Errorf("%s: bucket %q: %w: read kind %q must be \"int\" or \"list\"", path, b.Name, errs.ErrConfigInvalid, r)
			}
		}
	}
	if c.Strategy != StrategyDFS && c.Strategy != StrategySortAndAdd {
		return fmt.Errorf("%s: %w: unknown strategy %q", path, errs.ErrConfigInvalid, c.Strategy)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%s: %w: workers must be >= 1", path, errs.ErrConfigInvalid)
	}
	return nil
}
