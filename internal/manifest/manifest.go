// Package manifest serializes a generated dataset to disk: a YAML summary
// manifest (bucket names, sizes, strategy, seed) plus one JSON Lines file
// per bucket holding its entries, one JSON object per line.
package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/HiroakiMikami/deep-coder/internal/codec"
	"github.com/HiroakiMikami/deep-coder/internal/dedup"
)

// BucketManifest describes one bucket's generated output.
type BucketManifest struct {
	Name     string `yaml:"name"`
	Size     int    `yaml:"size"`
	FilePath string `yaml:"file"`
}

// Manifest is the YAML summary written alongside the per-bucket JSON
// Lines files.
type Manifest struct {
	GeneratedAt string           `yaml:"generated_at"`
	Strategy    string           `yaml:"strategy"`
	Seed        int64            `yaml:"seed"`
	Buckets     []BucketManifest `yaml:"buckets"`
}

// entryLine is one JSON Lines record: a program's textual form plus its
// examples, each value rendered with the golden textual codec so the file
// is readable without loading the Go types back.
type entryLine struct {
	Program  string   `json:"program"`
	Inputs   [][]string `json:"inputs"`
	Outputs  []string `json:"outputs"`
}

// WriteBucket writes one bucket's entries as JSON Lines to path, one
// object per line.
func WriteBucket(path string, entries []dedup.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bucket file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		line := entryLine{
			Program: codec.EncodeProgram(e.Program),
			Inputs:  make([][]string, len(e.Examples)),
			Outputs: make([]string, len(e.Examples)),
		}
		for i, ex := range e.Examples {
			in := make([]string, len(ex.Input))
			for j, v := range ex.Input {
				in[j] = v.String()
			}
			line.Inputs[i] = in
			line.Outputs[i] = ex.Output.String()
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("encoding entry in %s: %w", path, err)
		}
	}
	return w.Flush()
}

// Write writes the summary manifest to path as YAML.
func Write(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// New builds a Manifest from bucket name/size/path triples generated at
// the current time.
func New(strategy string, seed int64, buckets []BucketManifest) Manifest {
	return Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Strategy:    strategy,
		Seed:        seed,
		Buckets:     buckets,
	}
}

// Load reads a summary manifest back from path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
