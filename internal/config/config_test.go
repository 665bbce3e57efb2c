package config

import (
	"errors"
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/errs"
)

func TestParseAppliesDefaults(t *testing.T) {
	data := []byte(`
buckets:
  - name: small
    reads: ["list"]
    target_size: 10
`)
	cfg, err := Parse(data, "config.yaml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Strategy != StrategyDFS {
		t.Errorf("Strategy = %v, want default %v", cfg.Strategy, StrategyDFS)
	}
	if cfg.MaxLength != 4 {
		t.Errorf("MaxLength = %d, want default 4", cfg.MaxLength)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want default 1", cfg.Workers)
	}
	if cfg.DatabasePath != "dataset.db" {
		t.Errorf("DatabasePath = %q, want default %q", cfg.DatabasePath, "dataset.db")
	}
	if cfg.SamplingInterval != "5s" {
		t.Errorf("SamplingInterval = %q, want default %q", cfg.SamplingInterval, "5s")
	}
}

func TestParseRejectsNoBuckets(t *testing.T) {
	_, err := Parse([]byte(`strategy: dfs`), "config.yaml")
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for a bucket-less config, got %v", err)
	}
}

func TestParseRejectsDuplicateBucketNames(t *testing.T) {
	data := []byte(`
buckets:
  - name: a
    reads: ["int"]
  - name: a
    reads: ["list"]
`)
	_, err := Parse(data, "config.yaml")
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for duplicate bucket names, got %v", err)
	}
}

func TestParseRejectsBadReadKind(t *testing.T) {
	data := []byte(`
buckets:
  - name: a
    reads: ["string"]
`)
	_, err := Parse(data, "config.yaml")
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for an unknown read kind, got %v", err)
	}
}

func TestParseRejectsUnknownStrategy(t *testing.T) {
	data := []byte(`
buckets:
  - name: a
    reads: ["int"]
strategy: bogus
`)
	_, err := Parse(data, "config.yaml")
	if !errors.Is(err, errs.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for an unknown strategy, got %v", err)
	}
}

func TestParseDefaultsZeroWorkers(t *testing.T) {
	data := []byte(`
buckets:
  - name: a
    reads: ["int"]
workers: 0
`)
	cfg, err := Parse(data, "config.yaml")
	if err != nil {
		t.Fatalf("workers: 0 should fall back to the default, got error: %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want defaulted 1", cfg.Workers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("expected Load to fail on a missing file")
	}
}
