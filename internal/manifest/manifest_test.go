package manifest

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/dedup"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
)

func TestWriteBucketProducesOneJSONObjectPerLine(t *testing.T) {
	entries := []dedup.Entry{
		{
			Program: dsl.Program{Statements: []dsl.Statement{
				{Variable: 0, Function: dsl.ReadList},
				{Variable: 1, Function: dsl.Minimum, Arguments: []dsl.Argument{dsl.NewVariableArgument(0)}},
			}},
			Examples: []interp.Example{
				{Input: []interp.Value{interp.List([]interp.Value{interp.Int(3), interp.Int(1)})}, Output: interp.Int(1)},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "bucket.jsonl")
	if err := WriteBucket(path, entries); err != nil {
		t.Fatalf("WriteBucket failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written bucket file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		lines++
		var line entryLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines, err)
		}
		if line.Program == "" {
			t.Error("expected a non-empty encoded program")
		}
		if len(line.Inputs) != 1 || len(line.Outputs) != 1 {
			t.Errorf("expected one input/output pair, got %d/%d", len(line.Inputs), len(line.Outputs))
		}
	}
	if lines != 1 {
		t.Errorf("expected 1 line, got %d", lines)
	}
}

func TestWriteAndLoadManifestRoundTrip(t *testing.T) {
	m := Manifest{
		GeneratedAt: "2026-01-01T00:00:00Z",
		Strategy:    "dfs",
		Seed:        7,
		Buckets:     []BucketManifest{{Name: "small", Size: 3, FilePath: "small.jsonl"}},
	}
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := Write(path, m); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Strategy != m.Strategy || got.Seed != m.Seed || len(got.Buckets) != 1 {
		t.Errorf("Load() = %+v, want %+v", got, m)
	}
	if got.Buckets[0].Name != "small" || got.Buckets[0].Size != 3 {
		t.Errorf("Buckets[0] = %+v, want name=small size=3", got.Buckets[0])
	}
}

func TestNewStampsFieldsVerbatim(t *testing.T) {
	buckets := []BucketManifest{{Name: "a", Size: 1, FilePath: "a.jsonl"}}
	m := New("sort_and_add", 42, buckets)
	if m.Strategy != "sort_and_add" || m.Seed != 42 {
		t.Errorf("New() = %+v, want strategy=sort_and_add seed=42", m)
	}
	if m.GeneratedAt == "" {
		t.Error("expected GeneratedAt to be populated")
	}
	if len(m.Buckets) != 1 || m.Buckets[0].Name != "a" {
		t.Errorf("Buckets = %+v, want the passed-through bucket", m.Buckets)
	}
}
