package main

import (
	"context"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
	"github.com/HiroakiMikami/deep-coder/internal/store"
)

func TestSplitTopLevelCommas(t *testing.T) {
	cases := map[string][]string{
		"1, 2, 3":  {"1", " 2", " 3"},
		"[1,2], 3": {"[1,2]", " 3"},
		"[1,2,3]":  {"[1,2,3]"},
		"":         {""},
	}
	for input, want := range cases {
		got := splitTopLevelCommas(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("splitTopLevelCommas(%q) = %#v, want %#v", input, got, want)
		}
	}
}

func TestRunEvalPrintsResultForGivenInput(t *testing.T) {
	path := writeProgramFile(t, "a <- read_list\nb <- minimum a\n")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	runErr := runEval([]string{path, "[3,1,2]"})
	w.Close()
	os.Stdout = old
	if runErr != nil {
		t.Fatalf("runEval failed: %v", runErr)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1" {
		t.Errorf("runEval printed %q, want %q", got, "1")
	}
}

func TestRunEvalRejectsMalformedInput(t *testing.T) {
	path := writeProgramFile(t, "a <- read_list\nb <- minimum a\n")
	if err := runEval([]string{path, "not-a-value"}); err == nil {
		t.Fatal("expected an error for a malformed input value")
	}
}

func writeProgramFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "program")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("writing program file: %v", err)
	}
	return f.Name()
}

func TestMaxBucketTarget(t *testing.T) {
	buckets := []config.BucketSpec{
		{Name: "a", TargetSize: 5},
		{Name: "b", TargetSize: 12},
		{Name: "c", TargetSize: 3},
	}
	if got := maxBucketTarget(buckets); got != 12 {
		t.Errorf("maxBucketTarget = %d, want 12", got)
	}
}

func writeTempFile(t *testing.T, content string) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "examples")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		t.Fatalf("seeking temp file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadExamplesParsesMultipleInputsAndOutput(t *testing.T) {
	f := writeTempFile(t, "2, [3,5,4,7,5] -> 7\n")
	examples, err := readExamples(f)
	if err != nil {
		t.Fatalf("readExamples failed: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
	if len(examples[0].Input) != 2 {
		t.Fatalf("expected 2 input values, got %d", len(examples[0].Input))
	}
	if !examples[0].Output.Equal(interp.Int(7)) {
		t.Errorf("output = %v, want 7", examples[0].Output)
	}
}

func TestReadExamplesRejectsMissingArrow(t *testing.T) {
	f := writeTempFile(t, "2, 3\n")
	if _, err := readExamples(f); err == nil {
		t.Fatal("expected an error for a line missing \"->\"")
	} else if !strings.Contains(err.Error(), "->") {
		t.Errorf("error message should mention the missing arrow, got: %v", err)
	}
}

func TestReadExamplesRejectsEmptyInput(t *testing.T) {
	f := writeTempFile(t, "")
	if _, err := readExamples(f); err == nil {
		t.Fatal("expected an error when stdin has no example lines")
	}
}

// TestRunGenPopulatesManifestAndStore confirms gen's three outputs all
// land: the per-bucket JSONL file, the summary manifest, and the SQLite
// dataset store at cfg.DatabasePath.
func TestRunGenPopulatesManifestAndStore(t *testing.T) {
	dir := t.TempDir()
	configPath := dir + "/config.yaml"
	configYAML := "buckets:\n  - name: small\n    reads: [\"int\"]\n    target_size: 2\nmax_length: 1\nsampling_interval: 20ms\ndatabase_path: " + dir + "/dataset.db\n"
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(wd)

	if err := runGen([]string{configPath}); err != nil {
		t.Fatalf("runGen failed: %v", err)
	}

	if _, err := os.Stat(dir + "/small.jsonl"); err != nil {
		t.Errorf("expected small.jsonl to be written: %v", err)
	}
	if _, err := os.Stat(dir + "/manifest.yaml"); err != nil {
		t.Errorf("expected manifest.yaml to be written: %v", err)
	}

	ds, err := store.Open(dir + "/dataset.db")
	if err != nil {
		t.Fatalf("opening dataset store: %v", err)
	}
	defer ds.Close()
	n, err := ds.CountByBucket(context.Background(), "small")
	if err != nil {
		t.Fatalf("CountByBucket failed: %v", err)
	}
	if n == 0 {
		t.Error("expected the dataset store to hold at least one entry for bucket \"small\"")
	}
}
