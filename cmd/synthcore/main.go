// Command synthcore is the CLI entry point for the three top-level
// operations the dataset toolkit exposes: generating a dataset (gen),
// synthesising a program from examples (synth), and evaluating a program
// against a given input tuple (eval).
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/HiroakiMikami/deep-coder/internal/attribute"
	"github.com/HiroakiMikami/deep-coder/internal/codec"
	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/errs"
	"github.com/HiroakiMikami/deep-coder/internal/harness"
	"github.com/HiroakiMikami/deep-coder/internal/interp"
	"github.com/HiroakiMikami/deep-coder/internal/logging"
	"github.com/HiroakiMikami/deep-coder/internal/manifest"
	"github.com/HiroakiMikami/deep-coder/internal/predictor"
	"github.com/HiroakiMikami/deep-coder/internal/store"
	"github.com/HiroakiMikami/deep-coder/internal/synth"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "synth":
		err = runSynth(os.Args[2:])
	case "eval":
		err = runEval(os.Args[2:])
	case "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "synthcore: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "synthcore: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: synthcore gen <config.yaml>\n       synthcore synth <config.yaml> < examples\n       synthcore eval <program.txt> <input...>\n")
}

// isInteractive reports whether stdout is an actual terminal, so gen can
// decide whether to print a per-bucket progress line or stay quiet.
func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runGen(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("gen: %w", errs.ErrConfigInvalid)
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	log := logging.Default()
	interactive := isInteractive()

	workers := make([]*harness.Worker, len(cfg.Buckets))
	for i, b := range cfg.Buckets {
		workers[i] = harness.NewWorker(b, cfg.MaxLength)
	}

	interval, err := time.ParseDuration(cfg.SamplingInterval)
	if err != nil {
		return fmt.Errorf("parsing sampling_interval: %w", err)
	}

	ctx := context.Background()
	if err := harness.Run(ctx, workers, maxBucketTarget(cfg.Buckets), interval, cfg.Seed, cfg.Workers); err != nil {
		return fmt.Errorf("running dataset harness: %w", err)
	}

	ds, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer ds.Close()

	bucketManifests := make([]manifest.BucketManifest, len(workers))
	for i, w := range workers {
		path := fmt.Sprintf("%s.jsonl", w.Bucket.Name)
		if err := manifest.WriteBucket(path, w.Entries()); err != nil {
			return err
		}
		shape := strings.Join(w.Bucket.Reads, ",")
		for _, e := range w.Entries() {
			attrJSON, err := json.Marshal(harness.AttributeOf(e.Program).Vector())
			if err != nil {
				return fmt.Errorf("encoding attribute for bucket %s: %w", w.Bucket.Name, err)
			}
			if err := ds.Put(ctx, w.Bucket.Name, shape, e.Program, string(attrJSON), e.Examples); err != nil {
				return fmt.Errorf("storing entry for bucket %s: %w", w.Bucket.Name, err)
			}
		}
		bucketManifests[i] = manifest.BucketManifest{Name: w.Bucket.Name, Size: len(w.Entries()), FilePath: path}
		if interactive {
			log.Infof("bucket %s: %d entries written to %s and stored in %s", w.Bucket.Name, len(w.Entries()), path, cfg.DatabasePath)
		}
	}
	m := manifest.New(string(cfg.Strategy), cfg.Seed, bucketManifests)
	return manifest.Write("manifest.yaml", m)
}

func maxBucketTarget(buckets []config.BucketSpec) int {
	max := 0
	for _, b := range buckets {
		if b.TargetSize > max {
			max = b.TargetSize
		}
	}
	return max
}

func runSynth(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("synth: %w", errs.ErrConfigInvalid)
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	examples, err := readExamples(os.Stdin)
	if err != nil {
		return err
	}

	var pred predictor.AttributePredictor = predictor.StaticPredictor{Attribute: attribute.Empty()}
	if cfg.PredictorURL != "" {
		pred = predictor.NewHTTPPredictor(cfg.PredictorURL)
	}
	attr, err := pred.Predict(context.Background(), examples)
	if err != nil {
		return err
	}

	var ok bool
	var result string
	if cfg.Strategy == config.StrategySortAndAdd {
		prog, found := synth.SortAndAdd(examples, attr, cfg.MaxLength)
		ok = found
		result = codec.EncodeProgram(prog)
	} else {
		prog, found := synth.DFS(examples, attr, cfg.MaxLength)
		ok = found
		result = codec.EncodeProgram(prog)
	}
	if !ok {
		return errs.ErrProgramNotFound
	}
	fmt.Println(result)
	return nil
}

func runEval(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("eval: %w", errs.ErrConfigInvalid)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading program %s: %w", args[0], err)
	}
	program, ok := codec.DecodeProgram(string(data))
	if !ok {
		return fmt.Errorf("decoding program %s: malformed text", args[0])
	}
	input := make([]interp.Value, len(args)-1)
	for i, text := range args[1:] {
		v, ok := codec.ParseValue(text)
		if !ok {
			return fmt.Errorf("eval: malformed input value %q", text)
		}
		input[i] = v
	}
	output, ok := interp.Eval(program, input)
	if !ok {
		return fmt.Errorf("eval: program %s has no statements", args[0])
	}
	fmt.Println(output.String())
	return nil
}

// readExamples parses one example per line: comma-separated input values
// (golden textual form), then "->", then the output value, e.g.
// "2, [3,5,4,7,5] -> 7".
func readExamples(r *os.File) ([]interp.Example, error) {
	scanner := bufio.NewScanner(r)
	var examples []interp.Example
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		arrow := strings.LastIndex(line, "->")
		if arrow < 0 {
			return nil, fmt.Errorf("malformed example line %q: missing \"->\"", line)
		}
		inputText := strings.TrimSpace(line[:arrow])
		outputText := strings.TrimSpace(line[arrow+2:])
		output, ok := codec.ParseValue(outputText)
		if !ok {
			return nil, fmt.Errorf("malformed example output %q", outputText)
		}
		var input []interp.Value
		for _, part := range splitTopLevelCommas(inputText) {
			v, ok := codec.ParseValue(strings.TrimSpace(part))
			if !ok {
				return nil, fmt.Errorf("malformed example input %q", part)
			}
			input = append(input, v)
		}
		examples = append(examples, interp.Example{Input: input, Output: output})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading examples: %w", err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("synth: no examples given on stdin")
	}
	return examples, nil
}

// splitTopLevelCommas splits on commas that aren't nested inside a list's
// brackets, so "[1,2], 3" splits into "[1,2]" and " 3".
func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
