// Package harness drives dataset generation: one independent worker per
// configured bucket, each running a synthesiser-free random search
// (enumerate + sample, the same path the synthesiser's examples come
// from) until its bucket's target size is reached or the whole run is
// told to abort. Workers never share mutable state; the only
// cross-worker coordination is an atomic per-worker counter and an
// atomic abort flag that a monitor goroutine sets once every worker has
// either hit its target or stalled for one sampling interval.
package harness

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HiroakiMikami/deep-coder/internal/attribute"
	"github.com/HiroakiMikami/deep-coder/internal/config"
	"github.com/HiroakiMikami/deep-coder/internal/dedup"
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/enumerate"
	"github.com/HiroakiMikami/deep-coder/internal/sampler"
)

// Worker owns one bucket: the restriction it enumerates programs from,
// the running bucket of deduplicated entries, and its own size counter.
type Worker struct {
	Bucket      config.BucketSpec
	Restriction enumerate.Restriction
	dedup       *dedup.Bucket
	size        atomic.Int64
	abort       atomic.Bool
}

// NewWorker builds a Worker for bucket, enumerating every primitive in
// declaration order (a harness worker has no attribute guidance of its
// own — it is generating the dataset the attribute predictor will later
// be trained on).
func NewWorker(bucket config.BucketSpec, maxLength int) *Worker {
	prefixLen := len(bucket.Reads)
	return &Worker{
		Bucket:      bucket,
		Restriction: enumerate.FullRestriction(prefixLen+1, prefixLen+maxLength),
		dedup:       dedup.NewBucket(),
	}
}

// Size reports the worker's bucket size in example-bundles so far.
func (w *Worker) Size() int64 { return w.size.Load() }

// Entries returns the worker's accumulated, deduplicated entries.
func (w *Worker) Entries() []dedup.Entry { return w.dedup.Entries() }

// run enumerates every well-typed program in w.Restriction, sampling
// EXAMPLE_NUM examples for each and offering it to the dedup bucket. It
// polls the abort flag at every yielded candidate and stops cooperatively
// once set.
func (w *Worker) run(rng *rand.Rand, targetSize int) {
	prefix := prefixProgram(w.Bucket.Reads)
	enumerate.Enumerate(w.Restriction, identityInfo, func(program dsl.Program, _ struct{}) bool {
		if w.abort.Load() || int(w.size.Load()) >= targetSize {
			return false
		}
		examples := sampler.GenerateExamples(rng, program, config.ExampleNum)
		if len(examples) < config.ExampleNum {
			return true
		}
		if w.dedup.Offer(program, examples) {
			w.size.Store(int64(w.dedup.Size()))
		}
		return true
	}, prefix, struct{}{})
}

func identityInfo(_ dsl.Program, info struct{}) struct{} { return info }

func prefixProgram(reads []string) dsl.Program {
	stmts := make([]dsl.Statement, len(reads))
	for i, r := range reads {
		fn := dsl.ReadInt
		if r == "list" {
			fn = dsl.ReadList
		}
		stmts[i] = dsl.Statement{Variable: uint16(i), Function: fn}
	}
	return dsl.Program{Statements: stmts}
}

// Run spawns up to maxWorkers bucket-worker goroutines at a time via an
// errgroup's SetLimit (buckets beyond that queue until a slot frees up),
// plus one unbounded monitor goroutine on a time.Ticker that samples
// every worker's size counter each interval and sets every worker's
// abort flag once all of them have reached their target or none of them
// grew since the previous sample.
func Run(ctx context.Context, workers []*Worker, targetSize int, samplingInterval time.Duration, seed int64, maxWorkers int) error {
	monitor, ctx := errgroup.WithContext(ctx)
	last := make([]int64, len(workers))

	monitor.Go(func() error {
		ticker := time.NewTicker(samplingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				stalled := true
				allDone := true
				for i, w := range workers {
					size := w.size.Load()
					if size != last[i] {
						stalled = false
					}
					last[i] = size
					if int(size) < targetSize {
						allDone = false
					}
				}
				if allDone || stalled {
					for _, w := range workers {
						w.abort.Store(true)
					}
					return nil
				}
			}
		}
	})

	g, _ := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}
	for i, w := range workers {
		w := w
		seedForWorker := seed + int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seedForWorker))
			w.run(rng, targetSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, w := range workers {
		w.abort.Store(true)
	}
	return monitor.Wait()
}

// AttributeOf is a convenience the dataset manifest writer uses to record
// each stored entry's attribute vector alongside its program.
func AttributeOf(program dsl.Program) attribute.Attribute { return attribute.FromProgram(program) }
