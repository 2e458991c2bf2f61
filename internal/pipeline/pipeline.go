// internal/pipeline/pipeline.go

// Package pipeline runs the concurrent read-classification loop: a single
// feeder streams FASTQ records into a bounded jobs channel, a fixed pool
// of workers pseudoaligns each read against a shared read-only Aligner,
// and one collector drains the bounded results channel.
//
// Shutdown is structural: a WaitGroup closes the results channel when the
// last worker exits, so the collector can never miss in-flight results or
// finalize early. Per-read failures travel the results channel as results
// with Err set; they are reported, never fatal, and every read's
// classification status is accounted for.
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nceglia/ghost/core/fastq"
	"github.com/nceglia/ghost/core/index"
)

// Config controls the mapping pipeline.
type Config struct {
	Threads           int          // worker goroutines (>=1)
	CoverageThreshold int          // minimum coverage for a mapped call
	ProgressEvery     int          // log running totals every N results; 0 disables
	Log               *slog.Logger // nil = slog default
}

// MapResult is the classification of a single read. Exactly one is
// produced per input record. Err is set when the record could not be
// classified; Mapped is then always false.
type MapResult struct {
	ReadID   string
	Mapped   bool
	EqClass  []uint32
	Coverage int
	Err      error
}

// ForEachResult streams MapResults to visit, one per record in fastqPath.
// Result order is arbitrary — only counts and set membership are
// guaranteed. It returns the first error encountered (including context
// cancellation); per-read Err values are not run errors.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	fastqPath string,
	al index.Aligner,
	visit func(MapResult) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	jobs := make(chan fastq.Record, cfg.Threads*2)
	results := make(chan MapResult, cfg.Threads)

	// Workers: classify outside any lock; the Aligner is shared read-only.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case results <- classify(rec, al, cfg.CoverageThreshold):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Close results once every worker has exited.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		processed, mapped := 0, 0
		for r := range results {
			if cerr != nil {
				continue // keep draining so workers never block
			}
			processed++
			if r.Mapped {
				mapped++
			}
			if cfg.ProgressEvery > 0 && processed%cfg.ProgressEvery == 0 {
				log.Info("mapping progress",
					"reads", processed,
					"mapped_rate", float64(mapped)*100/float64(processed))
			}
			if err := visit(r); err != nil {
				cerr = err
			}
		}
	}()

	// Feed
	ferr := fastq.Stream(ctx, fastqPath, func(rec fastq.Record) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- rec:
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if ferr != nil {
		return ferr
	}
	return cerr
}

// classify applies the mapping rule to one record. A read is mapped only
// when its coverage meets the threshold and its equivalence class is
// empty; anything else (including an aligner miss) is unmapped.
func classify(rec fastq.Record, al index.Aligner, threshold int) MapResult {
	if err := fastq.Validate(rec); err != nil {
		return MapResult{ReadID: rec.ID, Err: err}
	}
	hit, ok := al.MapRead(rec.Seq)
	if !ok {
		return MapResult{ReadID: rec.ID}
	}
	return MapResult{
		ReadID:   rec.ID,
		Mapped:   hit.Coverage >= threshold && len(hit.EqClass) == 0,
		EqClass:  hit.EqClass,
		Coverage: hit.Coverage,
	}
}
