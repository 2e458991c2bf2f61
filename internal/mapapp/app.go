// internal/mapapp/app.go

// Package mapapp wires the ghost-map tool: load the index, run the
// concurrent mapping pipeline over R2 reads, and emit the two per-read
// tables.
package mapapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nceglia/ghost/core/index"
	"github.com/nceglia/ghost/internal/aggregate"
	"github.com/nceglia/ghost/internal/appcore"
	"github.com/nceglia/ghost/internal/cli"
	"github.com/nceglia/ghost/internal/config"
	"github.com/nceglia/ghost/internal/logging"
	"github.com/nceglia/ghost/internal/output"
	"github.com/nceglia/ghost/internal/pipeline"
	"github.com/nceglia/ghost/internal/version"
	"github.com/nceglia/ghost/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("ghost-map", "classify cDNA reads against a transcriptome index")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseMapArgs(fs, argv)
	if code := appcore.HandleParseError(err, fs, outw, stderr); code >= 0 {
		return code
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ghost-map version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	logging.Setup(stderr, appcore.LogLevel(cfg.Logging.Level, opts.Quiet), cfg.Logging.Format)
	log := logging.WithComponent("ghost-map")

	threads := appcore.ResolveThreads(opts.Threads, cfg.Resources.Threads)
	threshold := opts.CoverageThreshold
	if threshold < 0 {
		threshold = cfg.Mapping.CoverageThreshold
	}
	progress := opts.ProgressEvery
	if progress < 0 {
		progress = cfg.Mapping.ProgressEvery
	}
	log.Debug("run profile",
		"threads", threads,
		"memory_gb", cfg.Resources.MemoryGB,
		"coverage_threshold", threshold)

	ix, err := index.Load(opts.Index)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("index loaded", "transcripts", len(ix.Transcripts), "k", ix.K)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	col := aggregate.NewCollector()
	perr := pipeline.ForEachResult(ctx, pipeline.Config{
		Threads:           threads,
		CoverageThreshold: threshold,
		ProgressEvery:     progress,
		Log:               log,
	}, opts.Fastq, ix, col.Add)
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	out, rep := col.Finalize()
	log.Info("mapping finished",
		"reads", rep.Processed,
		"mapped", rep.Mapped,
		"failed", rep.Failed)
	for _, re := range rep.Errors {
		log.Warn("unclassified read", "read_id", re.ReadID, "err", re.Err)
	}

	switch opts.Output {
	case cli.FormatJSON:
		err = output.WriteMappingJSON(outw, out)
	default:
		err = output.WriteMappingText(outw, out, true, opts.Sort)
	}
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
