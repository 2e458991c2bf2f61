// internal/umiapp/app.go

// Package umiapp wires the ghost-umi tool: load R1 reads and emit one UMI
// per read, in input order.
package umiapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/nceglia/ghost/core/fastq"
	"github.com/nceglia/ghost/core/umi"
	"github.com/nceglia/ghost/internal/appcore"
	"github.com/nceglia/ghost/internal/cli"
	"github.com/nceglia/ghost/internal/config"
	"github.com/nceglia/ghost/internal/logging"
	"github.com/nceglia/ghost/internal/version"
	"github.com/nceglia/ghost/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("ghost-umi", "extract unique molecular identifiers from R1 reads")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseUmiArgs(fs, argv)
	if code := appcore.HandleParseError(err, fs, outw, stderr); code >= 0 {
		return code
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ghost-umi version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	logging.Setup(stderr, appcore.LogLevel(cfg.Logging.Level, opts.Quiet), cfg.Logging.Format)
	log := logging.WithComponent("ghost-umi")

	reads, err := fastq.ReadAll(opts.Fastq)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	threads := appcore.ResolveThreads(opts.Threads, cfg.Resources.Threads)
	umis := umi.ExtractAll(reads, threads)
	log.Info("umis extracted", "reads", len(reads), "umis", len(umis))

	in, writeErr := writers.StartLineWriter(outw, opts.Output, threads*4)
	for _, u := range umis {
		in <- u
	}
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
