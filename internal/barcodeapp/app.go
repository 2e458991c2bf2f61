// internal/barcodeapp/app.go

// Package barcodeapp wires the ghost-barcodes tool: load the whitelist and
// R1 reads, run mismatch-tolerant correction, and emit the valid set.
package barcodeapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/nceglia/ghost/core/barcode"
	"github.com/nceglia/ghost/core/fastq"
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

	fs := cli.NewFlagSet("ghost-barcodes", "correct cell barcodes against a whitelist")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseBarcodeArgs(fs, argv)
	if code := appcore.HandleParseError(err, fs, outw, stderr); code >= 0 {
		return code
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ghost-barcodes version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	logging.Setup(stderr, appcore.LogLevel(cfg.Logging.Level, opts.Quiet), cfg.Logging.Format)
	log := logging.WithComponent("ghost-barcodes")

	wl, err := barcode.LoadWhitelist(opts.Whitelist)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("whitelist loaded", "barcodes", wl.Len())

	reads, err := fastq.ReadAll(opts.Fastq)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("reads loaded", "reads", len(reads))

	threads := appcore.ResolveThreads(opts.Threads, cfg.Resources.Threads)
	valid, stats := barcode.CollectValid(reads, wl, threads)
	log.Info("barcodes corrected",
		"exact", stats.Exact,
		"invalid", stats.Invalid,
		"corrected", stats.Corrected,
		"valid", len(valid))

	in, writeErr := writers.StartLineWriter(outw, opts.Output, threads*4)
	for _, bc := range valid {
		in <- bc
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
