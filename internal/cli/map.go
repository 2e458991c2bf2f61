// internal/cli/map.go
package cli

import (
	"errors"
	"flag"
	"fmt"
)

// MapOptions holds all ghost-map flags.
type MapOptions struct {
	Index  string
	Fastq  string // R2: cDNA reads to classify
	Config string

	Threads           int
	CoverageThreshold int // -1 = take from the run profile
	ProgressEvery     int // -1 = take from the run profile

	Output string
	Sort   bool
	Quiet  bool

	Version bool
}

// ParseMapArgs registers and parses the ghost-map flags.
func ParseMapArgs(fs *flag.FlagSet, argv []string) (MapOptions, error) {
	var opt MapOptions
	var help bool

	fs.StringVar(&opt.Index, "index", "", "serialized transcriptome index [*]")
	fs.StringVar(&opt.Fastq, "fastq", "", "R2 FASTQ file with cDNA reads (.gz ok, '-' = stdin) [*]")
	fs.StringVar(&opt.Config, "config", "", "YAML run profile []")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.CoverageThreshold, "coverage-threshold", -1, "minimum coverage for a mapped call (-1 = profile default) [-1]")
	fs.IntVar(&opt.ProgressEvery, "progress-every", -1, "log progress every N reads (0 = off, -1 = profile default) [-1]")

	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | json [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort text rows by read id for determinism [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-error logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.Index == "" {
		return opt, errors.New("--index is required")
	}
	if opt.Fastq == "" {
		return opt, errors.New("--fastq is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.CoverageThreshold < -1 {
		return opt, errors.New("--coverage-threshold must be ≥ -1")
	}
	if opt.ProgressEvery < -1 {
		return opt, errors.New("--progress-every must be ≥ -1")
	}
	if !validFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
