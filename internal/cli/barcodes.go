// internal/cli/barcodes.go
package cli

import (
	"errors"
	"flag"
	"fmt"
)

// BarcodeOptions holds all ghost-barcodes flags.
type BarcodeOptions struct {
	Fastq     string // R1: barcode+UMI reads
	Whitelist string
	Config    string

	Threads int
	Output  string
	Quiet   bool

	Version bool
}

// ParseBarcodeArgs registers and parses the ghost-barcodes flags.
func ParseBarcodeArgs(fs *flag.FlagSet, argv []string) (BarcodeOptions, error) {
	var opt BarcodeOptions
	var help bool

	fs.StringVar(&opt.Fastq, "fastq", "", "R1 FASTQ file with barcode+UMI reads (.gz ok, '-' = stdin) [*]")
	fs.StringVar(&opt.Whitelist, "whitelist", "", "barcode whitelist, one per line [*]")
	fs.StringVar(&opt.Config, "config", "", "YAML run profile []")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | json [text]")
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

	if opt.Fastq == "" {
		return opt, errors.New("--fastq is required")
	}
	if opt.Whitelist == "" {
		return opt, errors.New("--whitelist is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if !validFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
