// internal/appcore/appcore.go

// Package appcore holds the small pieces every ghost tool shares: flag
// failure handling and flag-over-profile resolution.
package appcore

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

// ResolveThreads picks the worker count: explicit flag first, then the run
// profile, then all CPUs.
func ResolveThreads(flagVal, profileVal int) int {
	if flagVal > 0 {
		return flagVal
	}
	if profileVal > 0 {
		return profileVal
	}
	return runtime.NumCPU()
}

// LogLevel returns the effective log level; --quiet raises it to error.
func LogLevel(profileLevel string, quiet bool) string {
	if quiet {
		return "error"
	}
	return profileLevel
}

// HandleParseError maps a flag-parsing outcome to an exit code, printing
// help or the error plus usage. Returns -1 when parsing succeeded and the
// caller should continue.
func HandleParseError(err error, fs *flag.FlagSet, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return -1
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	default:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
}
