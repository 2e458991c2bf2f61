// internal/cli/cli_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func TestMapArgsOK(t *testing.T) {
	o, err := ParseMapArgs(newFS(), []string{
		"--index", "t.idx", "--fastq", "r2.fastq", "--threads", "4", "--output", "json",
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Index != "t.idx" || o.Fastq != "r2.fastq" || o.Threads != 4 || o.Output != "json" {
		t.Errorf("bad parse %+v", o)
	}
	if o.CoverageThreshold != -1 || o.ProgressEvery != -1 {
		t.Errorf("profile-default sentinels lost: %+v", o)
	}
}

func TestMapArgsMissingIndex(t *testing.T) {
	if _, err := ParseMapArgs(newFS(), []string{"--fastq", "r2.fastq"}); err == nil {
		t.Fatal("expected error when --index missing")
	}
}

func TestMapArgsBadOutput(t *testing.T) {
	_, err := ParseMapArgs(newFS(), []string{
		"--index", "t.idx", "--fastq", "r2.fastq", "--output", "xml",
	})
	if err == nil {
		t.Fatal("expected error for invalid --output")
	}
}

func TestMapArgsHelp(t *testing.T) {
	if _, err := ParseMapArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestBarcodeArgsOK(t *testing.T) {
	o, err := ParseBarcodeArgs(newFS(), []string{
		"--fastq", "r1.fastq", "--whitelist", "wl.txt",
	})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Fastq != "r1.fastq" || o.Whitelist != "wl.txt" || o.Output != FormatText {
		t.Errorf("bad parse %+v", o)
	}
}

func TestBarcodeArgsMissingWhitelist(t *testing.T) {
	if _, err := ParseBarcodeArgs(newFS(), []string{"--fastq", "r1.fastq"}); err == nil {
		t.Fatal("expected error when --whitelist missing")
	}
}

func TestUmiArgsOK(t *testing.T) {
	o, err := ParseUmiArgs(newFS(), []string{"--fastq", "r1.fastq"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Fastq != "r1.fastq" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestUmiArgsMissingFastq(t *testing.T) {
	if _, err := ParseUmiArgs(newFS(), nil); err == nil {
		t.Fatal("expected error when --fastq missing")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseMapArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version parse: %+v err=%v", o, err)
	}
}
