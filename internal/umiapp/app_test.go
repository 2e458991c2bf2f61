// internal/umiapp/app_test.go
package umiapp

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRunTextOrderPreserved(t *testing.T) {
	seqs := []struct{ id, umi string }{
		{"r1", "ACGTACGTAC"},
		{"r2", "TTTTTTTTTT"},
		{"r3", "GGGGGGGGGG"},
	}
	var sb strings.Builder
	for _, s := range seqs {
		seq := "AAAACCCCGGGGTTTT" + s.umi + "NNNN"
		sb.WriteString("@" + s.id + "\n" + seq + "\n+\n" + strings.Repeat("I", len(seq)) + "\n")
	}
	fqPath := filepath.Join(t.TempDir(), "r1.fastq")
	if err := os.WriteFile(fqPath, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errw bytes.Buffer
	code := Run([]string{"--fastq", fqPath, "--threads", "2", "--quiet"}, &out, &errw)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errw.String())
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{"ACGTACGTAC", "TTTTTTTTTT", "GGGGGGGGGG"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("umis = %v, want %v (input order)", got, want)
	}
}

func TestRunMissingFastq(t *testing.T) {
	var out, errw bytes.Buffer
	code := Run([]string{
		"--fastq", filepath.Join(t.TempDir(), "nope.fastq"),
		"--quiet",
	}, &out, &errw)
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errw bytes.Buffer
	if code := Run(nil, &out, &errw); code != 2 {
		t.Fatalf("exit %d, want 2 with no flags", code)
	}
}
