// core/umi/umi_test.go
package umi

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/nceglia/ghost/core/fastq"
)

func TestExtractPositions(t *testing.T) {
	// 30-symbol sequence: UMI is symbols 16..25 inclusive.
	seq := []byte("AAAACCCCGGGGTTTTACGTACGTACNNNN")
	if got := Extract(seq); got != "ACGTACGTAC" {
		t.Errorf("Extract = %q, want %q", got, "ACGTACGTAC")
	}
}

func TestExtractTruncates(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"AAAACCCCGGGGTTTTACGT", "ACGT"}, // 20 nt: partial UMI
		{"AAAACCCCGGGGTTTT", ""},         // exactly the barcode, nothing left
		{"ACGT", ""},                     // shorter than the barcode
		{"", ""},
	}
	for _, tc := range tests {
		if got := Extract([]byte(tc.seq)); got != tc.want {
			t.Errorf("Extract(%q) = %q, want %q", tc.seq, got, tc.want)
		}
	}
}

func TestExtractAllPreservesOrder(t *testing.T) {
	var reads []fastq.Record
	var want []string
	for i := 0; i < 50; i++ {
		u := fmt.Sprintf("UMI%07d", i)
		reads = append(reads, fastq.Record{
			ID:  fmt.Sprintf("r%d", i),
			Seq: []byte("AAAACCCCGGGGTTTT" + u + "GGGG"),
		})
		want = append(want, u)
	}
	got := ExtractAll(reads, 4)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractAll order not preserved:\ngot  %v\nwant %v", got[:5], want[:5])
	}
}

func TestExtractAllEmpty(t *testing.T) {
	if got := ExtractAll(nil, 4); got != nil {
		t.Fatalf("ExtractAll(nil) = %v, want nil", got)
	}
}
