// core/umi/umi.go

// Package umi extracts unique molecular identifiers from R1 reads. A UMI
// is the fixed-position substring directly after the cell barcode.
package umi

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nceglia/ghost/core/fastq"
)

const (
	// Offset is where the UMI starts: right after the 16 nt cell barcode.
	Offset = 16
	// Length is the UMI width in nucleotides.
	Length = 10
)

// Extract returns the UMI of a read sequence: bytes [Offset, Offset+Length).
// Sequences shorter than Offset+Length yield a truncated (possibly empty)
// UMI rather than an error; R1 reads from supported chemistries are always
// long enough, so the degenerate case only shows up on damaged input.
func Extract(seq []byte) string {
	if len(seq) <= Offset {
		return ""
	}
	end := Offset + Length
	if end > len(seq) {
		end = len(seq)
	}
	return string(seq[Offset:end])
}

// ExtractAll returns one UMI per input read, in input order.
func ExtractAll(reads []fastq.Record, workers int) []string {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	n := len(reads)
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	out := make([]string, n)
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = Extract(reads[i].Seq)
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
