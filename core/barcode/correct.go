// core/barcode/correct.go

// Package barcode classifies per-read cell barcodes against a whitelist,
// admitting exact matches and single-mismatch neighbors.
package barcode

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/nceglia/ghost/core/fastq"
)

// Extract returns the cell barcode: the first Length bytes of a read
// sequence. Shorter sequences yield a truncated barcode; correction then
// degrades to shorter comparisons rather than failing.
func Extract(seq []byte) string {
	if len(seq) < Length {
		return string(seq)
	}
	return string(seq[:Length])
}

// Mismatches counts positional disagreements between seq and ref, walking
// paired positions over the shorter length and giving up once a second
// mismatch is seen. The result is exact for 0 and 1 and saturates at 2;
// correction only ever needs the ≤1 test.
func Mismatches(seq, ref string) int {
	n := len(seq)
	if len(ref) < n {
		n = len(ref)
	}
	mm := 0
	for i := 0; i < n; i++ {
		if seq[i] != ref[i] {
			mm++
			if mm > 1 {
				break
			}
		}
	}
	return mm
}

// MinMismatches returns the smallest Mismatches value of bc against any
// whitelist entry, or 2 for an empty whitelist.
func MinMismatches(bc string, wl *Whitelist) int {
	min := 2
	for _, ref := range wl.Entries() {
		if mm := Mismatches(bc, ref); mm < min {
			min = mm
			if min == 0 {
				break
			}
		}
	}
	return min
}

// Stats summarizes one correction pass.
type Stats struct {
	Reads     int // input reads
	Exact     int // distinct barcodes matching the whitelist exactly
	Invalid   int // distinct barcodes with no exact match
	Corrected int // barcodes admitted by the ≤1-mismatch pass
}

// CollectValid classifies every read's barcode against wl and returns the
// sorted, deduplicated set considered valid: exact whitelist members plus
// any barcode within one mismatch of an entry. A corrected barcode keeps
// its original spelling — the matched whitelist entry is never substituted.
// The correction pass deliberately rescans exact matches as well.
func CollectValid(reads []fastq.Record, wl *Whitelist, workers int) ([]string, Stats) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	barcodes := extractAll(reads, workers)

	var exact, invalid []string
	for _, bc := range barcodes {
		if wl.Contains(bc) {
			exact = append(exact, bc)
		} else {
			invalid = append(invalid, bc)
		}
	}
	exact = sortedDedup(exact)
	invalid = sortedDedup(invalid)

	// One ≤1-mismatch verdict per extracted barcode, in parallel. The
	// whitelist is shared read-only across all workers.
	correctable := make([]bool, len(barcodes))
	forEachChunk(len(barcodes), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			correctable[i] = MinMismatches(barcodes[i], wl) <= 1
		}
	})

	valid := make([]string, len(exact))
	copy(valid, exact)
	seen := make(map[string]struct{}, len(exact))
	for _, bc := range exact {
		seen[bc] = struct{}{}
	}
	corrected := 0
	for i, bc := range barcodes {
		if !correctable[i] {
			continue
		}
		corrected++
		if _, dup := seen[bc]; dup {
			continue
		}
		seen[bc] = struct{}{}
		valid = append(valid, bc)
	}
	sort.Strings(valid)

	return valid, Stats{
		Reads:     len(reads),
		Exact:     len(exact),
		Invalid:   len(invalid),
		Corrected: corrected,
	}
}

// extractAll pulls the barcode prefix out of every read, preserving input
// order via indexed writes.
func extractAll(reads []fastq.Record, workers int) []string {
	out := make([]string, len(reads))
	forEachChunk(len(reads), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = Extract(reads[i].Seq)
		}
	})
	return out
}

// forEachChunk fans fn out over [0,n) in contiguous index ranges, one per
// worker. Chunks never overlap, so workers share no mutable state.
func forEachChunk(n, workers int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never error
}

// sortedDedup sorts in place and drops adjacent duplicates.
func sortedDedup(v []string) []string {
	sort.Strings(v)
	out := v[:0]
	for _, s := range v {
		if len(out) == 0 || s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
