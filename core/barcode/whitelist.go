// core/barcode/whitelist.go
package barcode

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Length is the fixed cell-barcode width at the start of each R1 read.
const Length = 16

// Whitelist is the authoritative set of barcodes known to correspond to
// real cells. Built once per run, read-only afterwards, and shared by
// reference across all workers — never copied per comparison.
type Whitelist struct {
	set     map[string]struct{}
	entries []string // sorted, for deterministic scans
}

// NewWhitelist builds a Whitelist from barcode strings, deduplicating.
func NewWhitelist(barcodes []string) *Whitelist {
	set := make(map[string]struct{}, len(barcodes))
	for _, bc := range barcodes {
		set[bc] = struct{}{}
	}
	entries := make([]string, 0, len(set))
	for bc := range set {
		entries = append(entries, bc)
	}
	sort.Strings(entries)
	return &Whitelist{set: set, entries: entries}
}

// LoadWhitelist reads a whitelist text file, one barcode per line.
// Blank lines are skipped; duplicates collapse by set semantics.
func LoadWhitelist(path string) (*Whitelist, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("whitelist: %w", err)
	}
	defer func() { _ = fh.Close() }()

	var barcodes []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		barcodes = append(barcodes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("whitelist %s: %w", path, err)
	}
	return NewWhitelist(barcodes), nil
}

// Contains reports exact membership.
func (w *Whitelist) Contains(bc string) bool {
	_, ok := w.set[bc]
	return ok
}

// Len returns the number of distinct whitelist entries.
func (w *Whitelist) Len() int { return len(w.entries) }

// Entries returns the sorted whitelist entries. Callers must not mutate
// the returned slice.
func (w *Whitelist) Entries() []string { return w.entries }
