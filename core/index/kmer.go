// core/index/kmer.go
package index

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"
)

// Transcript is one reference sequence to index.
type Transcript struct {
	Name string
	Seq  []byte
}

// Index is a k-mer posting-list pseudoalignment index. Coverage of a read
// is the number of its k-mers found in the index; the equivalence class is
// the set of transcripts compatible with every found k-mer. Fields are
// exported for the gob codec; treat a built Index as read-only.
type Index struct {
	K           int
	Transcripts []string
	Postings    map[string][]uint32 // k-mer → ascending transcript ids
}

var _ Aligner = (*Index)(nil)

// Build indexes every K-length window of each transcript.
func Build(k int, transcripts []Transcript) (*Index, error) {
	if k < 1 {
		return nil, fmt.Errorf("index: k must be ≥ 1, got %d", k)
	}
	ix := &Index{
		K:        k,
		Postings: make(map[string][]uint32),
	}
	for tid, tx := range transcripts {
		ix.Transcripts = append(ix.Transcripts, tx.Name)
		seen := make(map[string]struct{})
		for i := 0; i+k <= len(tx.Seq); i++ {
			km := string(tx.Seq[i : i+k])
			if _, dup := seen[km]; dup {
				continue
			}
			seen[km] = struct{}{}
			ix.Postings[km] = append(ix.Postings[km], uint32(tid))
		}
	}
	for km := range ix.Postings {
		ids := ix.Postings[km]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return ix, nil
}

// MapRead pseudoaligns one read. It returns false when no k-mer of the
// read occurs in the index.
func (ix *Index) MapRead(seq []byte) (Hit, bool) {
	if len(seq) < ix.K {
		return Hit{}, false
	}
	var (
		eq       []uint32
		coverage int
		first    = true
	)
	for i := 0; i+ix.K <= len(seq); i++ {
		ids, ok := ix.Postings[string(seq[i:i+ix.K])]
		if !ok {
			continue
		}
		coverage++
		if first {
			eq = append([]uint32(nil), ids...)
			first = false
		} else {
			eq = intersect(eq, ids)
		}
	}
	if coverage == 0 {
		return Hit{}, false
	}
	return Hit{EqClass: eq, Coverage: coverage}, true
}

// Save writes the index to path with gob.
func (ix *Index) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("index save: %w", err)
	}
	if err := gob.NewEncoder(fh).Encode(ix); err != nil {
		_ = fh.Close()
		return fmt.Errorf("index save %s: %w", path, err)
	}
	return fh.Close()
}

// Load reads a gob-serialized index from path.
func Load(path string) (*Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("index load: %w", err)
	}
	defer func() { _ = fh.Close() }()
	var ix Index
	if err := gob.NewDecoder(fh).Decode(&ix); err != nil {
		return nil, fmt.Errorf("index load %s: %w", path, err)
	}
	return &ix, nil
}

// intersect merges two ascending id slices, keeping common entries.
func intersect(a, b []uint32) []uint32 {
	out := a[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
