// core/index/index.go

// Package index defines the pseudoalignment contract the read-mapping
// pipeline depends on, plus a k-mer posting-list implementation with a gob
// on-disk codec. The Aligner interface is the seam: any engine that can
// turn a read into an (equivalence class, coverage) pair plugs in.
package index

// Hit is the outcome of pseudoaligning one read: the equivalence class
// (transcript ids the read is compatible with) and the coverage support.
type Hit struct {
	EqClass  []uint32
	Coverage int
}

// Aligner maps a read sequence to a Hit. The boolean is false when the
// read hits nothing at all. Implementations must be safe for concurrent
// use: the pipeline shares one instance across all workers, read-only,
// without synchronization.
type Aligner interface {
	MapRead(seq []byte) (Hit, bool)
}

// ReadCoverageThreshold is the default minimum coverage for a read to be
// called mapped.
const ReadCoverageThreshold = 32
