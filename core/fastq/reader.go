// core/fastq/reader.go

// Package fastq adapts the annogene FASTQ parser into the Record type the
// rest of the toolkit consumes. It handles plain, gzipped, and stdin input.
package fastq

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/seqyuan/annogene/io/fastq"
)

// Record is one sequencing read: identifier plus raw sequence.
// Immutable once produced; a Record lives for a single pipeline pass.
type Record struct {
	ID  string
	Seq []byte
}

// ErrMalformed marks input the parser cannot classify: a record missing
// its id or sequence, or a stream the scanner refuses to advance past
// (truncated record, sequence/quality length mismatch).
var ErrMalformed = errors.New("fastq: malformed record")

// Validate reports whether a Record carries enough to be classified.
func Validate(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrMalformed)
	}
	if len(r.Seq) == 0 {
		return fmt.Errorf("%w: read %q has empty sequence", ErrMalformed, r.ID)
	}
	return nil
}

// Stream parses FASTQ from path and calls emit once per record, in file
// order. It is cancelable and returns promptly when ctx is Done.
func Stream(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := fastq.NewScanner(fastq.NewReader(rc))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := emit(toRecord(sc.Seq())); err != nil {
			return err
		}
	}
	// The scanner stops on the first malformed record; without this check
	// the remainder of the file would be dropped without a trace.
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fastq %s: %w: %v", path, ErrMalformed, err)
	}
	return nil
}

// ReadAll loads every record from path into memory. The barcode and UMI
// tools make whole-file passes, so they load once and share the slice.
func ReadAll(path string) ([]Record, error) {
	var recs []Record
	err := Stream(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// toRecord converts an annogene sequence into a Record. The sequence bytes
// are copied so Records stay valid after the scanner advances.
func toRecord(s fastq.Sequence) Record {
	return Record{
		ID:  parseID(s.ID1),
		Seq: append([]byte(nil), s.Letters...),
	}
}

// parseID strips the leading '@' and any description after the first
// whitespace, leaving the bare read identifier.
func parseID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if len(hdr) > 0 && hdr[0] == '@' {
		hdr = hdr[1:]
	}
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
