// internal/jsonutil/json.go

// Package jsonutil holds the one JSON encoding policy shared by every
// ghost output path: two-space indent, trailing newline.
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w. All machine-readable
// output (mapping tables, barcode lists) goes through here so the
// formatting never drifts between tools.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
