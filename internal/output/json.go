// internal/output/json.go
package output

import (
	"io"

	"github.com/nceglia/ghost/internal/aggregate"
	"github.com/nceglia/ghost/internal/jsonutil"
	"github.com/nceglia/ghost/pkg/api"
)

// ToAPIMapping converts the aggregated output to the stable wire schema (v1).
func ToAPIMapping(out aggregate.Output) api.MappingV1 {
	return api.MappingV1{
		EqClasses: out.EqClasses,
		Coverage:  out.Coverage,
	}
}

// WriteMappingJSON writes the two mapping tables as one pretty JSON object.
func WriteMappingJSON(w io.Writer, out aggregate.Output) error {
	return jsonutil.EncodePretty(w, ToAPIMapping(out))
}

// WriteStringsJSON writes a JSON array of strings (barcodes, UMIs).
func WriteStringsJSON(w io.Writer, v []string) error {
	if v == nil {
		v = []string{}
	}
	return jsonutil.EncodePretty(w, v)
}
