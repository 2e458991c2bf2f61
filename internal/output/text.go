// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nceglia/ghost/internal/aggregate"
)

// TSVHeader is the canonical header row for ghost-map text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "read_id\teq_class\tcoverage"

// WriteMappingText prints one TSV row per mapped read. An empty
// equivalence class renders as "-". Rows follow map iteration order
// unless sorted is set.
func WriteMappingText(w io.Writer, out aggregate.Output, header, sorted bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	ids := make([]string, 0, len(out.EqClasses))
	for id := range out.EqClasses {
		ids = append(ids, id)
	}
	if sorted {
		sort.Strings(ids)
	}
	for _, id := range ids {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\n",
			id, formatEqClass(out.EqClasses[id]), out.Coverage[id])
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteLines prints one string per line (barcodes, UMIs).
func WriteLines(w io.Writer, v []string) error {
	for _, s := range v {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func formatEqClass(eq []uint32) string {
	if len(eq) == 0 {
		return "-"
	}
	parts := make([]string, len(eq))
	for i, id := range eq {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
