// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nceglia/ghost/internal/aggregate"
	"github.com/nceglia/ghost/pkg/api"
)

func sample() aggregate.Output {
	return aggregate.Output{
		EqClasses: map[string][]uint32{"r2": nil, "r1": {3, 9}},
		Coverage:  map[string]int{"r2": 40, "r1": 35},
	}
}

func TestWriteMappingTextSorted(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMappingText(&buf, sample(), true, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != TSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "r1\t3,9\t35" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "r2\t-\t40" {
		t.Errorf("row 2 = %q (empty class renders as '-')", lines[2])
	}
}

func TestWriteMappingTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMappingText(&buf, sample(), false, true); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "read_id") {
		t.Error("header written despite header=false")
	}
}

func TestWriteMappingJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMappingJSON(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	var v api.MappingV1
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if v.Coverage["r2"] != 40 || len(v.EqClasses) != 2 {
		t.Errorf("roundtrip = %+v", v)
	}
}

func TestWriteStringsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStringsJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty slice = %q, want []", got)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"AAAA", "CCCC"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "AAAA\nCCCC\n" {
		t.Errorf("lines = %q", buf.String())
	}
}
