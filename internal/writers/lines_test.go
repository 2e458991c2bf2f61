// internal/writers/lines_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"testing"
)

func feed(in chan<- string, items ...string) {
	for _, s := range items {
		in <- s
	}
	close(in)
}

func TestLineWriterText(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartLineWriter(&buf, "text", 4)
	feed(in, "AAAA", "CCCC")
	if err := <-errCh; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if buf.String() != "AAAA\nCCCC\n" {
		t.Errorf("text = %q", buf.String())
	}
}

func TestLineWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartLineWriter(&buf, "json", 4)
	feed(in, "AAAA", "CCCC")
	if err := <-errCh; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var v []string
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(v) != 2 || v[0] != "AAAA" {
		t.Errorf("json = %v", v)
	}
}

func TestLineWriterUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartLineWriter(&buf, "xml", 4)
	feed(in, "AAAA")
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestIsBrokenPipeNil(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Error("nil must not be a broken pipe")
	}
}
