// internal/writers/lines.go

// Package writers owns the output goroutines: each Start* call returns a
// channel to feed and a 1-buffered error channel that yields exactly one
// value when the writer finishes.
package writers

import (
	"fmt"
	"io"

	"github.com/nceglia/ghost/internal/output"
)

// StartLineWriter spins up a writer goroutine for string items (barcodes,
// UMIs). Text streams line by line; JSON buffers and emits one array.
func StartLineWriter(out io.Writer, format string, bufSize int) (chan<- string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan string, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []string
			for s := range in {
				buf = append(buf, s)
			}
			err = output.WriteStringsJSON(out, buf)

		case "text":
			for s := range in {
				if err == nil {
					if _, werr := fmt.Fprintln(out, s); werr != nil {
						err = werr
					}
				}
			}

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
