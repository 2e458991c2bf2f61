// internal/writers/brokenpipe.go
package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the read side of stdout went
// away. The ghost tools stream barcode and mapping tables to stdout, so
// `ghost-map ... | head` closes the pipe mid-run; that is a normal way
// to end a run, not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
