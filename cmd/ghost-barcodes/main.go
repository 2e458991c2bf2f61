// cmd/ghost-barcodes/main.go
package main

import (
	"os"

	"github.com/nceglia/ghost/internal/barcodeapp"
)

func main() {
	os.Exit(barcodeapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
