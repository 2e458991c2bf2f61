// cmd/ghost-umi/main.go
package main

import (
	"os"

	"github.com/nceglia/ghost/internal/umiapp"
)

func main() {
	os.Exit(umiapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
