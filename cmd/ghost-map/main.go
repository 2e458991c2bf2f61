// cmd/ghost-map/main.go
package main

import (
	"os"

	"github.com/nceglia/ghost/internal/mapapp"
)

func main() {
	os.Exit(mapapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
