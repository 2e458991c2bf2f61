// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"github.com/nceglia/ghost/internal/version"
)

// Output formats shared by every tool.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name, oneLiner string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Version: %s

Usage of %s:
`, name, oneLiner, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

func validFormat(f string) bool { return f == FormatText || f == FormatJSON }
