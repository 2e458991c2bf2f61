// internal/version/version.go
package version

// Version is the toolkit release string, overridable at link time via
// -ldflags "-X github.com/nceglia/ghost/internal/version.Version=...".
var Version = "0.2.0"
