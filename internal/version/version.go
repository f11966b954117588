// Package version carries build metadata injected at link time.
package version

import "fmt"

// Build information, overridden with
// -ldflags "-X github.com/arthur-debert/configtool/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info renders the version block printed by `<name> version`.
func Info(name string) string {
	return fmt.Sprintf("%s version %s\nCommit: %s\nBuilt:  %s\n", name, Version, Commit, Date)
}
