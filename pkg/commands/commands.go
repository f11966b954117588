// Package commands provides high-level command implementations for configtool.
//
// Each command lives in its own subdirectory and is re-exported here:
//   - apply/ - Apply command
package commands

import (
	"github.com/arthur-debert/configtool/pkg/commands/apply"
)

// ApplyOptions configures Apply.
type ApplyOptions = apply.ApplyOptions

// ApplyResult is the outcome of Apply.
type ApplyResult = apply.ApplyResult

// Apply applies the configured theme to the configured files.
func Apply(opts ApplyOptions) (*ApplyResult, error) {
	return apply.Apply(opts)
}
