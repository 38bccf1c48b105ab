// Package version provides build-time version information.
package version

import "fmt"

// Name is the program name shown in the CLI and the About dialog.
const Name = "interactive-map"

// These variables are set at build time using -ldflags
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, GitCommit, BuildTime)
}
