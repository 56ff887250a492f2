// Package version exposes build-time version information.
package version

import "fmt"

var (
	// Version is set via ldflags during the build.
	Version = "dev"
	// GitCommit is set via ldflags during the build.
	GitCommit = "unknown"
)

// String returns a human-readable version line.
func String() string {
	return fmt.Sprintf("weft %s (%s)", Version, GitCommit)
}
