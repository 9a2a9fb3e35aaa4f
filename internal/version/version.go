// Package version exposes the build metadata printed by `ij --version`.
package version

import (
	"fmt"
)

// Populated at link time, for example:
//
//	-ldflags "-X github.com/faizmokh/ij/internal/version.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version string, adding commit and build date when they were stamped.
func Info() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
