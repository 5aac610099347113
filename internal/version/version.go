// Package version holds build metadata for the launcher.
package version

import (
	"fmt"
	"runtime"
)

var (
	// These variables are set via build flags (ldflags)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

// String returns a one-line summary of the build metadata
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildDate, GoVersion, runtime.GOOS, runtime.GOARCH)
}
