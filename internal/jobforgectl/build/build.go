package build

import "runtime"

// Build information. ReleaseVersion, GitCommit and BuildTime are overridden
// at link time via -ldflags.
var (
	ReleaseVersion = "UNKNOWN"
	GitCommit      = "UNKNOWN"
	BuildTime      = "UNKNOWN"
	GoVersion      = runtime.Version()
)
