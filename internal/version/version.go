package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/gohyd/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// String is the one-line version banner
func String() string {
	return fmt.Sprintf("gohyd v%s", Version)
}

// Details lists the build metadata, one "label: value" pair per line
func Details() []string {
	return []string{
		fmt.Sprintf("Commit:     %s", GitCommit),
		fmt.Sprintf("Built:      %s", BuildTime),
		fmt.Sprintf("Go:         %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}
