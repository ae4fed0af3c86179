// Package version carries build metadata for the nbforge binary.
package version

import "fmt"

// Injected at build time, e.g.
//
//	go build -ldflags "-X github.com/sofmeright/nbforge/src/version.Version=v0.2.0" ./src/cli
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("nbforge %s (%s, %s)", Version, Commit, BuildDate)
}
