// Package buildinfo carries the version stamped into locusmap binaries.
//
// Release builds set the variables with ldflags, for example:
//
//	go build -ldflags "-X github.com/matzehuels/locusmap/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/locusmap/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/locusmap
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the source revision the binary was built from.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// String returns the build information as key: value lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template is the cobra version template.
func Template() string {
	return "{{.Name}} " + Version + " (" + Commit + ", " + Date + ")\n"
}
