// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/hexgrid/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/hexgrid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/hexgrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/hexgrid
package buildinfo

import "fmt"

// Unstamped builds report these values.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template, e.g.
// "hexgrid version v0.3.0 (abc1234, built 2026-10-15T00:00:00Z)".
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s (%s, built %s)\n", Version, Commit, Date)
}
