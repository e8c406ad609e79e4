// Package buildinfo holds the release stamped into a binary at link time:
//
//	go build -ldflags "-X github.com/matzehuels/floorsmith/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/floorsmith/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build stamp as reported by the API health check.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build stamp.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Template is the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// UserAgent is the product token sent in the Server header.
func UserAgent() string {
	return "floorsmith/" + Version
}
