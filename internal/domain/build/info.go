// Package build describes the running binary.
package build

import "fmt"

const (
	// RepoURL is where the sources live.
	RepoURL = "https://github.com/bnema/dockyard"

	devVersion = "dev"
)

// Authors are credited by `dockyard about`.
var Authors = []string{"bnema"}

// Info holds values injected with -ldflags at build time.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether the binary was built without a release version.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == devVersion
}

// String returns a one-line version, e.g. "v0.3.0 (a1b2c3d)".
func (i Info) String() string {
	version := i.Version
	if i.IsDev() {
		version = devVersion
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
