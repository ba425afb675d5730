// Package version exposes build information injected with -ldflags.
package version

import "fmt"

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/rshade/coolroof/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return date
}

// String returns a one-line description for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
