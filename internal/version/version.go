// Package version holds reactfix build metadata, overridden at link time
// with -ldflags "-X github.com/open-cli-collective/reactfix/internal/version.Version=...".
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
