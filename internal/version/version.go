package version

import "fmt"

// Version is the release version embedded in the binary.
// It can be overridden at build time via:
// go build -ldflags "-X github.com/oukeidos/rvgui/internal/version.Version=1.0.0"
var Version = "1.0.0"

// Commit is the git commit hash embedded in the binary.
var Commit = "unknown"

// BuildDate is the RFC3339 build timestamp embedded in the binary.
var BuildDate = "unknown"

const (
	AppName = "rvgui"
	Author  = "Anoop Kumar"
	License = "MIT"
)

// Info returns a multi-line version string for CLI output.
func Info() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuild: %s", AppName, Version, Commit, BuildDate)
}
