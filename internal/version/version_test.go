package version

import (
	"strings"
	"testing"
)

func TestInfoIncludesBuildFields(t *testing.T) {
	prevVersion, prevCommit := Version, Commit
	Version, Commit = "9.9.9", "abc1234"
	defer func() { Version, Commit = prevVersion, prevCommit }()

	info := Info()
	for _, want := range []string{"rvgui 9.9.9", "commit: abc1234", "build: "} {
		if !strings.Contains(info, want) {
			t.Fatalf("Info() = %q, missing %q", info, want)
		}
	}
}
