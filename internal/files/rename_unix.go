//go:build !windows

package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// renameAtomic relies on rename(2) replacing newPath in one step when both
// paths share a filesystem, which AtomicWrite guarantees by creating the temp
// file in the destination directory.
func renameAtomic(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(newPath), err)
	}
	return nil
}
