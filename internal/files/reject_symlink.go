package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RejectSymlinkPath returns an error if path or its parent directory is a
// symlink or a reparse point. Missing components are allowed.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	for _, current := range []string{filepath.Dir(abs), abs} {
		info, err := os.Lstat(current)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("inspect path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing to write through symlink: %s (at %s)", path, current)
		}
		reparse, err := isReparsePoint(current)
		if err != nil {
			return fmt.Errorf("check reparse point: %w", err)
		}
		if reparse {
			return fmt.Errorf("refusing to write through reparse point: %s (at %s)", path, current)
		}
	}
	return nil
}
