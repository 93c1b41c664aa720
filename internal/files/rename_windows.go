//go:build windows

package files

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// renameAtomic uses MoveFileEx so an existing destination is replaced in one step.
func renameAtomic(oldPath, newPath string) error {
	from, err := windows.UTF16PtrFromString(oldPath)
	if err != nil {
		return fmt.Errorf("invalid source path: %w", err)
	}
	to, err := windows.UTF16PtrFromString(newPath)
	if err != nil {
		return fmt.Errorf("invalid destination path: %w", err)
	}
	return windows.MoveFileEx(from, to, windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}
