package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxNumberedCandidates = 9

// SafePath returns a path that does not exist yet. An existing path gets a
// numbered suffix (_1.._9) before the extension, then a UUID suffix.
// The bool result reports whether the path was changed.
func SafePath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		return "", false, fmt.Errorf("path is empty")
	}
	exists, err := pathExists(path)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return path, false, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; i <= maxNumberedCandidates; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		exists, err := pathExists(candidate)
		if err != nil {
			return "", false, err
		}
		if !exists {
			return candidate, true, nil
		}
	}

	suffix := uuid.NewString()
	if u, err := uuid.NewV7(); err == nil {
		suffix = u.String()
	}
	return fmt.Sprintf("%s_%s%s", stem, suffix, ext), true, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
