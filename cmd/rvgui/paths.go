package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oukeidos/rvgui/internal/apperrors"
)

// absPath anchors a user-typed path to the working directory so a remembered
// path still resolves when rvgui later runs elsewhere. Empty stays empty.
func absPath(flag, p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", apperrors.InvalidInput(fmt.Sprintf("--%s: cannot resolve %q", flag, p), err)
	}
	return abs, nil
}

// absPaths resolves several flag values in place.
func absPaths(values map[string]*string) error {
	for flag, p := range values {
		abs, err := absPath(flag, *p)
		if err != nil {
			return err
		}
		*p = abs
	}
	return nil
}
