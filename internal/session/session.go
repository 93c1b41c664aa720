// Package session holds the form state of one patching run: the selected
// tool, patch bundle and APK plus the derived output location.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/configstore"
	"github.com/oukeidos/rvgui/internal/files"
)

const (
	patchedSuffix = "-patched"

	extJar     = ".jar"
	extPatches = ".rvp"
	extAPK     = ".apk"
)

type Session struct {
	CLIJarPath  string
	PatchesPath string
	APKPath     string
	OutputDir   string
	OutputName  string
}

// FromRecord seeds a session with the remembered paths.
func FromRecord(rec configstore.Record) *Session {
	return &Session{
		CLIJarPath:  rec.CLIJarPath,
		PatchesPath: rec.PatchesPath,
	}
}

// Remember copies the paths worth keeping across runs into rec.
func (s *Session) Remember(rec *configstore.Record) {
	rec.CLIJarPath = s.CLIJarPath
	rec.PatchesPath = s.PatchesPath
}

// SetAPK selects the APK and points the output next to it with a
// "-patched" name. An empty path clears the derived output too.
func (s *Session) SetAPK(path string) {
	s.APKPath = strings.TrimSpace(path)
	if s.APKPath == "" {
		s.OutputDir = ""
		s.OutputName = ""
		return
	}
	s.OutputDir = filepath.Dir(s.APKPath)
	s.OutputName = PatchedName(s.APKPath)
}

// PatchedName returns the output file name for apk: "app.apk" -> "app-patched.apk".
func PatchedName(apk string) string {
	base := filepath.Base(apk)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = extAPK
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + patchedSuffix + ext
}

// Reset clears every selection.
func (s *Session) Reset() {
	*s = Session{}
}

// Validate checks that every input exists with the expected extension and
// that the output directory is present. All problems are reported at once.
func (s *Session) Validate() error {
	var errs []error
	check := func(label, path, ext string) {
		if err := checkInputFile(path, ext); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
	}
	check("ReVanced CLI JAR", s.CLIJarPath, extJar)
	check("Patches RVP", s.PatchesPath, extPatches)
	check("APK file", s.APKPath, extAPK)

	if s.OutputDir == "" {
		errs = append(errs, errors.New("output directory: not selected"))
	} else if info, err := os.Stat(s.OutputDir); err != nil {
		errs = append(errs, fmt.Errorf("output directory: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("output directory: %s is not a directory", s.OutputDir))
	}
	if strings.TrimSpace(s.OutputName) == "" {
		errs = append(errs, errors.New("output filename: empty"))
	} else if !isPlainName(s.OutputName) {
		errs = append(errs, fmt.Errorf("output filename: %q must be a file name, not a path", s.OutputName))
	}

	if len(errs) == 0 {
		return nil
	}
	joined := errors.Join(errs...)
	return apperrors.InvalidInput(joined.Error(), joined)
}

func checkInputFile(path, ext string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("not selected")
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%s does not have a %s extension", filepath.Base(path), ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", filepath.Base(path))
	}
	return nil
}

// isPlainName reports whether name stays inside the directory it is joined to.
func isPlainName(name string) bool {
	return name != "." && name != ".." && filepath.Base(name) == name
}

// OutputPath joins the output directory and name and moves it aside from any
// existing file.
func (s *Session) OutputPath() (string, error) {
	if s.OutputDir == "" || s.OutputName == "" {
		return "", apperrors.InvalidInput("output location not set", nil)
	}
	if !isPlainName(s.OutputName) {
		return "", apperrors.InvalidInput("output filename must not contain a directory", nil)
	}
	path, changed, err := files.SafePath(filepath.Join(s.OutputDir, s.OutputName))
	if err != nil {
		return "", err
	}
	if changed {
		s.OutputName = filepath.Base(path)
	}
	return path, nil
}

// PatchArgs returns the argument vector for the ReVanced CLI run that would
// produce output.
func (s *Session) PatchArgs(javaBin, output string) []string {
	if javaBin == "" {
		javaBin = "java"
	}
	return []string{javaBin, "-jar", s.CLIJarPath, "patch", "-p", s.PatchesPath, "-o", output, s.APKPath}
}
