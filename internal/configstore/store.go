package configstore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pelletier/go-toml/v2"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/files"
	"github.com/oukeidos/rvgui/internal/logger"
)

const (
	dirPerms  os.FileMode = 0o700
	filePerms os.FileMode = 0o600
)

// State tracks whether the store has been read since it was created.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store owns the on-disk record. It is meant for a single goroutine.
type Store struct {
	path  string
	state State
}

// New returns a store backed by the given file.
func New(path string) *Store {
	return &Store{path: path}
}

// Open returns a store at the default user location.
func Open() (*Store, error) {
	_, file, err := ResolvePath()
	if err != nil {
		return nil, apperrors.StorageUnavailable(err)
	}
	return New(file), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Dir returns the directory holding the store file.
func (s *Store) Dir() string { return filepath.Dir(s.path) }

func (s *Store) State() State { return s.state }

// Load reads the persisted record. It never fails: a missing, unreadable or
// malformed store yields Default().
func (s *Store) Load() Record {
	s.state = StateLoaded

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No saved settings; using defaults", "path", s.path)
		return Default()
	}
	if err != nil {
		logger.Warn("Saved settings unreadable; using defaults", "path", s.path, "error", err)
		return Default()
	}

	rec, err := decodeRecord(data)
	if err != nil {
		logger.Warn("Saved settings malformed; using defaults", "path", s.path, "error", err)
		return Default()
	}
	logger.Debug("Settings loaded", "path", s.path)
	return rec
}

// Save atomically replaces the persisted record with rec.
func (s *Store) Save(rec Record) error {
	data, err := toml.Marshal(toPersisted(rec))
	if err != nil {
		return apperrors.StorageUnavailable(fmt.Errorf("encode settings: %w", err))
	}
	if err := os.MkdirAll(s.Dir(), dirPerms); err != nil {
		return classifyWriteError(fmt.Errorf("create settings dir: %w", err))
	}
	target, err := s.writeTarget()
	if err != nil {
		return classifyWriteError(err)
	}
	if err := files.AtomicWrite(target, data, filePerms); err != nil {
		return classifyWriteError(err)
	}
	s.state = StateLoaded
	logger.Debug("Settings saved", "path", s.path)
	return nil
}

// Clear removes the persisted record. Clearing an absent record succeeds.
// A symlinked store file is unlinked; its target is left alone.
func (s *Store) Clear() error {
	if s.isLink() {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return classifyWriteError(fmt.Errorf("remove settings link: %w", err))
		}
		logger.Debug("Settings link removed", "path", s.path)
		return nil
	}
	if err := files.RemoveIfExists(s.path); err != nil {
		return classifyWriteError(err)
	}
	logger.Debug("Settings cleared", "path", s.path)
	return nil
}

func (s *Store) isLink() bool {
	info, err := os.Lstat(s.path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// writeTarget returns the file Save replaces. A store file that is a symlink,
// as dotfile managers create, is written through to the file it points at.
func (s *Store) writeTarget() (string, error) {
	if !s.isLink() {
		return s.path, nil
	}
	target, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return "", fmt.Errorf("resolve settings link: %w", err)
	}
	logger.Debug("Settings file is a link", "path", s.path, "target_path", target)
	return target, nil
}

func classifyWriteError(err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission),
		errors.Is(err, syscall.EROFS),
		errors.Is(err, syscall.ENOSPC),
		errors.Is(err, syscall.EDQUOT):
		return apperrors.NotWritable(err)
	default:
		return apperrors.StorageUnavailable(err)
	}
}

// decodeRecord applies per-key defaults for missing keys and rejects the whole
// document when it does not parse or a known key has the wrong type.
func decodeRecord(data []byte) (Record, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Record{}, fmt.Errorf("parse settings at line %d column %d: %w", row, col, err)
		}
		return Record{}, fmt.Errorf("parse settings: %w", err)
	}

	rec := Default()
	var err error
	if rec.CLIJarPath, err = pathField(raw, keyCLIJarPath, keyCLIJarPathRaw); err != nil {
		return Record{}, err
	}
	if rec.PatchesPath, err = pathField(raw, keyPatchesPath, keyPatchesPathRaw); err != nil {
		return Record{}, err
	}
	if rec.SaveLogsEnabled, err = boolField(raw, keySaveLogs, rec.SaveLogsEnabled); err != nil {
		return Record{}, err
	}
	if rec.SaveConfigEnabled, err = boolField(raw, keySaveConfig, rec.SaveConfigEnabled); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// pathField prefers the base64 companion key, which carries paths that are
// not valid UTF-8.
func pathField(raw map[string]any, key, rawKey string) (string, error) {
	plain, err := stringField(raw, key, "")
	if err != nil {
		return "", err
	}
	encoded, err := stringField(raw, rawKey, "")
	if err != nil || encoded == "" {
		return plain, err
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", rawKey, err)
	}
	return string(decoded), nil
}

func stringField(raw map[string]any, key, fallback string) (string, error) {
	value, ok := raw[key]
	if !ok {
		return fallback, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("parse %s: expected string, got %T", key, value)
	}
	return s, nil
}

func boolField(raw map[string]any, key string, fallback bool) (bool, error) {
	value, ok := raw[key]
	if !ok {
		return fallback, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("parse %s: expected boolean, got %T", key, value)
	}
	return b, nil
}
