// Package shell owns the in-memory settings record for the lifetime of the
// process and decides when it reaches durable storage.
package shell

import (
	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/configstore"
	"github.com/oukeidos/rvgui/internal/logger"
)

// Store is the persistence surface the shell needs.
type Store interface {
	Load() configstore.Record
	Save(configstore.Record) error
	Clear() error
}

type Shell struct {
	store  Store
	record configstore.Record
	dirty  bool
	closed bool
}

// Open loads the persisted record once and returns a shell holding it.
func Open(store Store) *Shell {
	return &Shell{store: store, record: store.Load()}
}

// Record returns a copy of the current in-memory record.
func (s *Shell) Record() configstore.Record {
	return s.record
}

// Update mutates the in-memory record. Nothing is written until Checkpoint.
func (s *Shell) Update(fn func(*configstore.Record)) {
	if fn == nil {
		return
	}
	fn(&s.record)
	s.dirty = true
}

// Checkpoint persists the record when config saving is enabled. A failure is
// logged as a warning and returned for the caller to surface; it never stops
// the process.
func (s *Shell) Checkpoint() (bool, error) {
	if !s.record.SaveConfigEnabled {
		logger.Debug("Config saving disabled; checkpoint skipped")
		return false, nil
	}
	if err := s.store.Save(s.record); err != nil {
		logger.Warn("Settings not saved", "reason", apperrors.PublicMessage(err), "error", err)
		return false, err
	}
	s.dirty = false
	return true, nil
}

// Reset removes the persisted record and returns the in-memory one to defaults.
func (s *Shell) Reset() error {
	if err := s.store.Clear(); err != nil {
		logger.Warn("Settings not cleared", "reason", apperrors.PublicMessage(err), "error", err)
		return err
	}
	s.record = configstore.Default()
	s.dirty = false
	return nil
}

// Close runs the shutdown checkpoint once if there are unsaved changes.
// Later calls do nothing.
func (s *Shell) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.dirty {
		return nil
	}
	_, err := s.Checkpoint()
	return err
}
