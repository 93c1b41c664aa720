package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oukeidos/rvgui/internal/apperrors"
	"github.com/oukeidos/rvgui/internal/configstore"
)

type fakeStore struct {
	loaded   configstore.Record
	saved    []configstore.Record
	clears   int
	saveErr  error
	clearErr error
}

func (f *fakeStore) Load() configstore.Record { return f.loaded }

func (f *fakeStore) Save(r configstore.Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeStore) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.clears++
	return nil
}

func TestOpenSeedsFromStore(t *testing.T) {
	want := configstore.Record{CLIJarPath: "/tools/cli.jar", SaveConfigEnabled: true}
	s := Open(&fakeStore{loaded: want})
	if got := s.Record(); got != want {
		t.Fatalf("Record() = %+v, want %+v", got, want)
	}
}

func TestCheckpointHonoursSaveConfig(t *testing.T) {
	store := &fakeStore{}
	s := Open(store)
	s.Update(func(r *configstore.Record) { r.CLIJarPath = "/tools/cli.jar" })

	saved, err := s.Checkpoint()
	if err != nil || saved {
		t.Fatalf("Checkpoint() = (%v, %v), want (false, nil) while disabled", saved, err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("store written while config saving disabled")
	}

	s.Update(func(r *configstore.Record) { r.SaveConfigEnabled = true })
	saved, err = s.Checkpoint()
	if err != nil || !saved {
		t.Fatalf("Checkpoint() = (%v, %v), want (true, nil)", saved, err)
	}
	if len(store.saved) != 1 || store.saved[0].CLIJarPath != "/tools/cli.jar" {
		t.Fatalf("unexpected saves: %+v", store.saved)
	}
}

func TestCheckpointFailureIsReturned(t *testing.T) {
	store := &fakeStore{saveErr: apperrors.NotWritable(os.ErrPermission)}
	s := Open(store)
	s.Update(func(r *configstore.Record) { r.SaveConfigEnabled = true })

	saved, err := s.Checkpoint()
	if saved {
		t.Fatalf("expected saved=false on failure")
	}
	if !apperrors.IsPersistence(err) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if s.Record().SaveConfigEnabled != true {
		t.Fatalf("in-memory record must survive a failed save")
	}
}

func TestResetClearsStoreAndRecord(t *testing.T) {
	store := &fakeStore{loaded: configstore.Record{CLIJarPath: "/a.jar", SaveLogsEnabled: true}}
	s := Open(store)
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if store.clears != 1 {
		t.Fatalf("clears = %d, want 1", store.clears)
	}
	if !s.Record().IsDefault() {
		t.Fatalf("record not reset: %+v", s.Record())
	}
}

func TestResetFailureKeepsRecord(t *testing.T) {
	rec := configstore.Record{CLIJarPath: "/a.jar"}
	s := Open(&fakeStore{loaded: rec, clearErr: errors.New("busy")})
	if err := s.Reset(); err == nil {
		t.Fatalf("expected error")
	}
	if s.Record() != rec {
		t.Fatalf("record changed after failed reset: %+v", s.Record())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	store := &fakeStore{loaded: configstore.Record{SaveConfigEnabled: true}}
	s := Open(store)
	s.Update(func(r *configstore.Record) { r.PatchesPath = "/p.rvp" })
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(store.saved))
	}
}

func TestDisablingSaveConfigKeepsExistingFile(t *testing.T) {
	store := configstore.New(filepath.Join(t.TempDir(), "config.toml"))
	first := Open(store)
	first.Update(func(r *configstore.Record) {
		r.CLIJarPath = "/tools/cli.jar"
		r.SaveConfigEnabled = true
	})
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := Open(store)
	second.Update(func(r *configstore.Record) {
		r.CLIJarPath = "/other/cli.jar"
		r.SaveConfigEnabled = false
	})
	if err := second.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := configstore.New(store.Path()).Load()
	if got.CLIJarPath != "/tools/cli.jar" || !got.SaveConfigEnabled {
		t.Fatalf("persisted record changed or removed: %+v", got)
	}
}

func TestCloseSkipsCleanRecord(t *testing.T) {
	store := &fakeStore{loaded: configstore.Record{SaveConfigEnabled: true}}
	untouched := Open(store)
	if err := untouched.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("unchanged record should not be saved on Close")
	}

	s := Open(store)
	s.Update(func(r *configstore.Record) { r.SaveLogsEnabled = true })
	if _, err := s.Checkpoint(); err != nil {
		t.Fatalf("Checkpoint failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(store.saved))
	}
}
