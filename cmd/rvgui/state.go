package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oukeidos/rvgui/internal/cleanup"
	"github.com/oukeidos/rvgui/internal/configstore"
	"github.com/oukeidos/rvgui/internal/files"
	"github.com/oukeidos/rvgui/internal/logger"
	"github.com/oukeidos/rvgui/internal/shell"
)

var (
	openStore = configstore.Open
	now       = time.Now
)

// appState is created per command tree and opened lazily by the commands that
// touch persisted settings.
type appState struct {
	opts  *globalOptions
	store *configstore.Store
	shell *shell.Shell
	logs  string
}

func (a *appState) open() error {
	if a.shell != nil {
		return nil
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	a.store = store
	a.shell = shell.Open(store)

	if a.shell.Record().SaveLogsEnabled {
		path, err := a.startLogFile()
		if err != nil {
			logger.Warn("Log file not created", "error", err)
		} else {
			a.logs = path
		}
	}
	// Registered after the log file so the shutdown checkpoint is still logged to it.
	cleanup.Register(a.shell.Close)
	return nil
}

// startLogFile mirrors log records into a new JSONL file under the settings
// directory until shutdown.
func (a *appState) startLogFile() (string, error) {
	dir := filepath.Join(a.store.Dir(), "logs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	name := fmt.Sprintf("rvgui-%s.log", now().Format("20060102-150405"))
	path, _, err := files.SafePath(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	f, err := files.OpenExclusive(path, 0o600)
	if err != nil {
		return "", err
	}

	level := a.opts.level()
	logger.Init(level, f)
	cleanup.Register(func() error {
		logger.Init(level, nil)
		return f.Close()
	})
	logger.Debug("Logging to file", "path", path)
	return path, nil
}
