package configstore

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Record is the persisted set of user preferences. An empty path means the
// user has not selected that file yet.
type Record struct {
	CLIJarPath        string
	PatchesPath       string
	SaveLogsEnabled   bool
	SaveConfigEnabled bool
}

// Default returns the record used on first run or when the store is unusable.
func Default() Record {
	return Record{}
}

// IsDefault reports whether r carries no user choices.
func (r Record) IsDefault() bool {
	return r == Default()
}

const (
	keyCLIJarPath  = "cli_jar_path"
	keyPatchesPath = "patches_path"
	keySaveLogs    = "save_logs"
	keySaveConfig  = "save_config"

	// Raw-byte companions for paths that are not valid UTF-8, which TOML
	// cannot hold. When present they win over the plain key.
	keyCLIJarPathRaw  = "cli_jar_path_b64"
	keyPatchesPathRaw = "patches_path_b64"

	formatVersion = 1
)

type persistedRecord struct {
	Version        int    `toml:"version"`
	CLIJarPath     string `toml:"cli_jar_path"`
	CLIJarPathRaw  string `toml:"cli_jar_path_b64,omitempty"`
	PatchesPath    string `toml:"patches_path"`
	PatchesPathRaw string `toml:"patches_path_b64,omitempty"`
	SaveLogs       bool   `toml:"save_logs"`
	SaveConfig     bool   `toml:"save_config"`
}

func toPersisted(r Record) persistedRecord {
	p := persistedRecord{
		Version:    formatVersion,
		SaveLogs:   r.SaveLogsEnabled,
		SaveConfig: r.SaveConfigEnabled,
	}
	p.CLIJarPath, p.CLIJarPathRaw = encodePath(r.CLIJarPath)
	p.PatchesPath, p.PatchesPathRaw = encodePath(r.PatchesPath)
	return p
}

// encodePath returns the TOML-safe form of path. A path with invalid UTF-8 is
// kept byte for byte in base64; the plain value is a readable approximation.
func encodePath(path string) (plain, raw string) {
	if utf8.ValidString(path) {
		return path, ""
	}
	return strings.ToValidUTF8(path, "\uFFFD"), base64.StdEncoding.EncodeToString([]byte(path))
}
