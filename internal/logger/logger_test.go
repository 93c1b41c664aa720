package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	h := NewPrettyHandler(&buf, opts, false)
	l := slog.New(h)

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("store", "config.toml").Info("settings loaded", "state", "loaded")

		output := buf.String()
		if !strings.Contains(output, "store=config.toml") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "state=loaded") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("session").With("apk", "app.apk").Info("preflight", "ok", true)

		output := buf.String()
		if !strings.Contains(output, "session.apk=app.apk") {
			t.Errorf("output missing grouped persistent attr: %q", output)
		}
		if !strings.Contains(output, "session.ok=true") {
			t.Errorf("output missing grouped record attr: %q", output)
		}
	})

	t.Run("NestedGroups", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("outer").WithGroup("inner").With("key", "val").Info("msg")

		output := buf.String()
		if !strings.Contains(output, "outer.inner.key=val") {
			t.Errorf("output missing nested grouped attr: %q", output)
		}
	})

	t.Run("LevelFilter", func(t *testing.T) {
		buf.Reset()
		quiet := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
		quiet.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("info record should be filtered at warn level: %q", buf.String())
		}
	})
}

func TestShortenHomeAttr(t *testing.T) {
	home := filepath.Join(t.TempDir(), "alice")
	prev := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	defer func() { userHomeDir = prev }()

	t.Run("PathKey", func(t *testing.T) {
		got := ShortenHomeAttr(nil, slog.String("cli_jar", filepath.Join(home, "tools", "cli.jar")))
		want := "~" + string(filepath.Separator) + filepath.Join("tools", "cli.jar")
		if got.Value.String() != want {
			t.Fatalf("got %q, want %q", got.Value.String(), want)
		}
	})

	t.Run("HomeItself", func(t *testing.T) {
		got := ShortenHomeAttr(nil, slog.String("dir", home))
		if got.Value.String() != "~" {
			t.Fatalf("got %q, want ~", got.Value.String())
		}
	})

	t.Run("SiblingPrefixUntouched", func(t *testing.T) {
		sibling := home + "-other"
		got := ShortenHomeAttr(nil, slog.String("path", sibling))
		if got.Value.String() != sibling {
			t.Fatalf("unexpected rewrite: %q", got.Value.String())
		}
	})

	t.Run("NonPathKey", func(t *testing.T) {
		value := filepath.Join(home, "x")
		got := ShortenHomeAttr(nil, slog.String("message", value))
		if got.Value.String() != value {
			t.Fatalf("unexpected rewrite: %q", got.Value.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPrettyHandler_NoColorWhenNotTTY(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return false }
	defer func() { isTerminal = prevIsTerminal }()

	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() {
		os.Stderr = prevStderr
		Init(LevelInfo, nil)
	}()

	Init(LevelInfo, nil)
	Info("test message", "key", "value")

	_ = w.Close()
	out, _ := io.ReadAll(r)
	if strings.Contains(string(out), "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", string(out))
	}
}

func TestInitWithLogFileWritesJSONLines(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return true }
	defer func() { isTerminal = prevIsTerminal }()

	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() {
		os.Stderr = prevStderr
		Init(LevelInfo, nil)
	}()

	var logBuf bytes.Buffer
	Init(LevelInfo, &logBuf)
	Info("settings saved", "path", "/tmp/config.toml")

	_ = w.Close()
	out, _ := io.ReadAll(r)
	if strings.Contains(string(out), "\033[") {
		t.Fatalf("unexpected ANSI codes in console output: %q", string(out))
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &entry); err != nil {
		t.Fatalf("log file line is not JSON: %v (%q)", err, logBuf.String())
	}
	if entry["msg"] != "settings saved" || entry["path"] != "/tmp/config.toml" {
		t.Fatalf("unexpected log entry: %#v", entry)
	}
}
