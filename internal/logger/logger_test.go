package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogDir(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(filepath.Dir(LogPath(configDir))); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}
	if !strings.HasSuffix(LogPath(configDir), filepath.Join("logs", "enough.log")) {
		t.Errorf("unexpected log path %s", LogPath(configDir))
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("debug line")
	Info("info line")
	Warn("warn line", "key", "settings")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("non-debug logger wrote below warn: %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "settings") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil

	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}
