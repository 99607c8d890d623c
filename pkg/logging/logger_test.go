package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vibevox/pkg/config"
)

func TestInitCreatesAndRotates(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "logs", "server.log")

	cfg := &config.LogConfig{
		Server: config.LogSettings{Path: logPath, Level: "DEBUG"},
	}

	cleanup, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	slog.Info("hello from test", "key", "value")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Error("log file missing expected entry")
	}

	// Second Init rotates the first file to .old
	cleanup2, err := Init(cfg)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	cleanup2()

	if _, err := os.Stat(logPath + ".old"); err != nil {
		t.Errorf("expected rotated log file: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
