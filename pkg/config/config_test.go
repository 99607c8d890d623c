package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "vibevox.yaml")

	tests := []struct {
		name          string
		setup         func()
		validate      func(*testing.T, *Config)
		checkFile     func(*testing.T)
		expectedError bool
	}{
		{
			name:  "NewFile_Defaults",
			setup: func() {}, // No file
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Speech.MaxInputLength != 1000 {
					t.Errorf("expected default max_input_length 1000, got %d", cfg.Speech.MaxInputLength)
				}
				if cfg.RateLimit.DailyQuota != 5 {
					t.Errorf("expected default daily_quota 5, got %d", cfg.RateLimit.DailyQuota)
				}
				if time.Duration(cfg.RateLimit.Window) != 24*time.Hour {
					t.Errorf("expected default window 24h, got %v", time.Duration(cfg.RateLimit.Window))
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "daily_quota: 5") {
					t.Error("config file missing default values")
				}
				if !strings.Contains(string(content), "# Options: gemini, mock") {
					t.Error("config file missing provider comment")
				}
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func() {
				err := os.WriteFile(configPath, []byte("llm:\n  model: gemini-2.5-flash\nspeech:\n  max_input_length: 2000\nrate_limit:\n  window: 1d\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LLM.Model != "gemini-2.5-flash" {
					t.Errorf("expected model 'gemini-2.5-flash', got '%s'", cfg.LLM.Model)
				}
				if cfg.Speech.MaxInputLength != 2000 {
					t.Errorf("expected max_input_length 2000, got %d", cfg.Speech.MaxInputLength)
				}
				// Unset fields keep their defaults
				if cfg.Server.Address != "localhost:1923" {
					t.Errorf("expected default address, got '%s'", cfg.Server.Address)
				}
			},
		},
		{
			name: "InvalidQuota",
			setup: func() {
				err := os.WriteFile(configPath, []byte("rate_limit:\n  daily_quota: -1\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to setup test file: %v", err)
				}
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Remove(configPath)
			tt.setup()

			cfg, err := Load(configPath)
			if (err != nil) != tt.expectedError {
				t.Fatalf("Load() error = %v, expectedError %v", err, tt.expectedError)
			}
			if err != nil {
				return
			}

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
			if tt.checkFile != nil {
				tt.checkFile(t)
			}
		})
	}
}

func TestLoadEnvFallback(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "vibevox.yaml")

	t.Setenv("GEMINI_API_KEY", "env-gemini-key")
	t.Setenv("GOOGLE_TTS_API_KEY", "env-tts-key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Key != "env-gemini-key" {
		t.Errorf("expected LLM key from env, got '%s'", cfg.LLM.Key)
	}
	if cfg.TTS.Key != "env-tts-key" {
		t.Errorf("expected TTS key from env, got '%s'", cfg.TTS.Key)
	}
}

func TestGenerateDefault(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "vibevox.yaml")

	if err := GenerateDefault(configPath); err != nil {
		t.Fatalf("GenerateDefault() error = %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	// Second call is a no-op
	if err := GenerateDefault(configPath); err != nil {
		t.Fatalf("GenerateDefault() second call error = %v", err)
	}
}
