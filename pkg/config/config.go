package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	DB        DBConfig        `yaml:"db"`
	LLM       LLMConfig       `yaml:"llm"`
	TTS       TTSConfig       `yaml:"tts"`
	Speech    SpeechConfig    `yaml:"speech"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LogSettings holds settings for a single log output.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
}

// DBConfig holds database settings.
type DBConfig struct {
	Path string `yaml:"path"`
}

// LLMConfig holds settings for the generative-text provider used for
// language detection, transliteration and styled markup.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "gemini", "mock"
	Model    string `yaml:"model"`    // e.g. "gemini-2.5-flash-lite"
	Key      string `yaml:"key"`      // API Key
}

// TTSConfig holds settings for the speech synthesis vendor.
type TTSConfig struct {
	Key     string   `yaml:"key"`     // API Key
	Timeout Duration `yaml:"timeout"` // per-call timeout
}

// SpeechConfig holds limits and thresholds for the synthesis pipeline.
type SpeechConfig struct {
	MaxInputLength  int      `yaml:"max_input_length"`
	MaxPromptLength int      `yaml:"max_prompt_length"`
	MinDetectLength int      `yaml:"min_detect_length"`
	DetectSampleLen int      `yaml:"detect_sample_length"`
	RemoteTimeout   Duration `yaml:"remote_timeout"`
}

// RateLimitConfig holds per-client quota settings.
type RateLimitConfig struct {
	DailyQuota int      `yaml:"daily_quota"`
	Window     Duration `yaml:"window"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:1923",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
		},
		DB: DBConfig{
			Path: "./data/vibevox.db",
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-2.5-flash-lite",
			Key:      "",
		},
		TTS: TTSConfig{
			Key:     "",
			Timeout: Duration(15 * time.Second),
		},
		Speech: SpeechConfig{
			MaxInputLength:  1000,
			MaxPromptLength: 1000,
			MinDetectLength: 3,
			DetectSampleLen: 50,
			RemoteTimeout:   Duration(15 * time.Second),
		},
		RateLimit: RateLimitConfig{
			DailyQuota: 5,
			Window:     Duration(Day),
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		// If file does not exist, save defaults
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config file: %w", err)
		}
	}

	// Load keys from env if empty (as a fallback, but do NOT save back to disk)
	if cfg.LLM.Key == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLM.Key = key
		}
	}
	if cfg.TTS.Key == "" {
		if key := os.Getenv("GOOGLE_TTS_API_KEY"); key != "" {
			cfg.TTS.Key = key
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Speech.MaxInputLength <= 0 {
		return fmt.Errorf("max_input_length must be positive, got %d", c.Speech.MaxInputLength)
	}
	if c.RateLimit.DailyQuota <= 0 {
		return fmt.Errorf("daily_quota must be positive, got %d", c.RateLimit.DailyQuota)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	return nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Vibevox Configuration
# ---------------------
# Supported Duration units: ns, us (or µs), ms, s, m, h, d (day), w (week)
# API keys may also be provided via GEMINI_API_KEY and GOOGLE_TTS_API_KEY.

`)
	data = append(header, data...)

	// Inject comments for Enum fields
	reProvider := regexp.MustCompile(`(?m)^(\s+)provider:`)
	data = reProvider.ReplaceAll(data, []byte("${1}# Options: gemini, mock\n${1}provider:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // File exists, do nothing
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}
