package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/egolog/journal"
	"github.com/rustyeddy/egolog/kv"
)

// Config is the egolog configuration file.
type Config struct {
	Storage  StorageConfig  `json:"storage" yaml:"storage"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Defaults SettingsConfig `json:"defaults" yaml:"defaults"`
	Export   ExportConfig   `json:"export" yaml:"export"`
	Currency string         `json:"currency" yaml:"currency"`
}

// StorageConfig selects the kv backend.
type StorageConfig struct {
	Backend string `json:"backend" yaml:"backend"` // "sqlite", "file" or "memory"
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// SettingsConfig seeds the settings record on first run.
type SettingsConfig struct {
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
	TargetCapital   float64 `json:"target_capital" yaml:"target_capital"`
	WeeklyInjection float64 `json:"weekly_injection" yaml:"weekly_injection"`
	CurrentCapital  float64 `json:"current_capital" yaml:"current_capital"`
}

// ExportConfig controls where exports are written.
type ExportConfig struct {
	Dir      string `json:"dir" yaml:"dir"`
	Compress bool   `json:"compress" yaml:"compress"`
}

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Settings converts the defaults section into a journal record.
func (s SettingsConfig) Settings() journal.Settings {
	return journal.Settings{
		StartingCapital: s.StartingCapital,
		TargetCapital:   s.TargetCapital,
		WeeklyInjection: s.WeeklyInjection,
		CurrentCapital:  s.CurrentCapital,
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields missing
// from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load reads path if it is set, otherwise starts from Default, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration as YAML or JSON depending on the extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from EGOLOG_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("EGOLOG_STORAGE_BACKEND")); v != "" {
		c.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("EGOLOG_STORAGE_PATH")); v != "" {
		c.Storage.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("EGOLOG_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("EGOLOG_CURRENCY")); v != "" {
		c.Currency = strings.ToUpper(v)
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case kv.KindSQLite, kv.KindFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path required for %s backend", c.Storage.Backend)
		}
	case kv.KindMemory:
	default:
		return fmt.Errorf("%w: storage.backend must be 'sqlite', 'file' or 'memory', got %q", kv.ErrUnknownBackend, c.Storage.Backend)
	}
	if !levels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if len(c.Currency) != 3 {
		return errors.New("currency must be a 3-letter ISO code")
	}
	return nil
}

// Default returns a configuration with sensible defaults. Data lives under
// the user's config directory.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: kv.KindSQLite,
			Path:    filepath.Join(DataDir(), "egolog.db"),
		},
		Log: LogConfig{
			Level: "warn",
		},
		Defaults: SettingsConfig{
			StartingCapital: 10000,
			TargetCapital:   100000,
			WeeklyInjection: 500,
			CurrentCapital:  10000,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Currency: "USD",
	}
}

// DataDir is where egolog keeps its files by default.
func DataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "egolog")
	}
	return ".egolog"
}
