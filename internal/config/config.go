// Package config loads and saves the moneyquest configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all moneyquest configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Quiz       QuizConfig       `toml:"quiz"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir,omitempty"`
	CatalogPath string `toml:"catalog_path,omitempty"`
}

// QuizConfig holds daily quiz settings.
type QuizConfig struct {
	BankPath    string `toml:"bank_path,omitempty"`
	DisplayName string `toml:"display_name,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "moneyquest")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "moneyquest")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding saves, the ledger database and
// the question bank. Resolution order: MONEYQUEST_DATA env var, the
// configured data_dir, then the XDG data directory.
func DataDir(cfg Config) string {
	if dir := os.Getenv("MONEYQUEST_DATA"); dir != "" {
		return dir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "moneyquest")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "moneyquest")
}

// BankPath returns the question bank path, defaulting to
// question_bank.json inside the data directory.
func BankPath(cfg Config) string {
	if cfg.Quiz.BankPath != "" {
		return cfg.Quiz.BankPath
	}
	return filepath.Join(DataDir(cfg), "question_bank.json")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
