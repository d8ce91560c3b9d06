// Package config handles loading and saving user configuration for tango.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file tango looks for inside its config
// directory.
const FileName = "config.yaml"

// Config holds all user configuration for tango.
type Config struct {
	DBPath      string    `yaml:"db_path"`
	ReviewLimit int       `yaml:"review_limit"` // max entries per review session, 0 means unlimited
	OCR         OCRConfig `yaml:"ocr"`
}

// OCRConfig holds settings for the text recognition step of a scan.
type OCRConfig struct {
	Command    string   `yaml:"command"`     // recognizer binary, e.g. "tesseract"
	Languages  []string `yaml:"languages"`   // traineddata names for the mixed pass
	Workers    int      `yaml:"workers"`     // concurrent recognizer processes
	SinglePass bool     `yaml:"single_pass"` // skip the latin-only pass
}

// Default returns the configuration used when no config file exists yet.
func Default() *Config {
	dir, _ := Dir()
	return &Config{
		DBPath:      filepath.Join(dir, "tango.db"),
		ReviewLimit: 20,
		OCR: OCRConfig{
			Command:   "tesseract",
			Languages: []string{"jpn", "eng"},
			Workers:   2,
		},
	}
}

// Dir returns the tango configuration directory, typically
// ~/.config/tango.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(base, "tango"), nil
}

// Load reads configuration from a YAML file. Missing fields fall back to
// their defaults, so a partial config file is valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.OCR.Workers < 1 {
		cfg.OCR.Workers = 1
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
