package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the application defaults the CLI starts from. Flags override
// every field.
type Config struct {
	// MapFile is the default road-map file path, used when the CLI is not
	// given one as its third positional argument.
	MapFile string `yaml:"map_file"`

	// LogLevel selects the diagnostic verbosity.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Strategy selects the search work-list discipline.
	Strategy string `yaml:"strategy" validate:"omitempty,oneof=heap queue"`

	// Workers is the batch-query pool size; 0 means one worker per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Strategy: "heap",
		Workers:  0,
	}
}

// Load reads and validates the configuration at path. Fields left empty in
// the file fall back to Default values. A missing or unreadable file is an
// error: the caller asked for this path explicitly.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err = validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: validate %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if cfg.Strategy == "" {
		cfg.Strategy = Default().Strategy
	}

	return cfg, nil
}
