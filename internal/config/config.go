// Package config loads sprout's settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/sprout/internal/age"
	"github.com/abhisek/sprout/internal/difficulty"
)

// Config is the full application configuration.
type Config struct {
	Engine     EngineConfig      `yaml:"engine"`
	Difficulty difficulty.Config `yaml:"difficulty"`
	Profile    ProfileConfig     `yaml:"profile"`
	Storage    StorageConfig     `yaml:"storage"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// EngineConfig tunes history eviction and randomness.
type EngineConfig struct {
	// EvictionThreshold is the saturation at which eviction runs.
	EvictionThreshold float64 `yaml:"eviction_threshold"`

	// EvictionFraction is the share of seen entries evicted.
	EvictionFraction float64 `yaml:"eviction_fraction"`

	// Seed fixes the random source. Zero means random.
	Seed uint64 `yaml:"seed"`
}

// ProfileConfig is the initial child profile; a saved profile wins.
type ProfileConfig struct {
	Age      int    `yaml:"age"`
	Language string `yaml:"language"`
}

// StorageConfig locates the database.
type StorageConfig struct {
	// Path of the SQLite file. Empty means store.DefaultDBPath.
	Path string `yaml:"path"`
}

// LoggingConfig mirrors logging.Options.
type LoggingConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			EvictionThreshold: 0.8,
			EvictionFraction:  0.5,
		},
		Difficulty: difficulty.DefaultConfig(),
		Profile:    ProfileConfig{Language: "en"},
		Logging:    LoggingConfig{Mode: "development", Level: "info"},
	}
}

// DefaultPath resolves the config file path:
// 1. SPROUT_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/sprout/config.yaml
// 3. ~/.config/sprout/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("SPROUT_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sprout", "config.yaml"), nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SPROUT_DB"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("SPROUT_LANG"); v != "" {
		cfg.Profile.Language = v
	}
	if v := os.Getenv("SPROUT_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Profile.Age = n
		}
	}
	if v := os.Getenv("SPROUT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SPROUT_LOG_MODE"); v != "" {
		cfg.Logging.Mode = v
	}
}

// Validate checks ranges. Age 0 means unset.
func (c Config) Validate() error {
	if c.Engine.EvictionThreshold <= 0 || c.Engine.EvictionThreshold > 1 {
		return fmt.Errorf("eviction_threshold %v must be in (0, 1]", c.Engine.EvictionThreshold)
	}
	if c.Engine.EvictionFraction <= 0 || c.Engine.EvictionFraction > 1 {
		return fmt.Errorf("eviction_fraction %v must be in (0, 1]", c.Engine.EvictionFraction)
	}
	if c.Profile.Age != 0 && !age.Valid(c.Profile.Age) {
		return fmt.Errorf("age %d must be between %d and %d", c.Profile.Age, age.MinAge, age.MaxAge)
	}
	if c.Difficulty.StartingLevel != 0 && !difficulty.Valid(c.Difficulty.StartingLevel) {
		return fmt.Errorf("starting_level %d must be between %d and %d",
			c.Difficulty.StartingLevel, difficulty.MinLevel, difficulty.MaxLevel)
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
