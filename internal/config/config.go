// Package config resolves the tool configuration from an optional YAML file
// and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"staffplan/internal/fiscal"
)

// Config is the resolved tool configuration.
type Config struct {
	// StoragePath is the SQLite file backing the key-value store.
	StoragePath string `yaml:"storagePath"`
	// FiscalYear selects which fiscal year to operate on; 0 means the
	// fiscal year containing today.
	FiscalYear int `yaml:"fiscalYear"`
	// FiscalStartMonth is the calendar month fiscal years begin in.
	FiscalStartMonth int `yaml:"fiscalStartMonth"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		StoragePath:      filepath.Join(home, ".staffplan", "staffplan.db"),
		FiscalStartMonth: fiscal.DefaultStartMonth,
	}
}

// Load reads the config file (STAFFPLAN_CONFIG or ~/.staffplan/config.yaml;
// a missing file is fine), applies env overrides and validates the result.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("STAFFPLAN_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".staffplan", "config.yaml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if db := os.Getenv("STAFFPLAN_DB"); db != "" {
		cfg.StoragePath = db
	}

	if cfg.FiscalStartMonth < 1 || cfg.FiscalStartMonth > 12 {
		return Config{}, fmt.Errorf("fiscalStartMonth %d out of range [1, 12]", cfg.FiscalStartMonth)
	}
	if cfg.FiscalYear == 0 {
		cfg.FiscalYear = CurrentFiscalYear(time.Now(), cfg.FiscalStartMonth)
	}
	return cfg, nil
}

// CurrentFiscalYear returns the fiscal year containing now: the calendar
// year of the fiscal year's first month.
func CurrentFiscalYear(now time.Time, startMonth int) int {
	if int(now.Month()) < startMonth {
		return now.Year() - 1
	}
	return now.Year()
}
