package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentFiscalYear(t *testing.T) {
	tests := []struct {
		date       string
		startMonth int
		want       int
	}{
		{"2025-04-01", 4, 2025},
		{"2025-03-31", 4, 2024},
		{"2025-12-15", 4, 2025},
		{"2025-01-15", 1, 2025},
	}
	for _, tt := range tests {
		now, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, CurrentFiscalYear(now, tt.startMonth), "date %s start %d", tt.date, tt.startMonth)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storagePath: /tmp/custom.db\nfiscalYear: 2024\nfiscalStartMonth: 1\n"), 0644))

	t.Setenv("STAFFPLAN_CONFIG", path)
	t.Setenv("STAFFPLAN_DB", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.StoragePath)
	assert.Equal(t, 2024, cfg.FiscalYear)
	assert.Equal(t, 1, cfg.FiscalStartMonth)

	t.Setenv("STAFFPLAN_DB", "/tmp/override.db")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.StoragePath)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("STAFFPLAN_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("STAFFPLAN_DB", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.FiscalStartMonth)
	assert.NotZero(t, cfg.FiscalYear)
	assert.Contains(t, cfg.StoragePath, "staffplan.db")
}

func TestLoad_RejectsBadStartMonth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fiscalStartMonth: 13\n"), 0644))
	t.Setenv("STAFFPLAN_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
