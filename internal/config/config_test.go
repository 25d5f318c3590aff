package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every LECTIO_* variable at a known state and runs from an
// empty working directory so no stray .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{
		"LECTIO_ADDR", "LECTIO_LOG_DIR", "LECTIO_FRONTEND_DIST", "LECTIO_CORS_ORIGINS",
		"LECTIO_WEEKDAY_CAPACITY", "LECTIO_WEEKEND_CAPACITY", "LECTIO_PLAN_FILE", "LECTIO_VERBOSE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("LECTIO_DB", filepath.Join(dir, "lectio.db"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, 3, cfg.WeekdayCapacity)
	assert.Equal(t, 4, cfg.WeekendCapacity)
	assert.Equal(t, "NIV", cfg.Version)
	assert.Equal(t, filepath.Join(dir, "logs"), cfg.LogDir)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LECTIO_ADDR", "127.0.0.1:9000")
	t.Setenv("LECTIO_CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("LECTIO_WEEKDAY_CAPACITY", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.WeekdayCapacity)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.WeekendCapacity)
}

func TestLoad_DotEnvInWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("LECTIO_ADDR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LECTIO_ADDR=:7777\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Addr)
}

func TestLoad_InvalidCapacity(t *testing.T) {
	isolate(t)
	t.Setenv("LECTIO_WEEKEND_CAPACITY", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LECTIO_WEEKEND_CAPACITY")
}

func TestLoad_PlanFileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weekday_capacity: 4\nweekend_capacity: 6\nversion: ESV\n"), 0o644))
	t.Setenv("LECTIO_PLAN_FILE", path)
	t.Setenv("LECTIO_WEEKEND_CAPACITY", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WeekdayCapacity)
	assert.Equal(t, 5, cfg.WeekendCapacity, "env wins over the plan file")
	assert.Equal(t, "ESV", cfg.Version)
	assert.Equal(t, path, cfg.PlanFile)
}

func TestLoadPlanFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weekday_capacity: [1, 2\n"), 0o644))

	_, err := LoadPlanFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate(2025, 1189))

	cfg.WeekdayCapacity = 0
	assert.Error(t, cfg.Validate(2025, 1189))

	cfg = DefaultConfig()
	cfg.WeekdayCapacity, cfg.WeekendCapacity = 2, 2
	err := cfg.Validate(2025, 1189)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "730")
}

func TestCapacity_WeekdayWeekend(t *testing.T) {
	cfg := DefaultConfig()
	capacity := cfg.Capacity()
	assert.Equal(t, 3, capacity(mustDate(t, "2025-01-06")))
	assert.Equal(t, 4, capacity(mustDate(t, "2025-01-05")))
}

func TestLoad_Verbose(t *testing.T) {
	isolate(t)
	t.Setenv("LECTIO_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)

	t.Setenv("LECTIO_VERBOSE", "loud")
	_, err = Load()
	assert.ErrorContains(t, err, "LECTIO_VERBOSE")
}
