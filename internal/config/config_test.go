package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 3, cfg.UrgentWindowDays)
	assert.False(t, cfg.LogJSON)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
addr = "127.0.0.1:9090"
db_path = "tasks.db"
cors_origins = ["https://example.com"]
urgent_window_days = 7
log_json = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quadrant.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "tasks.db", cfg.DBPath)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 7, cfg.UrgentWindowDays)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "quadrant.toml"), []byte(`addr = ":9090"`), 0644))
	t.Setenv("QUADRANT_ADDR", ":7070")
	t.Setenv("QUADRANT_CORS_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("QUADRANT_URGENT_WINDOW_DAYS", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 1, cfg.UrgentWindowDays)
}

func TestLoad_RejectsNegativeWindow(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUADRANT_URGENT_WINDOW_DAYS", "-2")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "quadrant.toml"), []byte(`addr = [`), 0644))

	_, err := Load()
	require.Error(t, err)
}
