package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 100.0, cfg.Scrollspy.Lookahead)
	assert.Equal(t, "visitors.db", cfg.Visitors.DBPath)
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  port: \"9090\"\nscrollspy:\n  lookahead: 64\nvisitors:\n  db_path: \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 64.0, cfg.Scrollspy.Lookahead)
	assert.Empty(t, cfg.Visitors.DBPath)

	t.Setenv("SCROLLSPY_LOOKAHEAD", "120")
	t.Setenv("ADMIN_USERNAME", "andre")
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Scrollspy.Lookahead)
	assert.Equal(t, "andre", cfg.Admin.Username)
}

func TestLoadConfig_RejectsNegativeLookahead(t *testing.T) {
	t.Setenv("SCROLLSPY_LOOKAHEAD", "-5")
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_EmptyEnvDisablesVisitors(t *testing.T) {
	t.Setenv("VISITORS_DB_PATH", "")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Visitors.DBPath)

	t.Setenv("VISITORS_DB_PATH", "/tmp/visits.db")
	cfg, err = LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/visits.db", cfg.Visitors.DBPath)
}

func TestLoadConfig_Sources(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Sources)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("app:\n  env: production\n"), 0o644))
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "config.yaml")}, cfg.Sources)
	assert.Equal(t, "production", cfg.App.Env)
}
