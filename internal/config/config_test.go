package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "ratchet", cfg.Engine.LevelPolicy)
	assert.Equal(t, "additive", cfg.Engine.MergePolicy)
	assert.Equal(t, "positional", cfg.Engine.AnswerMode)
	assert.Equal(t, 5, cfg.Engine.ActivityLogLimit)
	assert.Equal(t, 10, cfg.Engine.RecommendLimit)
	assert.Equal(t, 5*time.Minute, cfg.Engine.CatalogCacheTTL)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
database:
  driver: sqlite
  path: /tmp/x.db
engine:
  level_policy: overwrite
  merge_policy: snapshot
  activity_log_limit: 3
  catalog_cache_ttl: 30s
cors:
  allowed_origins: ["http://localhost:5173"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "overwrite", cfg.Engine.LevelPolicy)
	assert.Equal(t, "snapshot", cfg.Engine.MergePolicy)
	assert.Equal(t, 3, cfg.Engine.ActivityLogLimit)
	assert.Equal(t, 30*time.Second, cfg.Engine.CatalogCacheTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  driver: oracle\n"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate_MinioNeedsObject(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Mode: "debug"},
		Database: DatabaseConfig{Driver: "sqlite"},
		Storage:  StorageConfig{Type: "minio", MinioBucket: "banks"},
	}
	assert.ErrorContains(t, cfg.Validate(), "minio")

	cfg.Storage.MinioObject = "banks.yaml"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ServerMode(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{Driver: "sqlite"},
		Storage:  StorageConfig{Type: "local"},
	}
	assert.ErrorContains(t, cfg.Validate(), "server mode")

	cfg.Server.Mode = "release"
	assert.NoError(t, cfg.Validate())
}
