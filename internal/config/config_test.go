package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("DB_PORT", "")

	require.NoError(t, LoadEnvConfig(filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "8080", DefaultEnvConfig.APP_PORT)
	assert.Equal(t, "sample", DefaultEnvConfig.DATA_SOURCE)
	assert.Equal(t, 5432, DefaultEnvConfig.DB_PORT)
	assert.Equal(t, "cantu", DefaultEnvConfig.DB_SCHEMA)
	assert.Equal(t, 20*time.Minute, DefaultEnvConfig.DB_CONN_MAX_LIFETIME)
	assert.False(t, DefaultEnvConfig.LOG_PRETTY)
}

func TestLoadEnvConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SELLER_RULE=total\nDB_PORT=6543\nDB_CONN_MAX_LIFETIME=90\nLOG_PRETTY=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	// godotenv never overrides variables already set, so clear them first
	for _, k := range []string{"SELLER_RULE", "DB_PORT", "DB_CONN_MAX_LIFETIME", "LOG_PRETTY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	require.NoError(t, LoadEnvConfig(path))
	assert.Equal(t, "total", DefaultEnvConfig.SELLER_RULE)
	assert.Equal(t, 6543, DefaultEnvConfig.DB_PORT)
	assert.Equal(t, 90*time.Second, DefaultEnvConfig.DB_CONN_MAX_LIFETIME)
	assert.True(t, DefaultEnvConfig.LOG_PRETTY)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "2m")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, getEnvInt("X_INT", 7))
	assert.Equal(t, 2*time.Minute, getEnvDuration("X_DUR", time.Second))
	assert.True(t, getEnvBool("X_BOOL", true))
}
