package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FLOORSMITH_ADDR", "FLOORSMITH_STORE", "FLOORSMITH_SQLITE_PATH", "FLOORSMITH_MONGO_URI",
		"FLOORSMITH_MONGO_DB", "FLOORSMITH_REDIS_ADDR", "FLOORSMITH_CACHE_SIZE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	data := "FLOORSMITH_ADDR=:9090\nFLOORSMITH_STORE=SQLite\nFLOORSMITH_CACHE_SIZE=64\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	// The environment wins over the file.
	t.Setenv("FLOORSMITH_ADDR", ":7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, 64, cfg.CacheSize)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"FLOORSMITH_STORE", "postgres"},
		{"FLOORSMITH_CACHE_SIZE", "-3"},
		{"FLOORSMITH_CACHE_SIZE", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
		})
	}
}
