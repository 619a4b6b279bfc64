package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("AICHAT_CONFIG", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8000", cfg.Addr)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DB_NAME", "chat")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AICHAT_CONFIG", "")

	cfg := LoadConfig()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "chat", cfg.DBName)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DB_NAME", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\njwt_secret: overlay\n"), 0o600))
	t.Setenv("AICHAT_CONFIG", path)

	cfg := LoadConfig()
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "overlay", cfg.JWTSecret)
	// Fields absent from the file keep their environment values.
	assert.Equal(t, "from-env", cfg.DBName)
}
