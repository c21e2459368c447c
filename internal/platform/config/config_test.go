package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"CONTIUM_ADDR", "ENVIRONMENT", "SESSION_TTL", "AUDIT_BUFFER", "SEED_DEMO_DATA"} {
		t.Setenv(key, "")
	}
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 0, cfg.AuditBuffer)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.LockTerminalStatus)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CONTIUM_ADDR", ":9090")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("SESSION_SIGNING_KEY", "prod-key")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOCK_TERMINAL_STATUS", "true")
	t.Setenv("VERIFICATION_PACING", "1")
	t.Setenv("AUDIT_BUFFER", "64")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,https://demo.contium.io")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.LockTerminalStatus)
	assert.True(t, cfg.VerificationPacing)
	assert.Equal(t, 64, cfg.AuditBuffer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "https://demo.contium.io"}, cfg.AllowedOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"SESSION_TTL":          "forever",
		"LOCK_TERMINAL_STATUS": "maybe",
		"AUDIT_BUFFER":         "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}

	t.Run("default signing key outside dev", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("SESSION_SIGNING_KEY", "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "SESSION_SIGNING_KEY")
	})
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Setenv("CONTIUM_ADDR", "")
	require.NoError(t, os.Unsetenv("CONTIUM_ADDR"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONTIUM_ADDR=:7070\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CONTIUM_ADDR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}
