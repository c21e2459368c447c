package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contium/internal/platform/config"
	"contium/internal/session"
)

func TestMint(t *testing.T) {
	cfg := config.Server{Environment: "dev", SessionSigningKey: config.DefaultSigningKey, SessionTTL: time.Hour}

	t.Run("token resolves to the role participant", func(t *testing.T) {
		out, err := mint(context.Background(), cfg, "exporter")
		require.NoError(t, err)
		assert.Equal(t, "dev", out.Usage["signing_key"])
		assert.Equal(t, "user-001", out.Claims["sub"])

		claims, err := session.NewTokens(cfg.SessionSigningKey, cfg.SessionTTL).Parse(context.Background(), out.Token)
		require.NoError(t, err)
		assert.Equal(t, "exporter", claims.Role)
		assert.Equal(t, "user-001", claims.Subject)
	})

	t.Run("custom key is reported", func(t *testing.T) {
		custom := cfg
		custom.SessionSigningKey = "another-key"
		out, err := mint(context.Background(), custom, "authority")
		require.NoError(t, err)
		assert.Equal(t, "custom", out.Usage["signing_key"])
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := mint(context.Background(), cfg, "smuggler")
		assert.Error(t, err)
	})
}
