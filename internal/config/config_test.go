package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORTAL_SESSION_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "postgres://postgres:@localhost:5432/quoteforge?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_PoolOverrides(t *testing.T) {
	t.Setenv("PORTAL_SESSION_SECRET", "test-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.DB.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.DB.ConnMaxLifetime)
}
