package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 3*time.Second, cfg.TickPeriod)
	assert.Equal(t, 256, cfg.MaxBoards)
	assert.Equal(t, "/dashboard", cfg.DashboardPath)
	assert.Zero(t, cfg.RandSeed)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("TICK_PERIOD", "500ms")
	t.Setenv("MAX_BOARDS", "8")
	t.Setenv("DASHBOARD_PATH", "/live")
	t.Setenv("RAND_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 8, cfg.MaxBoards)
	assert.Equal(t, "/live", cfg.DashboardPath)
	assert.Equal(t, uint64(42), cfg.RandSeed)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
	assert.Contains(t, err.Error(), "ShutdownTimeout")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_ZeroTickPeriod(t *testing.T) {
	t.Setenv("TICK_PERIOD", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TICK_PERIOD")
}

func TestLoad_InvalidMaxBoards(t *testing.T) {
	t.Setenv("MAX_BOARDS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_BOARDS")
}

func TestLoad_MaxBoardsTooLarge(t *testing.T) {
	t.Setenv("MAX_BOARDS", "99999")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_BOARDS")
}

func TestLoad_RelativeDashboardPath(t *testing.T) {
	t.Setenv("DASHBOARD_PATH", "dashboard")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASHBOARD_PATH")
}

func TestLoad_EmptyHTTPAddr(t *testing.T) {
	t.Setenv("HTTP_ADDR", " ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_ADDR")
}
