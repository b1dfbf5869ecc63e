package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyermap/planner/internal/config"
)

func TestLoad_DefaultsWithNoConfigFilePresent(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4.0, cfg.WalkSpeedKMH)
	assert.Equal(t, 30.0, cfg.DriveSpeedKMH)
	assert.Equal(t, 23, cfg.ExportMaxWaypoints)
	assert.Greater(t, cfg.ProviderTimeout.Seconds(), 0.0)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLYERROUTED_PORT", "9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
}
