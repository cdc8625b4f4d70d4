package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"proximity": map[string]any{
			"radiusMeters": 30,
		},
		"localStore": map[string]any{
			"bucketUrl": "mem://",
			"redis": map[string]any{
				"addr": "",
			},
		},
		"directions": map[string]any{
			"mapbox": map[string]any{
				"accessToken": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "PROXIMITY_RADIUSMETERS", want: "proximity.radiusMeters"},
		{envKey: "LOCALSTORE_BUCKETURL", want: "localStore.bucketUrl"},
		{envKey: "LOCALSTORE_REDIS_ADDR", want: "localStore.redis.addr"},
		{envKey: "DIRECTIONS_MAPBOX_ACCESSTOKEN", want: "directions.mapbox.accessToken"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMonitorSettings(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.Location.Samples)
	assert.Equal(t, 600*time.Millisecond, cfg.Location.SampleInterval)
	assert.Equal(t, 10*time.Second, cfg.Location.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Location.CacheMaxAge)
	assert.InDelta(t, 30.0, cfg.Proximity.RadiusMeters, 0)
	assert.Equal(t, 10*time.Second, cfg.Proximity.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Proximity.Cooldown)
	assert.InDelta(t, 5000.0, cfg.Reminder.RadiusMeters, 0)
	assert.Equal(t, 30*time.Second, cfg.Reminder.Interval)
	assert.Equal(t, time.Minute, cfg.Reminder.RefreshInterval)
	assert.Equal(t, 24*time.Hour, cfg.Reminder.Cooldown)
	assert.Equal(t, 5, cfg.Search.HistorySize)
	assert.Equal(t, 10, cfg.Search.RecentlyViewedSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{RadiusMeters: 50, Interval: time.Second, Cooldown: time.Minute},
	}
	cfg.applyDefaults()

	assert.InDelta(t, 50.0, cfg.Proximity.RadiusMeters, 0)
	assert.Equal(t, time.Second, cfg.Proximity.Interval)
	assert.Equal(t, time.Minute, cfg.Proximity.Cooldown)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: develop
  serviceName: shopradar
proximity:
  radiusMeters: 30
  cooldown: 5m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("PROXIMITY_RADIUSMETERS", "45")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Proximity)
	assert.Equal(t, "shopradar", cfg.Env.ServiceName)
	assert.InDelta(t, 45.0, cfg.Proximity.RadiusMeters, 0)
	assert.Equal(t, 5*time.Minute, cfg.Proximity.Cooldown)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
}
