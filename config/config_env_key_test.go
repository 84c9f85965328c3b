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
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"scheduler": map[string]any{
			"tickInterval":      "1m",
			"eventReminderTime": "07:00",
		},
		"dispatch": map[string]any{
			"notifierTimeout": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SCHEDULER_TICKINTERVAL", want: "scheduler.tickInterval"},
		{envKey: "SCHEDULER_EVENTREMINDERTIME", want: "scheduler.eventReminderTime"},
		{envKey: "DISPATCH_NOTIFIERTIMEOUT", want: "dispatch.notifierTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
http:
  port: 3000
  apiKeys: []
scheduler:
  tickInterval: 1m
storage:
  driver: memory
`), 0o600))
	t.Chdir(dir)

	t.Setenv("SCHEDULER_TICKINTERVAL", "30s")
	t.Setenv("HTTP_APIKEYS", "alpha,beta")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.TickInterval)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.HTTP.APIKeys)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "not found")
}
