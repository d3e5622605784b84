package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadConfig(t *testing.T, content string) (*Config, error) {
	t.Helper()
	loader, err := NewConfigLoader(writeConfigFile(t, content))
	require.NoError(t, err)
	return loader.Load()
}

func TestConfigLoader_Load(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := loadConfig(t, "")
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowedOrigins)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "vocapace", cfg.Database.Database)
		assert.Equal(t, 0.9, cfg.Scheduler.DesiredRetention)
		assert.Equal(t, 36500, cfg.Scheduler.MaximumIntervalDays)
		assert.Equal(t, []time.Duration{time.Minute, 10 * time.Minute}, cfg.Scheduler.LearningSteps())
		assert.Equal(t, []time.Duration{10 * time.Minute}, cfg.Scheduler.RelearningSteps())
		assert.Nil(t, cfg.Scheduler.Weights)
	})

	t.Run("reads values from the file", func(t *testing.T) {
		cfg, err := loadConfig(t, `
server:
  port: 9090
  cors:
    allowed_origins:
      - https://vocapace.example
database:
  host: db.internal
  port: 3307
  username: learnapi
  max_open_conns: 20
scheduler:
  desired_retention: 0.85
  maximum_interval_days: 365
  learning_steps_seconds: [30, 300, 1800]
`)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"https://vocapace.example"}, cfg.Server.CORS.AllowedOrigins)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 0.85, cfg.Scheduler.DesiredRetention)
		assert.Equal(t, 365, cfg.Scheduler.MaximumIntervalDays)
		assert.Equal(t,
			[]time.Duration{30 * time.Second, 5 * time.Minute, 30 * time.Minute},
			cfg.Scheduler.LearningSteps(),
		)
	})

	t.Run("reads the database password from the environment", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "s3cret")

		cfg, err := loadConfig(t, "")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Database.Password)
	})

	t.Run("rejects an invalid server port", func(t *testing.T) {
		_, err := loadConfig(t, `
server:
  port: -1
`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("rejects a retention above one", func(t *testing.T) {
		_, err := loadConfig(t, `
scheduler:
  desired_retention: 1.5
`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("rejects a truncated weight vector", func(t *testing.T) {
		_, err := loadConfig(t, `
scheduler:
  weights: [0.2, 1.3, 2.3]
`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "weights")
	})
}
