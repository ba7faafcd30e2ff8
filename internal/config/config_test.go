package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"PORT", "HEALTH_PORT", "DATA_DIR", "UPLOADS_DIR", "EXPORTS_DIR", "MAX_FILE_SIZE_MB",
	"SAMPLE_ROWS", "SEED_SAMPLE_DATA", "LOGGING_LEVEL", "PUBLIC_BASE_URL", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, ":8001", cfg.Addr())
	assert.Equal(t, "", cfg.HealthAddr())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "exports", cfg.ExportsDir)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize())
	assert.Equal(t, 3, cfg.SampleRows)
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, "http://localhost:8001", cfg.PublicBaseURL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("HEALTH_PORT", "127.0.0.1:8086")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("MAX_FILE_SIZE_MB", "2")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("LOGGING_LEVEL", "DEVELOPMENT")
	t.Setenv("PUBLIC_BASE_URL", "https://charts.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "127.0.0.1:8086", cfg.HealthAddr())
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, int64(2<<20), cfg.MaxFileSize())
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "DEVELOPMENT", cfg.LogLevel)
	assert.Equal(t, "https://charts.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"MAX_FILE_SIZE_MB": "ten",
		"SAMPLE_ROWS":      "-1",
		"SEED_SAMPLE_DATA": "maybe",
		"SHUTDOWN_TIMEOUT": "5",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}
