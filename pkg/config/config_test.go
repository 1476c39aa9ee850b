package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"WORKER_POLL_SECONDS", "SESSION_IDLE_TIMEOUT_SECONDS",
	"NOTIFICATION_SUMMARY_THRESHOLD", "WORKER_IDLE_LOG_EVERY",
	"WORKER_COUNT", "WORKER_INPUT_MODE", "FIXTURE_PAYLOAD_PATH",
	"OCR_SERVICE_URL", "OCR_DEFAULT_YEAR",
	"R2_ENDPOINT_URL", "S3_ENDPOINT_URL",
	"R2_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID",
	"R2_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY",
	"R2_BUCKET", "R2_BUCKET_NAME", "S3_BUCKET",
	"R2_REGION", "R2_KEY_PREFIX",
	"OPEN_STATE", "PENDING_STATE", "PROCESSING_STATE",
	"PROCESSED_STATE", "DONE_STATE", "FAILED_STATE",
	"SESSION_RETENTION_DAYS", "CLEANUP_INTERVAL_HOURS",
	"HTTP_PORT", "WORKER_ID",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 25*time.Second, cfg.Queue.IdleTimeout)
	assert.Equal(t, 3, cfg.Queue.SummaryThreshold)
	assert.Equal(t, 12, cfg.Queue.IdleLogEvery)

	assert.Equal(t, InputModeFixture, cfg.Input.Mode)
	assert.Equal(t, DefaultFixturePayloadPath, cfg.Input.FixturePayloadPath)

	assert.Equal(t, "open", cfg.States.Open)
	assert.Equal(t, "processing", cfg.States.Processing)
	assert.Equal(t, "done", cfg.States.Processed)
	assert.Equal(t, "failed", cfg.States.Failed)

	assert.False(t, cfg.Retention.Enabled())
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)

	assert.Empty(t, cfg.HTTPPort)

	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname, cfg.WorkerID)
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	os.Setenv("WORKER_POLL_SECONDS", "2.5")
	os.Setenv("SESSION_IDLE_TIMEOUT_SECONDS", "0")
	os.Setenv("NOTIFICATION_SUMMARY_THRESHOLD", "5")
	os.Setenv("WORKER_IDLE_LOG_EVERY", "1")
	os.Setenv("WORKER_COUNT", "3")
	os.Setenv("FIXTURE_PAYLOAD_PATH", "testdata/payload.json")
	os.Setenv("SESSION_RETENTION_DAYS", "90")
	os.Setenv("CLEANUP_INTERVAL_HOURS", "6")
	os.Setenv("HTTP_PORT", "8080")
	os.Setenv("WORKER_ID", "worker-a")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.Queue.IdleTimeout)
	assert.Equal(t, 5, cfg.Queue.SummaryThreshold)
	assert.Equal(t, 1, cfg.Queue.IdleLogEvery)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, "testdata/payload.json", cfg.Input.FixturePayloadPath)
	assert.True(t, cfg.Retention.Enabled())
	assert.Equal(t, 90, cfg.Retention.SessionRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "worker-a", cfg.WorkerID)
}

func TestLoadStateLabelFallbacks(t *testing.T) {
	clearConfigEnv(t)
	os.Setenv("PENDING_STATE", "closed")
	os.Setenv("DONE_STATE", "processed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "closed", cfg.States.Open)
	assert.Equal(t, "processed", cfg.States.Processed)
	assert.Equal(t, "processing", cfg.States.Processing)
	assert.Equal(t, "failed", cfg.States.Failed)

	// Primary names win over fallbacks.
	os.Setenv("OPEN_STATE", "open")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "open", cfg.States.Open)
}

func TestLoadOCRMode(t *testing.T) {
	clearConfigEnv(t)
	os.Setenv("WORKER_INPUT_MODE", "ocr")
	os.Setenv("OCR_SERVICE_URL", "http://ocr.internal:9292")
	os.Setenv("OCR_DEFAULT_YEAR", "2026")
	os.Setenv("R2_ENDPOINT_URL", "https://account.r2.cloudflarestorage.com")
	os.Setenv("AWS_ACCESS_KEY_ID", "key-id")
	os.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	os.Setenv("S3_BUCKET", "captures")
	os.Setenv("R2_KEY_PREFIX", "uploads/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, InputModeOCR, cfg.Input.Mode)
	assert.Equal(t, "http://ocr.internal:9292", cfg.Input.OCR.ServiceURL)
	assert.Equal(t, 2026, cfg.Input.OCR.DefaultYear)
	assert.Equal(t, "key-id", cfg.Input.ObjectStore.AccessKeyID)
	assert.Equal(t, "secret", cfg.Input.ObjectStore.SecretAccessKey)
	assert.Equal(t, "captures", cfg.Input.ObjectStore.Bucket)
	assert.Equal(t, "auto", cfg.Input.ObjectStore.Region)
	assert.Equal(t, "uploads/", cfg.Input.ObjectStore.KeyPrefix)
}

func TestLoadOCRModeMissingCredentials(t *testing.T) {
	clearConfigEnv(t)
	os.Setenv("WORKER_INPUT_MODE", "ocr")
	os.Setenv("OCR_SERVICE_URL", "http://ocr.internal:9292")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R2_ENDPOINT_URL")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"non numeric poll", "WORKER_POLL_SECONDS", "fast", "WORKER_POLL_SECONDS"},
		{"zero poll", "WORKER_POLL_SECONDS", "0", "must be > 0"},
		{"negative idle timeout", "SESSION_IDLE_TIMEOUT_SECONDS", "-1", "must be >= 0"},
		{"zero threshold", "NOTIFICATION_SUMMARY_THRESHOLD", "0", "must be > 0"},
		{"bad input mode", "WORKER_INPUT_MODE", "camera", "WORKER_INPUT_MODE"},
		{"bad worker count", "WORKER_COUNT", "many", "WORKER_COUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			os.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Queue:     DefaultQueueConfig(),
			Input:     InputConfig{Mode: InputModeFixture, FixturePayloadPath: "fixtures/sample_schedule.json"},
			States:    DefaultStateLabels(),
			Retention: DefaultRetentionConfig(),
			WorkerID:  "worker-a",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero workers", func(c *Config) { c.Queue.WorkerCount = 0 }, "worker count"},
		{"too many workers", func(c *Config) { c.Queue.WorkerCount = 51 }, "worker count"},
		{"negative jitter", func(c *Config) { c.Queue.PollIntervalJitter = -time.Second }, "jitter"},
		{"zero heartbeat", func(c *Config) { c.Queue.HeartbeatInterval = 0 }, "heartbeat"},
		{"empty fixture path", func(c *Config) { c.Input.FixturePayloadPath = "" }, "fixture payload path"},
		{"duplicate state labels", func(c *Config) { c.States.Failed = c.States.Open }, "distinct"},
		{"empty state label", func(c *Config) { c.States.Processing = "" }, "state labels"},
		{"negative retention days", func(c *Config) { c.Retention.SessionRetentionDays = -1 }, "retention days"},
		{"zero cleanup interval", func(c *Config) { c.Retention.CleanupInterval = 0 }, "cleanup interval"},
		{"empty worker id", func(c *Config) { c.WorkerID = "" }, "worker id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
