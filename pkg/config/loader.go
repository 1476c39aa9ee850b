package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Load builds the worker configuration from environment variables and
// validates it. Database settings are loaded separately by pkg/database.
func Load() (Config, error) {
	queue, err := loadQueueFromEnv()
	if err != nil {
		return Config{}, err
	}

	input, err := loadInputFromEnv()
	if err != nil {
		return Config{}, err
	}

	workerID := strings.TrimSpace(os.Getenv("WORKER_ID"))
	if workerID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return Config{}, fmt.Errorf("WORKER_ID is unset and hostname lookup failed: %w", err)
		}
		workerID = hostname
	}

	retention, err := loadRetentionFromEnv()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Queue:     queue,
		Input:     input,
		States:    loadStateLabelsFromEnv(),
		Retention: retention,
		HTTPPort:  strings.TrimSpace(os.Getenv("HTTP_PORT")),
		WorkerID:  workerID,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadQueueFromEnv() (QueueConfig, error) {
	queue := DefaultQueueConfig()

	pollSeconds, err := parsePositiveFloatEnv("WORKER_POLL_SECONDS", queue.PollInterval.Seconds())
	if err != nil {
		return QueueConfig{}, err
	}
	queue.PollInterval = time.Duration(pollSeconds * float64(time.Second))

	idleSeconds, err := parseNonNegativeIntEnv("SESSION_IDLE_TIMEOUT_SECONDS", int(queue.IdleTimeout.Seconds()))
	if err != nil {
		return QueueConfig{}, err
	}
	queue.IdleTimeout = time.Duration(idleSeconds) * time.Second

	if queue.SummaryThreshold, err = parsePositiveIntEnv("NOTIFICATION_SUMMARY_THRESHOLD", queue.SummaryThreshold); err != nil {
		return QueueConfig{}, err
	}
	if queue.IdleLogEvery, err = parsePositiveIntEnv("WORKER_IDLE_LOG_EVERY", queue.IdleLogEvery); err != nil {
		return QueueConfig{}, err
	}
	if queue.WorkerCount, err = parsePositiveIntEnv("WORKER_COUNT", queue.WorkerCount); err != nil {
		return QueueConfig{}, err
	}
	return queue, nil
}

func loadInputFromEnv() (InputConfig, error) {
	mode := strings.ToLower(strings.TrimSpace(getEnvOrDefault("WORKER_INPUT_MODE", InputModeFixture)))
	if mode != InputModeFixture && mode != InputModeOCR {
		return InputConfig{}, fmt.Errorf("WORKER_INPUT_MODE must be one of: %s, %s", InputModeFixture, InputModeOCR)
	}

	input := InputConfig{
		Mode:               mode,
		FixturePayloadPath: getEnvOrDefault("FIXTURE_PAYLOAD_PATH", DefaultFixturePayloadPath),
	}
	if mode != InputModeOCR {
		return input, nil
	}

	serviceURL := strings.TrimSpace(os.Getenv("OCR_SERVICE_URL"))
	if serviceURL == "" {
		return InputConfig{}, fmt.Errorf("OCR_SERVICE_URL is required when WORKER_INPUT_MODE=%s", InputModeOCR)
	}
	defaultYear, err := parseOptionalIntEnv("OCR_DEFAULT_YEAR")
	if err != nil {
		return InputConfig{}, err
	}
	input.OCR = OCRConfig{
		ServiceURL:  serviceURL,
		DefaultYear: defaultYear,
		Timeout:     60 * time.Second,
	}

	objectStore, err := loadObjectStoreFromEnv()
	if err != nil {
		return InputConfig{}, err
	}
	input.ObjectStore = objectStore
	return input, nil
}

func loadRetentionFromEnv() (RetentionConfig, error) {
	retention := DefaultRetentionConfig()

	days, err := parseNonNegativeIntEnv("SESSION_RETENTION_DAYS", retention.SessionRetentionDays)
	if err != nil {
		return RetentionConfig{}, err
	}
	retention.SessionRetentionDays = days

	hours, err := parsePositiveIntEnv("CLEANUP_INTERVAL_HOURS", int(retention.CleanupInterval.Hours()))
	if err != nil {
		return RetentionConfig{}, err
	}
	retention.CleanupInterval = time.Duration(hours) * time.Hour

	return retention, nil
}

func loadObjectStoreFromEnv() (ObjectStoreConfig, error) {
	endpointURL, err := getRequiredEnv("R2_ENDPOINT_URL", "S3_ENDPOINT_URL")
	if err != nil {
		return ObjectStoreConfig{}, err
	}
	accessKeyID, err := getRequiredEnv("R2_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	if err != nil {
		return ObjectStoreConfig{}, err
	}
	secretAccessKey, err := getRequiredEnv("R2_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	if err != nil {
		return ObjectStoreConfig{}, err
	}
	bucket, err := getRequiredEnv("R2_BUCKET", "R2_BUCKET_NAME", "S3_BUCKET")
	if err != nil {
		return ObjectStoreConfig{}, err
	}

	return ObjectStoreConfig{
		EndpointURL:     endpointURL,
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		Bucket:          bucket,
		Region:          getEnvOrDefault("R2_REGION", "auto"),
		KeyPrefix:       os.Getenv("R2_KEY_PREFIX"),
	}, nil
}

func loadStateLabelsFromEnv() StateLabels {
	labels := DefaultStateLabels()
	if v := readStateEnv("OPEN_STATE", "PENDING_STATE"); v != "" {
		labels.Open = v
	}
	if v := readStateEnv("PROCESSING_STATE"); v != "" {
		labels.Processing = v
	}
	if v := readStateEnv("PROCESSED_STATE", "DONE_STATE"); v != "" {
		labels.Processed = v
	}
	if v := readStateEnv("FAILED_STATE"); v != "" {
		labels.Failed = v
	}
	return labels
}

func readStateEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func getRequiredEnv(names ...string) (string, error) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("missing required environment variable (one of: %s)", strings.Join(names, ", "))
}

func getEnvOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func parsePositiveFloatEnv(name string, defaultVal float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return parsed, nil
}

func parsePositiveIntEnv(name string, defaultVal int) (int, error) {
	parsed, err := parseIntEnv(name, defaultVal)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return parsed, nil
}

func parseNonNegativeIntEnv(name string, defaultVal int) (int, error) {
	parsed, err := parseIntEnv(name, defaultVal)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%s must be >= 0", name)
	}
	return parsed, nil
}

func parseOptionalIntEnv(name string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return parsed, nil
}

func parseIntEnv(name string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return parsed, nil
}
