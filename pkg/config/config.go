// Package config loads and validates the worker configuration from
// environment variables.
package config

import "time"

// Input modes recognized by WORKER_INPUT_MODE.
const (
	InputModeFixture = "fixture"
	InputModeOCR     = "ocr"
)

// DefaultFixturePayloadPath is used when FIXTURE_PAYLOAD_PATH is unset.
const DefaultFixturePayloadPath = "fixtures/sample_schedule.json"

// Config is the top-level worker configuration.
type Config struct {
	Queue     QueueConfig
	Input     InputConfig
	States    StateLabels
	Retention RetentionConfig

	// HTTPPort is the listen port for the health API. Empty disables
	// the HTTP server entirely.
	HTTPPort string

	// WorkerID identifies this worker instance in session leases.
	// Defaults to the hostname.
	WorkerID string
}

// QueueConfig controls how sessions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines in this process.
	WorkerCount int

	// PollInterval is the base interval between claim attempts.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// IdleTimeout gates finalization: a session is claimable only once
	// its newest image is at least this old. Zero claims immediately.
	IdleTimeout time.Duration

	// SummaryThreshold collapses a (user, date, session) event group
	// into a single summary notification at this size.
	SummaryThreshold int

	// IdleLogEvery throttles idle-iteration logging: the first idle
	// iteration logs, then every Nth.
	IdleLogEvery int

	// HeartbeatInterval is how often a claimed session's lease is
	// refreshed.
	HeartbeatInterval time.Duration

	// OrphanDetectionInterval is how often to scan for sessions whose
	// lease went stale.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a processing session can go without
	// a lease refresh before it is considered orphaned.
	OrphanThreshold time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// sessions during shutdown.
	GracefulShutdownTimeout time.Duration
}

// InputConfig selects where session payloads come from.
type InputConfig struct {
	// Mode is InputModeFixture or InputModeOCR.
	Mode string

	// FixturePayloadPath is the JSON payload read in fixture mode.
	FixturePayloadPath string

	// OCR and ObjectStore are populated only in ocr mode.
	OCR         OCRConfig
	ObjectStore ObjectStoreConfig
}

// OCRConfig points at the OCR service used in ocr mode.
type OCRConfig struct {
	ServiceURL string

	// DefaultYear resolves day-month headers that carry no year.
	// Zero falls back to the session's creation year.
	DefaultYear int

	Timeout time.Duration
}

// ObjectStoreConfig holds the S3-compatible credentials for fetching
// capture images in ocr mode.
type ObjectStoreConfig struct {
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	KeyPrefix       string
}

// StateLabels are the capture_session state strings. Deployments that
// predate the current labels override them via environment variables.
type StateLabels struct {
	Open       string
	Processing string
	Processed  string
	Failed     string
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		WorkerCount:             1,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		IdleTimeout:             25 * time.Second,
		SummaryThreshold:        3,
		IdleLogEvery:            12,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// DefaultStateLabels returns the canonical session state labels.
func DefaultStateLabels() StateLabels {
	return StateLabels{
		Open:       "open",
		Processing: "processing",
		Processed:  "done",
		Failed:     "failed",
	}
}
