package config

import "time"

// RetentionConfig controls cleanup of terminal capture sessions.
// Events, snapshots and notifications are the durable record and are
// never pruned; only the session rows and their image references age out.
type RetentionConfig struct {
	// SessionRetentionDays is how many days to keep done and failed
	// sessions before deletion. Zero disables retention cleanup.
	SessionRetentionDays int

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
// Cleanup is off unless SESSION_RETENTION_DAYS is set.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		SessionRetentionDays: 0,
		CleanupInterval:      12 * time.Hour,
	}
}

// Enabled reports whether retention cleanup should run at all.
func (r RetentionConfig) Enabled() bool {
	return r.SessionRetentionDays > 0
}
