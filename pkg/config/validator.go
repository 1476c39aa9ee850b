package config

import "fmt"

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.States.Validate(); err != nil {
		return err
	}
	if err := c.Retention.Validate(); err != nil {
		return err
	}
	if c.WorkerID == "" {
		return fmt.Errorf("worker id must not be empty")
	}
	return nil
}

// Validate checks retention settings.
func (r *RetentionConfig) Validate() error {
	if r.SessionRetentionDays < 0 {
		return fmt.Errorf("session retention days must be non-negative")
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive")
	}
	return nil
}

// Validate checks queue settings.
func (q *QueueConfig) Validate() error {
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll interval jitter must be non-negative")
	}
	if q.IdleTimeout < 0 {
		return fmt.Errorf("session idle timeout must be non-negative")
	}
	if q.SummaryThreshold < 1 {
		return fmt.Errorf("notification summary threshold must be at least 1")
	}
	if q.IdleLogEvery < 1 {
		return fmt.Errorf("idle log interval must be at least 1")
	}
	if q.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat interval must be positive")
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan detection interval must be positive")
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan threshold must be positive")
	}
	if q.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful shutdown timeout must be positive")
	}
	return nil
}

// Validate checks input-source settings.
func (i *InputConfig) Validate() error {
	switch i.Mode {
	case InputModeFixture:
		if i.FixturePayloadPath == "" {
			return fmt.Errorf("fixture payload path must not be empty")
		}
	case InputModeOCR:
		if i.OCR.ServiceURL == "" {
			return fmt.Errorf("OCR service URL must not be empty in ocr mode")
		}
		if i.ObjectStore.EndpointURL == "" || i.ObjectStore.Bucket == "" {
			return fmt.Errorf("object store endpoint and bucket are required in ocr mode")
		}
	default:
		return fmt.Errorf("input mode must be one of: %s, %s", InputModeFixture, InputModeOCR)
	}
	return nil
}

// Validate checks that session state labels are non-empty and distinct.
func (s *StateLabels) Validate() error {
	labels := []string{s.Open, s.Processing, s.Processed, s.Failed}
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("session state labels must not be empty")
		}
		if seen[label] {
			return fmt.Errorf("session state labels must be distinct, %q repeats", label)
		}
		seen[label] = true
	}
	return nil
}
