// Package queue runs the session-finalization lifecycle: idle-gated
// claiming of capture sessions, pipeline execution, heartbeat leases,
// terminal state transitions, and orphan recovery.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skiftkoll/skiftkoll/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no finalizable sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrLeaseLost indicates a lease-guarded update affected zero rows:
	// this worker no longer owns the session and must abort without any
	// terminal transition.
	ErrLeaseLost = errors.New("session lease lost")
)

// maxErrorMessageLen bounds the error text stored on a failed session.
const maxErrorMessageLen = 4000

// Pipeline stage names used in error tagging and logging.
const (
	StageLifecycle = "lifecycle"
	StageOCR       = "ocr"
	StageLayout    = "layout"
	StageNormalize = "normalize"
	StageAggregate = "aggregate"
	StageDiff      = "diff"
	StageDB        = "db"
)

// StageError tags a pipeline failure with the stage that raised it.
// A session failing with a StageError transitions to the failed state;
// untagged errors leave it in processing for orphan recovery.
type StageError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *StageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stage %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("stage %s: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error { return e.Cause }

// NewStageError builds a tagged pipeline failure. cause may be nil.
func NewStageError(stage, message string, cause error) *StageError {
	return &StageError{Stage: stage, Message: message, Cause: cause}
}

// SessionExecutor runs the finalization pipeline for one claimed session.
// The executor persists events, snapshot, and notifications itself; the
// worker only handles claiming, heartbeat, and the terminal transition.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.CaptureSession) *ExecutionResult
}

// ExecutionResult summarizes one pipeline run.
type ExecutionResult struct {
	ScheduleDate        string
	ShiftCount          int
	EventCount          int
	InsertedEventCount  int
	NotificationCount   int
	StoredNotifications int

	// Err is nil on success. A *StageError marks the session failed;
	// ErrLeaseLost aborts silently; any other error leaves the session
	// in processing.
	Err error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	WorkerID         string         `json:"worker_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WaitingForIdle   int            `json:"waiting_for_idle"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}

// truncateErrorMessage bounds the message stored on a failed session.
func truncateErrorMessage(message string) string {
	if len(message) <= maxErrorMessageLen {
		return message
	}
	return message[:maxErrorMessageLen]
}
