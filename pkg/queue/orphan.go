package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/pkg/config"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned sessions.
// All replicas run this independently; the recovery update is guarded on
// state, so double recovery is harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds processing sessions whose lease went
// stale and marks them failed.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.CaptureSession.Query().
		Where(
			capturesession.StateEQ(p.states.Processing),
			capturesession.LockedAtNotNil(),
			capturesession.LockedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		if err := p.recoverOrphanedSession(ctx, session); err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedSession marks a single orphaned session failed. The
// update is state-guarded so a worker that finished in the meantime wins.
func (p *WorkerPool) recoverOrphanedSession(ctx context.Context, session *ent.CaptureSession) error {
	lastLease := "unknown"
	if session.LockedAt != nil {
		lastLease = session.LockedAt.Format(time.RFC3339)
	}
	owner := "unknown"
	if session.LockedBy != nil {
		owner = *session.LockedBy
	}

	n, err := p.client.CaptureSession.Update().
		Where(
			capturesession.IDEQ(session.ID),
			capturesession.StateEQ(p.states.Processing),
		).
		SetState(p.states.Failed).
		SetErrorMessage(truncateErrorMessage(
			fmt.Sprintf("Orphaned: no lease refresh from worker %s since %s", owner, lastLease))).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session failed: %w", err)
	}
	if n == 0 {
		return nil // finished elsewhere between scan and update
	}

	slog.Warn("Orphaned session marked failed",
		"session_id", session.ID,
		"locked_by", owner,
		"last_lease_refresh", lastLease)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of sessions this
// process left in processing when it previously crashed. Called once
// during startup, before the worker pool begins processing. Lease ids
// are derived from workerID, so the prefix match covers every worker
// goroutine of the previous run.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, workerID string, states config.StateLabels) error {
	orphans, err := client.CaptureSession.Query().
		Where(
			capturesession.StateEQ(states.Processing),
			capturesession.LockedByHasPrefix(workerID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"worker_id", workerID,
		"count", len(orphans))

	for _, session := range orphans {
		n, err := client.CaptureSession.Update().
			Where(
				capturesession.IDEQ(session.ID),
				capturesession.StateEQ(states.Processing),
			).
			SetState(states.Failed).
			SetErrorMessage(truncateErrorMessage(
				fmt.Sprintf("Orphaned: worker %s restarted while session was processing", workerID))).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"session_id", session.ID,
				"error", err)
			continue
		}
		if n > 0 {
			slog.Info("Startup orphan recovered", "session_id", session.ID)
		}
	}

	return nil
}
