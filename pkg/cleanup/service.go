// Package cleanup prunes terminal capture sessions past their retention
// window. The schedule event log, day snapshots and notifications are
// the durable record and are never touched.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/pkg/config"
)

// Service periodically deletes done and failed sessions older than the
// retention window, together with their capture image references. All
// operations are idempotent and safe to run from multiple replicas.
type Service struct {
	client *ent.Client
	config config.RetentionConfig
	states config.StateLabels

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(client *ent.Client, cfg config.RetentionConfig, states config.StateLabels) *Service {
	return &Service{
		client: client,
		config: cfg,
		states: states,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	count, err := s.DeleteExpiredSessions(ctx)
	if err != nil {
		slog.Error("Retention: session cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired sessions", "count", count)
	}
}

// DeleteExpiredSessions removes terminal sessions older than the
// retention window. Image rows go first; there is no cascade on the
// foreign key.
func (s *Service) DeleteExpiredSessions(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.SessionRetentionDays)

	expired, err := s.client.CaptureSession.Query().
		Where(
			capturesession.StateIn(s.states.Processed, s.states.Failed),
			capturesession.CreatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired sessions: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start cleanup transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.CaptureImage.Delete().
		Where(captureimage.SessionIDIn(expired...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete capture images: %w", err)
	}

	deleted, err := tx.CaptureSession.Delete().
		Where(capturesession.IDIn(expired...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cleanup: %w", err)
	}
	return deleted, nil
}
