package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for finalizable sessions,
// claims them, and runs the pipeline executor.
type Worker struct {
	id              string
	client          *ent.Client
	config          config.QueueConfig
	states          config.StateLabels
	sessionExecutor SessionExecutor
	stopCh          chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup

	// Idle-iteration log throttling: the first idle iteration logs,
	// then every IdleLogEvery-th.
	idleStreak int

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker. id doubles as the session lease
// owner (locked_by).
func NewWorker(id string, client *ent.Client, cfg config.QueueConfig, states config.StateLabels, executor SessionExecutor) *Worker {
	return &Worker{
		id:              id,
		client:          client,
		config:          cfg,
		states:          states,
		sessionExecutor: executor,
		stopCh:          make(chan struct{}),
		status:          WorkerStatusIdle,
		lastActivity:    time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop. Per-session errors never kill the loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) {
					w.logIdleIteration(ctx, log)
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			} else {
				w.idleStreak = 0
			}
		}
	}
}

// logIdleIteration logs the first idle iteration, then every Nth, with
// the count of open sessions still inside their idle window.
func (w *Worker) logIdleIteration(ctx context.Context, log *slog.Logger) {
	w.idleStreak++
	if w.idleStreak != 1 && w.idleStreak%w.config.IdleLogEvery != 0 {
		return
	}

	waiting, err := w.countWaitingForIdle(ctx)
	if err != nil {
		log.Warn("Failed to count sessions waiting for idle", "error", err)
		return
	}
	log.Info("No finalizable sessions",
		"idle_iterations", w.idleStreak,
		"waiting_for_idle", waiting)
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next finalizable session and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	session, err := w.claimNextSession(ctx)
	if err != nil {
		return err
	}

	log := slog.With("session_id", session.ID, "user_id", session.UserID, "worker_id", w.id)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	sessionCtx, cancelSession := context.WithCancelCause(ctx)
	defer cancelSession(nil)

	// Heartbeat keeps the lease fresh; on lease loss it cancels the
	// session context so the executor aborts early.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(heartbeatCtx, session.ID, cancelSession)
	}()

	result := w.sessionExecutor.Execute(sessionCtx, session)
	cancelHeartbeat()

	if result == nil {
		result = &ExecutionResult{Err: fmt.Errorf("executor returned nil result")}
	}
	if errors.Is(context.Cause(sessionCtx), ErrLeaseLost) {
		log.Warn("Aborting session, lease lost during processing")
		return nil
	}

	// Terminal transitions use a background context: the session
	// context may already be cancelled.
	if err := w.finishSession(context.Background(), session.ID, result, log); err != nil {
		return err
	}

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()
	return nil
}

// finishSession applies the terminal transition for one execution result.
func (w *Worker) finishSession(ctx context.Context, sessionID string, result *ExecutionResult, log *slog.Logger) error {
	var stageErr *StageError
	switch {
	case result.Err == nil:
		if err := w.markProcessed(ctx, sessionID); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				w.classifyLeaseLoss(ctx, sessionID, log)
				return nil
			}
			return err
		}
		log.Info("Session processed",
			"schedule_date", result.ScheduleDate,
			"shift_count", result.ShiftCount,
			"event_count", result.EventCount,
			"inserted_event_count", result.InsertedEventCount,
			"notification_count", result.NotificationCount,
			"stored_notification_count", result.StoredNotifications)
		return nil

	case errors.Is(result.Err, ErrLeaseLost):
		w.classifyLeaseLoss(ctx, sessionID, log)
		return nil

	case errors.As(result.Err, &stageErr):
		log.Error("Session failed", "stage", stageErr.Stage, "error", result.Err)
		if err := w.markFailed(ctx, sessionID, result.Err.Error()); err != nil {
			if errors.Is(err, ErrLeaseLost) {
				w.classifyLeaseLoss(ctx, sessionID, log)
				return nil
			}
			return err
		}
		return nil

	default:
		// Untagged errors (e.g. notification persist) leave the session
		// in processing; orphan recovery picks it up once the lease
		// goes stale.
		log.Warn("Session left in processing after error", "error", result.Err)
		return nil
	}
}

// claimNextSession atomically claims the oldest finalizable session via
// FOR UPDATE SKIP LOCKED. A session is finalizable when it is open, has
// at least one image, and its newest image is outside the idle window.
func (w *Worker) claimNextSession(ctx context.Context) (*ent.CaptureSession, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cutoff := time.Now().Add(-w.config.IdleTimeout)
	session, err := tx.CaptureSession.Query().
		Where(
			capturesession.StateEQ(w.states.Open),
			hasAnyImage(),
			hasNoImageNewerThan(cutoff),
		).
		Order(ent.Asc(capturesession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSessionsAvailable
		}
		return nil, fmt.Errorf("failed to query finalizable session: %w", err)
	}

	// Claim: open -> processing plus the lease stamp, same transaction.
	now := time.Now()
	session, err = session.Update().
		SetState(w.states.Processing).
		SetLockedBy(w.id).
		SetLockedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return session, nil
}

// countWaitingForIdle counts open sessions that are not yet finalizable:
// they have no images, or an image inside the idle window.
func (w *Worker) countWaitingForIdle(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-w.config.IdleTimeout)
	return w.client.CaptureSession.Query().
		Where(
			capturesession.StateEQ(w.states.Open),
			capturesession.Or(
				capturesession.Not(hasAnyImage()),
				capturesession.Not(hasNoImageNewerThan(cutoff)),
			),
		).
		Count(ctx)
}

// hasAnyImage matches sessions with at least one capture image.
func hasAnyImage() func(*sql.Selector) {
	return func(s *sql.Selector) {
		img := sql.Table(captureimage.Table)
		s.Where(sql.Exists(
			sql.Select().From(img).
				Where(sql.ColumnsEQ(img.C(captureimage.FieldSessionID), s.C(capturesession.FieldID))),
		))
	}
}

// hasNoImageNewerThan matches sessions whose every image is at or before
// the cutoff, i.e. MAX(created_at) <= cutoff.
func hasNoImageNewerThan(cutoff time.Time) func(*sql.Selector) {
	return func(s *sql.Selector) {
		img := sql.Table(captureimage.Table)
		s.Where(sql.Not(sql.Exists(
			sql.Select().From(img).
				Where(sql.And(
					sql.ColumnsEQ(img.C(captureimage.FieldSessionID), s.C(capturesession.FieldID)),
					sql.GT(img.C(captureimage.FieldCreatedAt), cutoff),
				)),
		)))
	}
}

// runHeartbeat refreshes the session lease until its context ends.
// A refresh that affects zero rows means the lease is gone: the session
// context is cancelled with ErrLeaseLost and the heartbeat stops.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string, cancelSession context.CancelCauseFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.client.CaptureSession.Update().
				Where(
					capturesession.IDEQ(sessionID),
					capturesession.StateEQ(w.states.Processing),
					capturesession.LockedByEQ(w.id),
				).
				SetLockedAt(time.Now()).
				Save(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
				continue
			}
			if n == 0 {
				cancelSession(ErrLeaseLost)
				return
			}
		}
	}
}

// markProcessed applies the lease-guarded processing -> done transition.
func (w *Worker) markProcessed(ctx context.Context, sessionID string) error {
	n, err := w.client.CaptureSession.Update().
		Where(
			capturesession.IDEQ(sessionID),
			capturesession.StateEQ(w.states.Processing),
			capturesession.LockedByEQ(w.id),
		).
		SetState(w.states.Processed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session processed: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// markFailed applies the lease-guarded processing -> failed transition.
func (w *Worker) markFailed(ctx context.Context, sessionID, message string) error {
	n, err := w.client.CaptureSession.Update().
		Where(
			capturesession.IDEQ(sessionID),
			capturesession.StateEQ(w.states.Processing),
			capturesession.LockedByEQ(w.id),
		).
		SetState(w.states.Failed).
		SetErrorMessage(truncateErrorMessage(message)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark session failed: %w", err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// classifyLeaseLoss logs why a lease-guarded update found nothing, based
// on the session's current state.
func (w *Worker) classifyLeaseLoss(ctx context.Context, sessionID string, log *slog.Logger) {
	session, err := w.client.CaptureSession.Get(ctx, sessionID)
	if err != nil {
		log.Warn("Lease lost, session no longer readable", "error", err)
		return
	}

	switch session.State {
	case w.states.Processed:
		log.Warn("Lease lost, session already completed by another worker")
	case w.states.Failed:
		log.Warn("Lease lost, session already marked failed elsewhere")
	case w.states.Processing:
		owner := ""
		if session.LockedBy != nil {
			owner = *session.LockedBy
		}
		log.Warn("Lease lost, session taken over", "locked_by", owner)
	default:
		log.Warn("Lease lost, session in unexpected state", "state", session.State)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
