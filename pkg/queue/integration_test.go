package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/pkg/notify"
	"github.com/skiftkoll/skiftkoll/pkg/store"
	"github.com/skiftkoll/skiftkoll/test/util"
)

const fixtureContent = `{
	"schedule_date": "2026-08-22",
	"entries": [
		{
			"start": "08:00",
			"end": "11:30",
			"title": "Pia Lindkvist Städservice",
			"location": "Mölndal",
			"address": "Göteborgsvägen 12, 431 37 Mölndal"
		}
	]
}`

type queueTestEnv struct {
	client *ent.Client
	store  *store.Store
	cfg    config.QueueConfig
	states config.StateLabels
	source InputSource
}

func newQueueTestEnv(t *testing.T) *queueTestEnv {
	t.Helper()
	entClient, db, schema := util.SetupTestDatabase(t)

	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.IdleTimeout = 0
	cfg.HeartbeatInterval = time.Second
	cfg.OrphanDetectionInterval = time.Minute
	cfg.OrphanThreshold = time.Minute

	return &queueTestEnv{
		client: entClient,
		store:  store.New(db, schema),
		cfg:    cfg,
		states: config.DefaultStateLabels(),
		source: &FixtureSource{PayloadPath: writeFixture(t, fixtureContent)},
	}
}

func (env *queueTestEnv) newExecutor(t *testing.T) *PipelineExecutor {
	t.Helper()
	builder, err := notify.NewBuilder(notify.DefaultSummaryThreshold)
	require.NoError(t, err)
	return NewPipelineExecutor(env.client, env.store, builder, env.source)
}

func (env *queueTestEnv) createSession(t *testing.T, userID int64, imageAge time.Duration) *ent.CaptureSession {
	t.Helper()
	ctx := context.Background()

	session, err := env.client.CaptureSession.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetState(env.states.Open).
		Save(ctx)
	require.NoError(t, err)

	_, err = env.client.CaptureImage.Create().
		SetID(uuid.NewString()).
		SetSessionID(session.ID).
		SetSequence(1).
		SetObjectKey("sessions/" + session.ID + "/a.png").
		SetCreatedAt(time.Now().Add(-imageAge)).
		Save(ctx)
	require.NoError(t, err)

	return session
}

func (env *queueTestEnv) sessionState(t *testing.T, sessionID string) string {
	t.Helper()
	session, err := env.client.CaptureSession.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return session.State
}

func TestWorkerProcessesSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 8225717176, time.Hour)

	require.NoError(t, worker.pollAndProcess(ctx))
	assert.Equal(t, env.states.Processed, env.sessionState(t, session.ID))

	// Events and snapshot were persisted for the fixture date.
	snapshot, err := env.store.LoadDaySnapshot(ctx, 8225717176, "2026-08-22")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Pia Lindkvist", snapshot[0].CustomerName)

	// The notification carries the source image annotation.
	seen, err := env.store.AlreadyNotifiedEventIDs(ctx, 8225717176, "2026-08-22")
	require.NoError(t, err)
	assert.Len(t, seen, 1)

	// Nothing left to claim.
	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoSessionsAvailable)
}

func TestIdleGatingBlocksFreshSessions(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	env.cfg.IdleTimeout = time.Hour
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Minute) // newest image 1m old, window 1h

	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoSessionsAvailable)
	assert.Equal(t, env.states.Open, env.sessionState(t, session.ID))

	waiting, err := worker.countWaitingForIdle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, waiting)
}

func TestSessionWithoutImagesIsNotClaimed(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	_, err := env.client.CaptureSession.Create().
		SetID(uuid.NewString()).
		SetUserID(1).
		SetState(env.states.Open).
		Save(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoSessionsAvailable)

	waiting, err := worker.countWaitingForIdle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, waiting)
}

func TestClaimIsExclusive(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	workerA := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))
	workerB := NewWorker("pod-a-worker-1", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)

	claimed, err := workerA.claimNextSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claimed.ID)
	assert.Equal(t, env.states.Processing, claimed.State)
	require.NotNil(t, claimed.LockedBy)
	assert.Equal(t, "pod-a-worker-0", *claimed.LockedBy)
	assert.NotNil(t, claimed.LockedAt)

	_, err = workerB.claimNextSession(ctx)
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
}

func TestStageFailureMarksSessionFailed(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	env.source = &FixtureSource{PayloadPath: "/nonexistent/payload.json"}
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)

	require.NoError(t, worker.pollAndProcess(ctx))

	got, err := env.client.CaptureSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, env.states.Failed, got.State)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "stage ocr")
}

func TestTerminalTransitionsRequireLease(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)
	claimed, err := worker.claimNextSession(ctx)
	require.NoError(t, err)

	// Another worker takes the lease over.
	err = env.client.CaptureSession.UpdateOneID(claimed.ID).
		SetLockedBy("pod-b-worker-0").
		Exec(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, worker.markProcessed(ctx, claimed.ID), ErrLeaseLost)
	assert.ErrorIs(t, worker.markFailed(ctx, claimed.ID, "boom"), ErrLeaseLost)
	assert.Equal(t, env.states.Processing, env.sessionState(t, session.ID))
}

func TestOrphanRecovery(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	pool := NewWorkerPool("pod-a", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)
	err := env.client.CaptureSession.UpdateOneID(session.ID).
		SetState(env.states.Processing).
		SetLockedBy("pod-b-worker-0").
		SetLockedAt(time.Now().Add(-2 * env.cfg.OrphanThreshold)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := env.client.CaptureSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, env.states.Failed, got.State)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "Orphaned")

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestOrphanScanIgnoresFreshLeases(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	pool := NewWorkerPool("pod-a", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)
	err := env.client.CaptureSession.UpdateOneID(session.ID).
		SetState(env.states.Processing).
		SetLockedBy("pod-b-worker-0").
		SetLockedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))
	assert.Equal(t, env.states.Processing, env.sessionState(t, session.ID))
}

func TestCleanupStartupOrphans(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)

	mine := env.createSession(t, 1, time.Hour)
	require.NoError(t, env.client.CaptureSession.UpdateOneID(mine.ID).
		SetState(env.states.Processing).
		SetLockedBy("pod-a-worker-0").
		SetLockedAt(time.Now()).
		Exec(ctx))

	other := env.createSession(t, 2, time.Hour)
	require.NoError(t, env.client.CaptureSession.UpdateOneID(other.ID).
		SetState(env.states.Processing).
		SetLockedBy("pod-b-worker-0").
		SetLockedAt(time.Now()).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, env.client, "pod-a", env.states))

	assert.Equal(t, env.states.Failed, env.sessionState(t, mine.ID))
	assert.Equal(t, env.states.Processing, env.sessionState(t, other.ID))
}

func TestReprocessingProcessedSessionDoesNothing(t *testing.T) {
	ctx := context.Background()
	env := newQueueTestEnv(t)
	worker := NewWorker("pod-a-worker-0", env.client, env.cfg, env.states, env.newExecutor(t))

	session := env.createSession(t, 1, time.Hour)
	require.NoError(t, worker.pollAndProcess(ctx))
	require.Equal(t, env.states.Processed, env.sessionState(t, session.ID))

	// Terminal states are never claimable again.
	assert.ErrorIs(t, worker.pollAndProcess(ctx), ErrNoSessionsAvailable)
}

func TestWorkerPoolStartStop(t *testing.T) {
	env := newQueueTestEnv(t)
	pool := NewWorkerPool("pod-a", env.client, env.cfg, env.states, env.newExecutor(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx)) // duplicate Start is a no-op

	session := env.createSession(t, 8225717176, time.Hour)
	require.Eventually(t, func() bool {
		return env.sessionState(t, session.ID) == env.states.Processed
	}, 10*time.Second, 50*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, env.cfg.WorkerCount, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)

	pool.Stop()
}
