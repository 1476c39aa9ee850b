package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/pkg/database"
	"github.com/skiftkoll/skiftkoll/pkg/notify"
	"github.com/skiftkoll/skiftkoll/pkg/store"
	testdatabase "github.com/skiftkoll/skiftkoll/test/database"
)

// newReplicaWorker builds a worker with its own connection pool, the way
// a second process replica would connect.
func newReplicaWorker(t *testing.T, shared *testdatabase.SharedTestDB, leaseID, fixturePath string) (*Worker, *database.Client) {
	t.Helper()

	client := shared.NewClient(t)
	builder, err := notify.NewBuilder(notify.DefaultSummaryThreshold)
	require.NoError(t, err)

	executor := NewPipelineExecutor(
		client.Client,
		store.New(client.DB(), shared.SchemaName()),
		builder,
		&FixtureSource{PayloadPath: fixturePath},
	)

	cfg := config.DefaultQueueConfig()
	cfg.IdleTimeout = 0

	return NewWorker(leaseID, client.Client, cfg, config.DefaultStateLabels(), executor), client
}

func TestMultiReplicaClaimExactlyOnce(t *testing.T) {
	ctx := context.Background()
	shared := testdatabase.NewSharedTestDB(t)
	fixturePath := writeFixture(t, fixtureContent)
	states := config.DefaultStateLabels()

	workerA, clientA := newReplicaWorker(t, shared, "pod-a-worker-0", fixturePath)
	workerB, _ := newReplicaWorker(t, shared, "pod-b-worker-0", fixturePath)

	session, err := clientA.CaptureSession.Create().
		SetID(uuid.NewString()).
		SetUserID(99).
		SetState(states.Open).
		Save(ctx)
	require.NoError(t, err)
	_, err = clientA.CaptureImage.Create().
		SetID(uuid.NewString()).
		SetSessionID(session.ID).
		SetSequence(1).
		SetObjectKey("sessions/" + session.ID + "/a.png").
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Both replicas race for the single finalizable session.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, worker := range []*Worker{workerA, workerB} {
		wg.Add(1)
		go func(i int, w *Worker) {
			defer wg.Done()
			results[i] = w.pollAndProcess(ctx)
		}(i, worker)
	}
	wg.Wait()

	// Exactly one replica processed it, the other found nothing.
	processed, empty := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			processed++
		case assert.ErrorIs(t, err, ErrNoSessionsAvailable):
			empty++
		}
	}
	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, empty)

	got, err := clientA.CaptureSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, states.Processed, got.State)
}
