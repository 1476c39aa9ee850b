package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/test/util"
)

func newTestService(t *testing.T, retentionDays int) (*Service, *ent.Client) {
	t.Helper()
	entClient, _, _ := util.SetupTestDatabase(t)

	cfg := config.DefaultRetentionConfig()
	cfg.SessionRetentionDays = retentionDays

	return NewService(entClient, cfg, config.DefaultStateLabels()), entClient
}

func createSession(t *testing.T, client *ent.Client, state string, age time.Duration, withImage bool) string {
	t.Helper()
	ctx := context.Background()

	session, err := client.CaptureSession.Create().
		SetID(uuid.NewString()).
		SetUserID(1).
		SetState(state).
		SetCreatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)

	if withImage {
		_, err = client.CaptureImage.Create().
			SetID(uuid.NewString()).
			SetSessionID(session.ID).
			SetSequence(1).
			SetObjectKey("sessions/" + session.ID + "/a.png").
			Save(ctx)
		require.NoError(t, err)
	}
	return session.ID
}

func TestDeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t, 30)
	states := config.DefaultStateLabels()

	oldDone := createSession(t, client, states.Processed, 31*24*time.Hour, true)
	oldFailed := createSession(t, client, states.Failed, 60*24*time.Hour, true)
	recentDone := createSession(t, client, states.Processed, 24*time.Hour, true)
	oldOpen := createSession(t, client, states.Open, 31*24*time.Hour, true)
	oldProcessing := createSession(t, client, states.Processing, 31*24*time.Hour, true)

	deleted, err := svc.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := client.CaptureSession.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{recentDone, oldOpen, oldProcessing}, remaining)

	// Image rows of deleted sessions are gone too.
	for _, id := range []string{oldDone, oldFailed} {
		n, err := client.CaptureImage.Query().
			Where(captureimage.SessionIDEQ(id)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	n, err := client.CaptureImage.Query().
		Where(captureimage.SessionIDEQ(recentDone)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteExpiredSessionsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, client := newTestService(t, 30)
	states := config.DefaultStateLabels()

	createSession(t, client, states.Processed, 31*24*time.Hour, true)

	deleted, err := svc.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = svc.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStartStop(t *testing.T) {
	svc, client := newTestService(t, 30)
	states := config.DefaultStateLabels()

	expired := createSession(t, client, states.Failed, 31*24*time.Hour, false)

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op

	// The loop runs once immediately on start.
	require.Eventually(t, func() bool {
		n, err := client.CaptureSession.Query().Count(context.Background())
		return err == nil && n == 0
	}, 5*time.Second, 20*time.Millisecond, "session %s should be cleaned up", expired)

	svc.Stop()
}
