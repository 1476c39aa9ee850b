package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
	"github.com/skiftkoll/skiftkoll/test/util"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	_, db, schema := util.SetupTestDatabase(t)
	return New(db, schema)
}

func testShift(start, end, locFP, custFP string) models.CanonicalShift {
	return models.CanonicalShift{
		Start: start, End: end,
		CustomerName: "Anna Ek", CustomerFingerprint: custFP,
		Street: "Storgatan", StreetNumber: "12",
		PostalCode: "431 37", PostalArea: "Molndal", City: "Molndal",
		LocationFingerprint: locFP,
		ShiftType:           models.ShiftTypeWork, RawTypeLabel: "Stadservice",
	}
}

func TestProcessObservationFirstObservation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)

	snapshot := []models.CanonicalShift{
		testShift("08:00", "10:00", "loc-a", "cust-a"),
		testShift("13:00", "15:00", "loc-b", "cust-b"),
	}

	events, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, models.EventShiftAdded, event.Kind)
		assert.Equal(t, int64(42), event.UserID)
		assert.Equal(t, "session-1", event.SourceSessionID)
		assert.NotEmpty(t, event.EventID)
		assert.Nil(t, event.OldValue)
		require.NotNil(t, event.NewValue)
	}

	stored, err := s.LoadDaySnapshot(ctx, 42, "2026-08-22")
	require.NoError(t, err)
	assert.Equal(t, snapshot, stored)
}

func TestProcessObservationIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)

	snapshot := []models.CanonicalShift{testShift("08:00", "10:00", "loc-a", "cust-a")}

	_, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// A later session observing the identical schedule stores nothing new
	// but still takes over the snapshot.
	events, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-2", snapshot, detectedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 0, inserted)

	var sourceSessionID string
	err = s.db.QueryRowContext(ctx,
		"SELECT source_session_id FROM "+s.table("day_snapshot")+" WHERE user_id = $1 AND schedule_date = $2",
		int64(42), "2026-08-22",
	).Scan(&sourceSessionID)
	require.NoError(t, err)
	assert.Equal(t, "session-2", sourceSessionID)
}

func TestProcessObservationEmitsChangeEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)

	_, _, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1",
		[]models.CanonicalShift{testShift("08:00", "10:00", "loc-a", "cust-a")}, detectedAt)
	require.NoError(t, err)

	moved := testShift("09:00", "11:00", "loc-a", "cust-a")
	events, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-2",
		[]models.CanonicalShift{moved}, detectedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftTimeChanged, events[0].Kind)
	require.NotNil(t, events[0].OldValue)
	assert.Equal(t, "08:00", events[0].OldValue.Start)
	require.NotNil(t, events[0].NewValue)
	assert.Equal(t, "09:00", events[0].NewValue.Start)

	stored, err := s.LoadDaySnapshot(ctx, 42, "2026-08-22")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "09:00", stored[0].Start)
}

func TestProcessObservationReplayedTransitionIsDeduplicated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)
	snapshot := []models.CanonicalShift{testShift("08:00", "10:00", "loc-a", "cust-a")}

	_, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	_, inserted, err = s.ProcessObservation(ctx, 42, "2026-08-22", "session-2", nil, detectedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, inserted) // shift_removed

	// The same empty-to-snapshot transition replayed hits the unique
	// constraint: nothing is re-inserted, and the replaying session
	// reports no events, so nothing downstream gets notified again.
	events, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-3", snapshot, detectedAt.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 0, inserted)
}

func TestProcessObservationRetryReturnsStoredEventIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)
	snapshot := []models.CanonicalShift{testShift("08:00", "10:00", "loc-a", "cust-a")}

	first, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1", snapshot, detectedAt)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, inserted)

	// A retried run of the same session finds an empty diff but gets the
	// stored events back with their original ids, not freshly minted ones.
	retry, inserted, err := s.ProcessObservation(ctx, 42, "2026-08-22", "session-1", snapshot, detectedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	require.Len(t, retry, 1)
	assert.Equal(t, first[0].EventID, retry[0].EventID)
	assert.Equal(t, models.EventShiftAdded, retry[0].Kind)
	require.NotNil(t, retry[0].NewValue)
	assert.Equal(t, "08:00", retry[0].NewValue.Start)
	assert.Equal(t, "2026-08-22", retry[0].ScheduleDate)
	assert.Equal(t, "session-1", retry[0].SourceSessionID)
}

func TestProcessObservationInvalidDateIsDiffError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, _, err := s.ProcessObservation(ctx, 42, "not-a-date", "session-1", nil, time.Now().UTC())
	require.Error(t, err)

	var diffErr *DiffError
	assert.ErrorAs(t, err, &diffErr)
}

func TestProcessObservationIsolatesUsersAndDates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	detectedAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)
	snapshot := []models.CanonicalShift{testShift("08:00", "10:00", "loc-a", "cust-a")}

	_, inserted, err := s.ProcessObservation(ctx, 1, "2026-08-22", "session-1", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// Same schedule for another user and another date still inserts.
	_, inserted, err = s.ProcessObservation(ctx, 2, "2026-08-22", "session-2", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	_, inserted, err = s.ProcessObservation(ctx, 1, "2026-08-23", "session-3", snapshot, detectedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	stored, err := s.LoadDaySnapshot(ctx, 1, "2026-08-22")
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	empty, err := s.LoadDaySnapshot(ctx, 3, "2026-08-22")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPersistNotificationsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	createdAt := time.Date(2026, 8, 22, 9, 30, 0, 0, time.UTC)

	notifications := []models.Notification{
		{
			NotificationID:  "aaaa0000",
			UserID:          42,
			ScheduleDate:    "2026-08-22",
			SourceSessionID: "session-1",
			Type:            models.NotificationTypeEvent,
			Message:         "New shift added tomorrow 08:00–10:00 in Molndal",
			EventIDs:        []string{"event-1"},
		},
		{
			NotificationID:  "bbbb1111",
			UserID:          42,
			ScheduleDate:    "2026-08-22",
			SourceSessionID: "session-1",
			Type:            models.NotificationTypeSummary,
			Message:         "3 shifts updated for tomorrow",
			EventIDs:        []string{"event-2", "event-3", "event-4"},
		},
	}

	inserted, err := s.PersistNotifications(ctx, notifications, createdAt)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = s.PersistNotifications(ctx, notifications, createdAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	seen, err := s.AlreadyNotifiedEventIDs(ctx, 42, "2026-08-22")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"event-1": {}, "event-2": {}, "event-3": {}, "event-4": {},
	}, seen)

	// Other users and dates are unaffected.
	seen, err = s.AlreadyNotifiedEventIDs(ctx, 7, "2026-08-22")
	require.NoError(t, err)
	assert.Empty(t, seen)
}
