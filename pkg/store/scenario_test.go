package store

// End-to-end scenarios over the full persistence path: observation →
// events → notifications, with literal shifts and message texts.

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/aggregate"
	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
	"github.com/skiftkoll/skiftkoll/pkg/notify"
)

const (
	scenarioUser = int64(7)
	scenarioDate = "2026-08-22"
)

// scenarioToday anchors day phrases so scheduleDate renders "tomorrow".
var scenarioToday = time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

func marieShift(start, end string) models.CanonicalShift {
	shift := models.CanonicalShift{
		Start: start, End: end,
		CustomerName: "Marie Sjöberg",
		Street:       "Valebergsvägen", StreetNumber: "316",
		City:      "Billdal",
		ShiftType: models.ShiftTypeWork,
	}
	shift.LocationFingerprint = identity.LocationFingerprint(shift.Street, shift.StreetNumber, shift.PostalArea, shift.City)
	shift.CustomerFingerprint = identity.CustomerFingerprint(shift.CustomerName)
	return shift
}

func observeAndNotify(t *testing.T, s *Store, sessionID string, snapshot []models.CanonicalShift) ([]models.StoredEvent, int, []models.Notification) {
	t.Helper()
	ctx := context.Background()

	events, inserted, err := s.ProcessObservation(ctx, scenarioUser, scenarioDate, sessionID, snapshot, time.Now().UTC())
	require.NoError(t, err)

	already, err := s.AlreadyNotifiedEventIDs(ctx, scenarioUser, scenarioDate)
	require.NoError(t, err)

	builder, err := notify.NewBuilder(notify.DefaultSummaryThreshold, notify.WithToday(scenarioToday))
	require.NoError(t, err)
	notifications := builder.Build(events, already)

	stored, err := s.PersistNotifications(ctx, notifications, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, len(notifications), stored)

	return events, inserted, notifications
}

func TestScenarioFirstObservation(t *testing.T) {
	s := newTestStore(t)

	events, inserted, notifications := observeAndNotify(t, s, "session-1",
		[]models.CanonicalShift{marieShift("10:00", "14:00")})

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftAdded, events[0].Kind)
	assert.Equal(t, 1, inserted)

	require.Len(t, notifications, 1)
	assert.Equal(t, "New shift added tomorrow 10:00–14:00 in Billdal", notifications[0].Message)
}

func TestScenarioIdempotentReobservation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	snapshot := []models.CanonicalShift{marieShift("10:00", "14:00")}

	observeAndNotify(t, s, "session-1", snapshot)
	events, inserted, notifications := observeAndNotify(t, s, "session-2", snapshot)

	assert.Empty(t, events)
	assert.Zero(t, inserted)
	assert.Empty(t, notifications)

	var sourceSessionID string
	err := s.db.QueryRowContext(ctx,
		"SELECT source_session_id FROM "+s.table("day_snapshot")+" WHERE user_id = $1 AND schedule_date = $2",
		scenarioUser, scenarioDate).Scan(&sourceSessionID)
	require.NoError(t, err)
	assert.Equal(t, "session-2", sourceSessionID)
}

func TestScenarioTimeChange(t *testing.T) {
	s := newTestStore(t)

	observeAndNotify(t, s, "session-1", []models.CanonicalShift{marieShift("10:00", "14:00")})
	events, _, notifications := observeAndNotify(t, s, "session-2",
		[]models.CanonicalShift{marieShift("11:00", "15:00")})

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftTimeChanged, events[0].Kind)

	require.Len(t, notifications, 1)
	assert.Equal(t, "Tomorrow Billdal shift moved 10:00–14:00 → 11:00–15:00", notifications[0].Message)
}

func TestScenarioSummaryThreshold(t *testing.T) {
	s := newTestStore(t)

	first := marieShift("08:00", "10:00")
	second := testShift("11:00", "12:00", "loc-b", "cust-b")
	third := testShift("14:00", "16:00", "loc-c", "cust-c")

	events, _, notifications := observeAndNotify(t, s, "session-1",
		[]models.CanonicalShift{first, second, third})

	require.Len(t, events, 3)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeSummary, notifications[0].Type)
	assert.Equal(t, "3 shifts updated for tomorrow", notifications[0].Message)
	assert.Len(t, notifications[0].EventIDs, 3)
}

func TestScenarioReorderOnlyIsSilent(t *testing.T) {
	s := newTestStore(t)

	a := testShift("08:00", "10:00", "loc-a", "cust-a")
	b := testShift("12:00", "13:00", "loc-b", "cust-b")
	c := testShift("15:00", "17:00", "loc-c", "cust-c")

	observeAndNotify(t, s, "session-1", []models.CanonicalShift{a, b, c})
	events, inserted, notifications := observeAndNotify(t, s, "session-2",
		[]models.CanonicalShift{c, a, b})

	assert.Empty(t, events)
	assert.Zero(t, inserted)
	assert.Empty(t, notifications)
}

func TestScenarioFlapBackReplayIsSilent(t *testing.T) {
	s := newTestStore(t)
	snapshot := []models.CanonicalShift{marieShift("10:00", "14:00")}

	observeAndNotify(t, s, "session-1", snapshot)
	observeAndNotify(t, s, "session-2", nil)

	// The schedule flaps back to a previously seen state. The replayed
	// transition hits the dedupe key, so the user is not notified twice
	// for the same change.
	events, inserted, notifications := observeAndNotify(t, s, "session-3", snapshot)

	assert.Empty(t, events)
	assert.Zero(t, inserted)
	assert.Empty(t, notifications)
}

func TestScenarioRetryAfterNotificationFailureRecoversNotification(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	snapshot := []models.CanonicalShift{marieShift("10:00", "14:00")}

	// First run persisted events and snapshot but died before the
	// notification insert.
	first, inserted, err := s.ProcessObservation(ctx, scenarioUser, scenarioDate, "session-1", snapshot, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, inserted)

	// The retried run sees an empty diff but reloads the stored events,
	// so the lost notification is rebuilt with the same event id.
	events, inserted, notifications := observeAndNotify(t, s, "session-1", snapshot)
	assert.Zero(t, inserted)
	require.Len(t, events, 1)
	assert.Equal(t, first[0].EventID, events[0].EventID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New shift added tomorrow 10:00–14:00 in Billdal", notifications[0].Message)
	assert.Equal(t, []string{first[0].EventID}, notifications[0].EventIDs)

	// A further retry still returns the event, but the stored
	// notification now marks it as already handled.
	events, _, notifications = observeAndNotify(t, s, "session-1", snapshot)
	require.Len(t, events, 1)
	assert.Empty(t, notifications)
}

func TestScenarioAggregationAcrossTwoScreenshots(t *testing.T) {
	s := newTestStore(t)

	locA := testShift("08:00", "10:00", "loc-a", "cust-a")
	locAJittered := testShift("08:02", "10:01", "loc-a", "cust-a")
	locB := testShift("11:00", "12:00", "loc-b", "cust-b")
	locC := testShift("13:00", "14:00", "loc-c", "cust-c")

	day, err := aggregate.Session([][]models.CanonicalShift{
		{locA, locB},
		{locAJittered, locC},
	}, scenarioDate, aggregate.DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 3)
	assert.Equal(t, 2, day.Shifts[0].SourceCount)
	assert.Equal(t, "08:00", day.Shifts[0].Shift.Start)
	assert.Equal(t, "10:01", day.Shifts[0].Shift.End)
	assert.Equal(t, 1, day.Shifts[1].SourceCount)
	assert.Equal(t, 1, day.Shifts[2].SourceCount)

	// The aggregated snapshot persists and notifies as three additions.
	events, inserted, _ := observeAndNotify(t, s, "session-1", day.Snapshot())
	assert.Len(t, events, 3)
	assert.Equal(t, 3, inserted)
}
