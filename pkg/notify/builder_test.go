package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func addedEvent(eventID, sessionID string) models.StoredEvent {
	return models.StoredEvent{
		EventID:             eventID,
		UserID:              8225717176,
		ScheduleDate:        "2026-08-22",
		Kind:                models.EventShiftAdded,
		LocationFingerprint: "loc-1",
		CustomerFingerprint: "cust-1",
		NewValue: &models.CanonicalShift{
			Start:        "10:00",
			End:          "14:00",
			City:         "Billdal",
			ShiftType:    models.ShiftTypeWork,
			CustomerName: "Marie Sjoberg",
		},
		SourceSessionID: sessionID,
	}
}

func newTestBuilder(t *testing.T, threshold int, opts ...Option) *Builder {
	t.Helper()
	builder, err := NewBuilder(threshold, opts...)
	require.NoError(t, err)
	return builder
}

func TestBuildSingleEventMessage(t *testing.T) {
	builder := newTestBuilder(t, DefaultSummaryThreshold, WithToday(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)))

	notifications := builder.Build([]models.StoredEvent{addedEvent("e1", "s1")}, nil)

	require.Len(t, notifications, 1)
	assert.Equal(t, "New shift added tomorrow 10:00–14:00 in Billdal", notifications[0].Message)
	assert.Equal(t, models.NotificationTypeEvent, notifications[0].Type)
	assert.Equal(t, []string{"e1"}, notifications[0].EventIDs)
	assert.Equal(t, int64(8225717176), notifications[0].UserID)
}

func TestBuildSummaryAtThreshold(t *testing.T) {
	timeChanged := addedEvent("e2", "s1")
	timeChanged.Kind = models.EventShiftTimeChanged
	timeChanged.OldValue = &models.CanonicalShift{Start: "10:00", End: "14:00", City: "Billdal"}

	events := []models.StoredEvent{
		addedEvent("e1", "s1"),
		timeChanged,
		addedEvent("e3", "s1"),
	}

	builder := newTestBuilder(t, 3, WithToday(time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)))
	notifications := builder.Build(events, nil)

	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeSummary, notifications[0].Type)
	assert.Equal(t, "3 shifts updated for tomorrow", notifications[0].Message)
	assert.Len(t, notifications[0].EventIDs, 3)
}

func TestBuildSkipsAlreadyNotified(t *testing.T) {
	builder := newTestBuilder(t, DefaultSummaryThreshold)
	seen := make(map[string]struct{})

	first := builder.Build([]models.StoredEvent{addedEvent("e1", "s1")}, seen)
	second := builder.Build([]models.StoredEvent{addedEvent("e1", "s1")}, seen)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
	assert.Contains(t, seen, "e1")
}

func TestBuildSemanticKeyForMissingEventID(t *testing.T) {
	builder := newTestBuilder(t, DefaultSummaryThreshold)
	seen := make(map[string]struct{})

	event := addedEvent("", "s1")
	first := builder.Build([]models.StoredEvent{event}, seen)
	second := builder.Build([]models.StoredEvent{event}, seen)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
}

func TestBuildDeterministicNotificationID(t *testing.T) {
	builder := newTestBuilder(t, DefaultSummaryThreshold)

	first := builder.Build([]models.StoredEvent{addedEvent("e1", "s1")}, nil)
	second := builder.Build([]models.StoredEvent{addedEvent("e1", "s1")}, nil)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].NotificationID, second[0].NotificationID)
	assert.Len(t, first[0].NotificationID, 64)
}

func TestBuildEventTemplates(t *testing.T) {
	oldShift := &models.CanonicalShift{Start: "08:00", End: "10:00", City: "Molndal", CustomerName: "Anna Ek"}

	tests := []struct {
		name  string
		event models.StoredEvent
		want  string
	}{
		{
			name: "removed",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind: models.EventShiftRemoved, OldValue: oldShift, SourceSessionID: "s1",
			},
			want: "Shift removed on 2026-08-22 08:00–10:00 in Molndal",
		},
		{
			name: "start moved",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftTimeChanged,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{Start: "09:00", End: "10:00", City: "Molndal"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 Molndal shift moved 08:00 → 09:00",
		},
		{
			name: "end moved",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftTimeChanged,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{Start: "08:00", End: "11:00", City: "Molndal"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 Molndal shift moved ends 10:00 → 11:00",
		},
		{
			name: "both moved",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftTimeChanged,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{Start: "09:00", End: "11:00", City: "Molndal"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 Molndal shift moved 08:00–10:00 → 09:00–11:00",
		},
		{
			name: "relocated",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftRelocated,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{Start: "08:00", End: "10:00", City: "Billdal"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 08:00 shift moved to Billdal",
		},
		{
			name: "reclassified with raw label",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftReclassified,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{ShiftType: models.ShiftTypeTraining, RawTypeLabel: "Utbildning"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 job updated to Utbildning",
		},
		{
			name: "reclassified without raw label",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftReclassified,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{ShiftType: models.ShiftTypeAdmin},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 job updated to Administrative task",
		},
		{
			name: "retitled",
			event: models.StoredEvent{
				EventID: "e1", UserID: 1, ScheduleDate: "2026-08-22",
				Kind:     models.EventShiftRetitled,
				OldValue: oldShift,
				NewValue: &models.CanonicalShift{CustomerName: "Anna Eklund"},
				SourceSessionID: "s1",
			},
			want: "On 2026-08-22 shift updated for Anna Eklund",
		},
	}

	builder := newTestBuilder(t, DefaultSummaryThreshold)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			notifications := builder.Build([]models.StoredEvent{tc.event}, nil)
			require.Len(t, notifications, 1)
			assert.Equal(t, tc.want, notifications[0].Message)
		})
	}
}

func TestBuildDayPhrases(t *testing.T) {
	builder := newTestBuilder(t, DefaultSummaryThreshold, WithToday(time.Date(2026, 8, 22, 13, 0, 0, 0, time.UTC)))

	assert.Equal(t, "today", builder.dayLabel("2026-08-22"))
	assert.Equal(t, "tomorrow", builder.dayLabel("2026-08-23"))
	assert.Equal(t, "on 2026-08-25", builder.dayLabel("2026-08-25"))

	noAnchor := newTestBuilder(t, DefaultSummaryThreshold)
	assert.Equal(t, "on 2026-08-22", noAnchor.dayLabel("2026-08-22"))
}

func TestBuildGroupsBySession(t *testing.T) {
	builder := newTestBuilder(t, 2)

	events := []models.StoredEvent{
		addedEvent("e1", "s1"),
		addedEvent("e2", "s1"),
		addedEvent("e3", "s2"),
	}
	notifications := builder.Build(events, nil)

	require.Len(t, notifications, 2)
	assert.Equal(t, models.NotificationTypeSummary, notifications[0].Type)
	assert.Equal(t, "s1", notifications[0].SourceSessionID)
	assert.Equal(t, models.NotificationTypeEvent, notifications[1].Type)
	assert.Equal(t, "s2", notifications[1].SourceSessionID)
}

func TestNewBuilderRejectsBadThreshold(t *testing.T) {
	_, err := NewBuilder(0)
	assert.Error(t, err)
}
