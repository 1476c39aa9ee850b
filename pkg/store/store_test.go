package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func TestSnapshotJSON(t *testing.T) {
	assert.Equal(t, "[]", snapshotJSON(nil))

	shift := models.CanonicalShift{
		Start: "08:00", End: "10:00",
		CustomerName: "Anna Ek", CustomerFingerprint: "cust-a",
		Street: "Storgatan", StreetNumber: "12", City: "Goteborg",
		LocationFingerprint: "loc-a", ShiftType: models.ShiftTypeWork,
		RawTypeLabel: "Stadservice",
	}
	payload := snapshotJSON([]models.CanonicalShift{shift, shift})
	assert.Equal(t, byte('['), payload[0])
	assert.Equal(t, byte(']'), payload[len(payload)-1])

	single := string(shift.CanonicalJSON())
	assert.Equal(t, "["+single+","+single+"]", payload)
}

func TestDayLockKeyStableAndDistinct(t *testing.T) {
	assert.Equal(t, dayLockKey(1, "2025-03-14"), dayLockKey(1, "2025-03-14"))
	assert.NotEqual(t, dayLockKey(1, "2025-03-14"), dayLockKey(2, "2025-03-14"))
	assert.NotEqual(t, dayLockKey(1, "2025-03-14"), dayLockKey(1, "2025-03-15"))
}

func TestBuildEventRows(t *testing.T) {
	before := &models.CanonicalShift{
		Start: "08:00", End: "10:00",
		CustomerFingerprint: "cust-a", LocationFingerprint: "loc-a",
	}
	after := &models.CanonicalShift{
		Start: "09:00", End: "11:00",
		CustomerFingerprint: "cust-a", LocationFingerprint: "loc-b",
	}
	detectedAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	rows, err := buildEventRows(42, "2025-03-14", "session-1", detectedAt, []models.DiffEvent{
		{Kind: models.EventShiftTimeChanged, ScheduleDate: "2025-03-14", Before: before, After: after},
		{Kind: models.EventShiftRemoved, ScheduleDate: "2025-03-14", Before: before},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Identity fingerprints come from the new value when present.
	assert.Equal(t, "loc-b", rows[0].LocationFingerprint)
	assert.Equal(t, "loc-a", rows[1].LocationFingerprint)

	for _, row := range rows {
		assert.NotEmpty(t, row.EventID)
		assert.Equal(t, int64(42), row.UserID)
		assert.Equal(t, "session-1", row.SourceSessionID)
		assert.Equal(t, detectedAt, row.DetectedAt)
	}
	assert.NotEqual(t, rows[0].EventID, rows[1].EventID)
}

func TestBuildEventRowsRejectsEmptyEvent(t *testing.T) {
	_, err := buildEventRows(42, "2025-03-14", "session-1", time.Now(), []models.DiffEvent{
		{Kind: models.EventShiftAdded},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no shift identity")
}
