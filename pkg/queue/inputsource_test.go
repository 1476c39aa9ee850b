package queue

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFixtureSourceLoad(t *testing.T) {
	path := writeFixture(t, `{
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
	}`)

	source := &FixtureSource{PayloadPath: path}
	observation, err := source.Load(context.Background(), nil, []*ent.CaptureImage{
		{ObjectKey: "sessions/s1/a.png", Sequence: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-22", observation.ScheduleDate)
	assert.Equal(t, []string{"a.png"}, observation.ImageNames)
	require.Len(t, observation.ImageShifts, 1)
	require.Len(t, observation.ImageShifts[0], 1)

	shift := observation.ImageShifts[0][0]
	assert.Equal(t, "08:00", shift.Start)
	assert.Equal(t, "Pia Lindkvist", shift.CustomerName)
	assert.Equal(t, models.ShiftTypeWork, shift.ShiftType)
	assert.Equal(t, "Molndal", shift.City)
}

func TestFixtureSourceLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantStage string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.json"), StageOCR},
		{"invalid json", writeFixture(t, "not json"), StageOCR},
		{"bad schedule date", writeFixture(t, `{"schedule_date":"soon","entries":[]}`), StageOCR},
		{"missing entries", writeFixture(t, `{"schedule_date":"2026-08-22"}`), StageOCR},
		{"bad entry time", writeFixture(t, `{"schedule_date":"2026-08-22","entries":[{"start":"25:00","end":"26:00","title":"x","location":"","address":""}]}`), StageNormalize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &FixtureSource{PayloadPath: tt.path}
			_, err := source.Load(context.Background(), nil, nil)
			require.Error(t, err)

			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, tt.wantStage, stageErr.Stage)
		})
	}
}

func TestEnsureSingleScheduleDate(t *testing.T) {
	day := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)

	got, err := ensureSingleScheduleDate([]time.Time{day, day})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-22", got)

	_, err = ensureSingleScheduleDate(nil)
	assert.Error(t, err)

	_, err = ensureSingleScheduleDate([]time.Time{day, day.AddDate(0, 0, 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple schedule dates")
}

func TestExtractImageNames(t *testing.T) {
	names := extractImageNames([]*ent.CaptureImage{
		{ObjectKey: "sessions/s1/a.png", Sequence: 1},
		{ObjectKey: "sessions/s1/b.png", Sequence: 2},
		{ObjectKey: "other/a.png", Sequence: 3}, // duplicate basename
		{ObjectKey: "", Sequence: 4},
	})
	assert.Equal(t, []string{"a.png", "b.png", "sequence-4"}, names)
}

func TestStageErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewStageError(StageDB, "failed persisting events and snapshot", cause)

	assert.Equal(t, "stage db: failed persisting events and snapshot: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStageError(StageLifecycle, "session has no capture images", nil)
	assert.Equal(t, "stage lifecycle: session has no capture images", bare.Error())
}
