package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func TestExtractScheduleDate(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		defaultYear int
		want        string
	}{
		{
			name: "swedish weekday with year",
			text: "Måndag 12 augusti 2024",
			want: "2024-08-12",
		},
		{
			name: "english weekday with year",
			text: "Monday 12 August 2024",
			want: "2024-08-12",
		},
		{
			name:        "day month without year uses default",
			text:        "12 aug",
			defaultYear: 2025,
			want:        "2025-08-12",
		},
		{
			name: "abbreviated swedish month",
			text: "3 okt 2026",
			want: "2026-10-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractScheduleDate([]models.Box{box(tt.text, 10, 10, 300, 30)}, tt.defaultYear)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestExtractScheduleDate_SplitAcrossBoxes(t *testing.T) {
	// One date line split into separate OCR tokens still parses via the
	// line-merged candidates.
	boxes := []models.Box{
		box("Tisdag", 10, 10, 90, 30),
		box("5", 110, 10, 20, 30),
		box("mars", 140, 10, 70, 30),
		box("2026", 220, 10, 70, 30),
	}
	got, err := ExtractScheduleDate(boxes, 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", got.Format("2006-01-02"))
}

func TestExtractScheduleDate_MissingYearWithoutDefault(t *testing.T) {
	_, err := ExtractScheduleDate([]models.Box{box("12 augusti", 10, 10, 200, 30)}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCR_DEFAULT_YEAR")
}

func TestExtractScheduleDate_NoDateText(t *testing.T) {
	_, err := ExtractScheduleDate([]models.Box{box("Mina pass", 10, 10, 200, 30)}, 2026)
	assert.ErrorIs(t, err, ErrNoScheduleDate)
}

func TestExtractScheduleDate_RejectsImpossibleDay(t *testing.T) {
	// 31 februari is not a real date; the candidate is skipped.
	got, err := ExtractScheduleDate([]models.Box{
		box("31 februari 2026", 10, 10, 200, 30),
		box("Onsdag 4 februari 2026", 10, 60, 260, 30),
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-04", got.Format("2006-01-02"))
}
