package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func box(text string, x, y, w, h float64) models.Box {
	return models.Box{Text: text, X: x, Y: y, W: w, H: h}
}

func scheduleCardBoxes() []models.Box {
	return []models.Box{
		box("07:30-11:00", 40, 200, 160, 28),
		box("Marie Sjöberg", 40, 240, 220, 28),
		box("Valebergsvägen 316, 427 40", 40, 275, 300, 28),
		box("Billdal", 40, 310, 120, 28),
	}
}

func TestParse_SingleCard(t *testing.T) {
	entries := Parse(scheduleCardBoxes())

	require.Len(t, entries, 1)
	assert.Equal(t, models.Entry{
		Start:    "07:30",
		End:      "11:00",
		Title:    "Marie Sjöberg",
		Location: "Billdal",
		Address:  "Valebergsvägen 316, 427 40",
	}, entries[0])
}

func TestParse_DeterministicUnderPermutationAndJitter(t *testing.T) {
	original := scheduleCardBoxes()
	want := Parse(original)

	// Reverse order and nudge every coordinate by one pixel.
	jittered := make([]models.Box, 0, len(original))
	for i := len(original) - 1; i >= 0; i-- {
		b := original[i]
		b.X++
		b.Y--
		jittered = append(jittered, b)
	}

	assert.Equal(t, want, Parse(jittered))
}

func TestParse_DropsCardsWithoutTimeLine(t *testing.T) {
	boxes := []models.Box{
		box("Mina pass", 40, 30, 180, 32),
		box("Augusti 2026", 40, 70, 180, 28),
	}
	assert.Empty(t, Parse(boxes))
}

func TestParse_StripsKnownNoiseLines(t *testing.T) {
	boxes := []models.Box{
		box("08:00-12:00", 40, 200, 160, 28),
		box("On time", 40, 240, 100, 28),
		box("4h", 40, 275, 60, 28),
		box("Kund Svensson", 40, 310, 220, 28),
		box("Collaborators +2", 40, 345, 200, 28),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kund Svensson", entries[0].Title)
	assert.Empty(t, entries[0].Address)
	assert.Empty(t, entries[0].Location)
}

func TestParse_SingleTrailingAddressLikeLine(t *testing.T) {
	boxes := []models.Box{
		box("08:00-12:00", 40, 200, 160, 28),
		box("Kund Svensson", 40, 240, 220, 28),
		box("Storgatan 5", 40, 275, 180, 28),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 1)
	assert.Equal(t, "Storgatan 5", entries[0].Address)
	assert.Empty(t, entries[0].Location)
}

func TestParse_SingleTrailingPlainLineIsLocation(t *testing.T) {
	boxes := []models.Box{
		box("08:00-12:00", 40, 200, 160, 28),
		box("Kund Svensson", 40, 240, 220, 28),
		box("Billdal", 40, 275, 120, 28),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Address)
	assert.Equal(t, "Billdal", entries[0].Location)
}

func TestParse_StackedSingleTimesMergeIntoRange(t *testing.T) {
	boxes := []models.Box{
		box("07:30", 40, 200, 90, 24),
		box("Cleaning service", 260, 230, 220, 24),
		box("11:00", 40, 260, 90, 24),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 1)
	assert.Equal(t, "07:30", entries[0].Start)
	assert.Equal(t, "11:00", entries[0].End)
	assert.Equal(t, "Cleaning service", entries[0].Title)
}

func TestParse_StackedMergeBlockedByLeftColumnText(t *testing.T) {
	boxes := []models.Box{
		box("07:30", 40, 200, 90, 24),
		box("Kund Ett", 40, 230, 180, 24),
		box("11:00", 40, 260, 90, 24),
		box("Kund Två", 40, 290, 180, 24),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 2)
	assert.Equal(t, "07:30", entries[0].Start)
	assert.Equal(t, "07:30", entries[0].End)
	assert.Equal(t, "11:00", entries[1].Start)
}

func TestParse_TwoColumns(t *testing.T) {
	boxes := []models.Box{
		// Left column.
		box("08:00-10:00", 40, 200, 150, 26),
		box("Kund Vänster", 40, 235, 200, 26),
		// Right column, far enough for a split.
		box("12:00-14:00", 700, 200, 150, 26),
		box("Kund Höger", 700, 235, 200, 26),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 2)
	assert.Equal(t, "Kund Vänster", entries[0].Title)
	assert.Equal(t, "Kund Höger", entries[1].Title)
}

func TestParse_InvalidClockValuesRejected(t *testing.T) {
	boxes := []models.Box{
		box("25:00-26:00", 40, 200, 150, 26),
		box("Kund Svensson", 40, 235, 200, 26),
	}
	assert.Empty(t, Parse(boxes))
}

func TestParse_FarRightMetadataPruned(t *testing.T) {
	boxes := []models.Box{
		box("08:00-12:00", 40, 200, 160, 28),
		box("Kund Svensson", 40, 240, 200, 28),
		box("synced", 900, 240, 80, 28),
		box("Storgatan 5", 40, 275, 180, 28),
	}

	entries := Parse(boxes)
	require.Len(t, entries, 1)
	assert.Equal(t, "Kund Svensson", entries[0].Title)
	assert.Equal(t, "Storgatan 5", entries[0].Address)
}

func TestLooksLikeAddress(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Storgatan 5", true},
		{"Valebergsvägen", true},
		{"Kyrkbacken", true},
		{"Billdal", false},
		{"Kund Svensson", false},
		{"Hamngatan, uppgång B", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikeAddress(tt.text), "text %q", tt.text)
	}
}
