package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

func TestEntryWorkShiftWithFullAddress(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:   "8:00",
		End:     "11:30",
		Title:   "Pia Lindkvist Städservice",
		Address: "Göteborgsvägen 12, 431 37 Mölndal",
	})
	require.NoError(t, err)

	assert.Equal(t, "08:00", shift.Start)
	assert.Equal(t, "11:30", shift.End)
	assert.Equal(t, "Pia Lindkvist", shift.CustomerName)
	assert.Equal(t, "Goteborgsvagen", shift.Street)
	assert.Equal(t, "12", shift.StreetNumber)
	assert.Equal(t, "431 37", shift.PostalCode)
	assert.Equal(t, "Molndal", shift.PostalArea)
	assert.Equal(t, "Molndal", shift.City)
	assert.Equal(t, models.ShiftTypeWork, shift.ShiftType)
	assert.Equal(t, "Stadservice", shift.RawTypeLabel)
	assert.NotEmpty(t, shift.CustomerFingerprint)
	assert.NotEmpty(t, shift.LocationFingerprint)
}

func TestEntryFingerprintsSurviveOCRNoise(t *testing.T) {
	clean, err := Entry(models.Entry{
		Start:   "08:00",
		End:     "11:30",
		Title:   "Pia Lindkvist Städservice",
		Address: "Göteborgsvägen 12, 431 37 Mölndal",
	})
	require.NoError(t, err)

	noisy, err := Entry(models.Entry{
		Start:   "08:00",
		End:     "11:30",
		Title:   "Pia L1ndkvist Stadservice",
		Address: "Goteborgsvagen 12, 43137 Molndal",
	})
	require.NoError(t, err)

	assert.Equal(t, clean.CustomerFingerprint, noisy.CustomerFingerprint)
	assert.Equal(t, clean.LocationFingerprint, noisy.LocationFingerprint)
	assert.Equal(t, clean.CustomerName, noisy.CustomerName)
	assert.Equal(t, "431 37", noisy.PostalCode)
}

func TestEntryAddressWithoutPostalCode(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:   "13:00",
		End:     "16:00",
		Title:   "Familjen Berg Hemstädning",
		Address: "Valebergsvägen 316, Billdal",
	})
	require.NoError(t, err)

	assert.Equal(t, "Valebergsvagen", shift.Street)
	assert.Equal(t, "316", shift.StreetNumber)
	assert.Empty(t, shift.PostalCode)
	assert.Empty(t, shift.PostalArea)
	assert.Equal(t, "Billdal", shift.City)
	assert.Equal(t, models.ShiftTypeWork, shift.ShiftType)
}

func TestEntryMultilineAddress(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:   "09:00",
		End:     "12:00",
		Title:   "Anna Ek Städning",
		Address: "Storgatan\n12A",
	})
	require.NoError(t, err)

	assert.Equal(t, "Storgatan", shift.Street)
	assert.Equal(t, "12A", shift.StreetNumber)
}

func TestEntryInvalidTime(t *testing.T) {
	_, err := Entry(models.Entry{Start: "25:00", End: "26:00", Title: "Anna Ek"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = Entry(models.Entry{Start: "08:00", End: "not a time", Title: "Anna Ek"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestEntriesReportsEntryIndex(t *testing.T) {
	_, err := Entries([]models.Entry{
		{Start: "08:00", End: "09:00", Title: "Anna Ek Städning", Address: "Storgatan 1"},
		{Start: "bad", End: "09:00", Title: "Trasig Rad"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestEntryActivityRows(t *testing.T) {
	tests := []struct {
		name          string
		entry         models.Entry
		wantType      string
		wantRawLabel  string
		wantCustomer  string
	}{
		{
			name:         "lunch clears customer",
			entry:        models.Entry{Start: "12:00", End: "12:30", Title: "Lunch"},
			wantType:     models.ShiftTypeBreak,
			wantRawLabel: "Lunch",
			wantCustomer: "",
		},
		{
			name:         "ej disponibel",
			entry:        models.Entry{Start: "07:00", End: "15:00", Title: "Ej disponibel"},
			wantType:     models.ShiftTypeUnavailable,
			wantRawLabel: "Ej Disponibel",
			wantCustomer: "",
		},
		{
			name:         "restid",
			entry:        models.Entry{Start: "10:00", End: "10:20", Title: "Restid"},
			wantType:     models.ShiftTypeTravel,
			wantRawLabel: "Restid",
			wantCustomer: "",
		},
		{
			name:         "training with trailing duration",
			entry:        models.Entry{Start: "09:00", End: "16:00", Title: "Utbildning Handledarhus 7h"},
			wantType:     models.ShiftTypeTraining,
			wantRawLabel: "Utbildning Handledarhus",
			wantCustomer: "",
		},
		{
			name:         "vard av barn",
			entry:        models.Entry{Start: "08:00", End: "17:00", Title: "Vård av barn"},
			wantType:     models.ShiftTypeLeave,
			wantRawLabel: "Vard Av Barn",
			wantCustomer: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shift, err := Entry(tc.entry)
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, shift.ShiftType)
			assert.Equal(t, tc.wantRawLabel, shift.RawTypeLabel)
			assert.Equal(t, tc.wantCustomer, shift.CustomerName)
		})
	}
}

func TestEntryBulletTitleWithFuzzyLabel(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:   "08:00",
		End:     "10:00",
		Title:   "Karin Holm • Stadservlce 2h",
		Address: "Linnégatan 5, 413 04 Göteborg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Karin Holm", shift.CustomerName)
	assert.Equal(t, "Stadservice", shift.RawTypeLabel)
	assert.Equal(t, models.ShiftTypeWork, shift.ShiftType)
	assert.Equal(t, "Linnegatan", shift.Street)
	assert.Equal(t, "413 04", shift.PostalCode)
	assert.Equal(t, "Goteborg", shift.City)
}

func TestEntryCompanyNoiseDroppedFromCustomer(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:   "08:00",
		End:     "12:00",
		Title:   "Svensson AB Städservice",
		Address: "Kungsgatan 3, Göteborg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Svensson", shift.CustomerName)
}

func TestEntryNonWorkWithLocationKeepsCustomer(t *testing.T) {
	shift, err := Entry(models.Entry{
		Start:    "09:00",
		End:      "10:00",
		Title:    "Utbildning",
		Location: "Mölndal",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ShiftTypeTraining, shift.ShiftType)
	assert.Equal(t, "Molndal", shift.City)
}

func TestCustomerKeyFallbackChain(t *testing.T) {
	named := CustomerKey("Pia Lindkvist", "Stadservice", models.ShiftTypeWork)
	labelled := CustomerKey("", "Lunch", models.ShiftTypeBreak)
	typed := CustomerKey("", "", models.ShiftTypeUnknown)

	assert.NotEmpty(t, named)
	assert.NotEmpty(t, labelled)
	assert.NotEmpty(t, typed)
	assert.NotEqual(t, named, labelled)
	assert.NotEqual(t, labelled, typed)
	assert.Equal(t, named, CustomerKey("Pia Lindkvist", "", ""))
}

func TestDecomposeAddressPostalVariantsAgree(t *testing.T) {
	spaced := decomposeAddress("Göteborgsvägen 12, 431 37 Mölndal", "")
	joined := decomposeAddress("Goteborgsvagen 12, 43137 Molndal", "")
	assert.Equal(t, spaced, joined)
}

func TestDecomposeAddressLocationFallback(t *testing.T) {
	parts := decomposeAddress("", "Mölndal")
	assert.Equal(t, AddressParts{City: "Molndal"}, parts)
}

func TestNormalizeTextOCRConfusions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pia L1ndkvist", "Pia Lindkvist"},
		{"G0teborg", "Goteborg"},
		{"Va|frid", "Valfrid"},
		{"Industrigatan 10", "industrigatan 10"},
		{"Mölndal", "Molndal"},
		{"  a   b  ", "a b"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, normalizeText(tc.in), "input %q", tc.in)
	}
}

func TestStripTrailingDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Stadservice 2h", "Stadservice"},
		{"Stadservice 2h 30m", "Stadservice"},
		{"Stadservice 45 min", "Stadservice"},
		{"Stadservice", "Stadservice"},
		{"Storgatan 12", "Storgatan 12"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, stripTrailingDuration(tc.in), "input %q", tc.in)
	}
}
