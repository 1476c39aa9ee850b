package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
	"github.com/skiftkoll/skiftkoll/pkg/normalize"
)

func makeShift(start, end, name, street, number, postalCode, postalArea, city string) models.CanonicalShift {
	return models.CanonicalShift{
		Start:               start,
		End:                 end,
		CustomerName:        name,
		CustomerFingerprint: normalize.CustomerKey(name, "Stadservice", models.ShiftTypeWork),
		Street:              street,
		StreetNumber:        number,
		PostalCode:          postalCode,
		PostalArea:          postalArea,
		City:                city,
		LocationFingerprint: identity.LocationFingerprint(street, number, postalArea, city),
		ShiftType:           models.ShiftTypeWork,
		RawTypeLabel:        "Stadservice",
	}
}

func TestSessionMergesJitteredObservations(t *testing.T) {
	shiftA := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	shiftAJittered := makeShift("08:01", "10:01", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	shiftB := makeShift("11:00", "13:00", "Bo Berg", "Kungsgatan", "3", "411 19", "Goteborg", "Goteborg")
	shiftC := makeShift("14:00", "16:00", "Cilla Dahl", "Linnegatan", "5", "413 04", "Goteborg", "Goteborg")

	day, err := Session([][]models.CanonicalShift{
		{shiftA, shiftB},
		{shiftAJittered, shiftC},
	}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 3)
	assert.Equal(t, "2025-03-14", day.ScheduleDate)

	merged := day.Shifts[0]
	assert.Equal(t, "08:00", merged.Shift.Start)
	assert.Equal(t, "10:01", merged.Shift.End)
	assert.Equal(t, "Anna Ek", merged.Shift.CustomerName)
	assert.Equal(t, 2, merged.SourceCount)

	assert.Equal(t, "Bo Berg", day.Shifts[1].Shift.CustomerName)
	assert.Equal(t, 1, day.Shifts[1].SourceCount)
	assert.Equal(t, "Cilla Dahl", day.Shifts[2].Shift.CustomerName)
	assert.Equal(t, 1, day.Shifts[2].SourceCount)
}

func TestSessionPermutationInvariant(t *testing.T) {
	imageOne := []models.CanonicalShift{
		makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg"),
		makeShift("11:00", "13:00", "Bo Berg", "Kungsgatan", "3", "411 19", "Goteborg", "Goteborg"),
	}
	imageTwo := []models.CanonicalShift{
		makeShift("08:02", "10:01", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg"),
		makeShift("14:00", "16:00", "Cilla Dahl", "Linnegatan", "5", "413 04", "Goteborg", "Goteborg"),
	}

	forward, err := Session([][]models.CanonicalShift{imageOne, imageTwo}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)
	reversed, err := Session([][]models.CanonicalShift{imageTwo, imageOne}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	assert.Equal(t, forward, reversed)
}

func TestSessionIdempotentOnOwnSnapshot(t *testing.T) {
	day, err := Session([][]models.CanonicalShift{
		{
			makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg"),
			makeShift("08:03", "10:02", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg"),
			makeShift("11:00", "13:00", "Bo Berg", "Kungsgatan", "3", "411 19", "Goteborg", "Goteborg"),
		},
	}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	again, err := Session([][]models.CanonicalShift{day.Snapshot()}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)
	assert.Equal(t, day.Snapshot(), again.Snapshot())
}

func TestSessionSameImageTwiceCountsBothSources(t *testing.T) {
	image := []models.CanonicalShift{
		makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg"),
	}
	day, err := Session([][]models.CanonicalShift{image, image}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	assert.Equal(t, 2, day.Shifts[0].SourceCount)
	assert.Equal(t, "08:00", day.Shifts[0].Shift.Start)
	assert.Equal(t, "10:00", day.Shifts[0].Shift.End)
}

func TestSessionContainmentMergesSameCustomer(t *testing.T) {
	outer := makeShift("08:00", "12:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	inner := makeShift("09:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")

	day, err := Session([][]models.CanonicalShift{{outer}, {inner}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	assert.Equal(t, "08:00", day.Shifts[0].Shift.Start)
	assert.Equal(t, "12:00", day.Shifts[0].Shift.End)
	assert.Equal(t, 2, day.Shifts[0].SourceCount)
}

func TestSessionContainmentNeedsMatchingCustomer(t *testing.T) {
	outer := makeShift("08:00", "12:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	inner := makeShift("09:00", "10:00", "Bo Berg", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")

	day, err := Session([][]models.CanonicalShift{{outer}, {inner}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)
	assert.Len(t, day.Shifts, 2)
}

func TestSessionMergePrefersRicherAddress(t *testing.T) {
	full := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	partial := makeShift("08:01", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	partial.PostalCode = ""
	partial.PostalArea = ""
	partial.City = ""
	partial.LocationFingerprint = full.LocationFingerprint

	day, err := Session([][]models.CanonicalShift{{partial}, {full}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	merged := day.Shifts[0].Shift
	assert.Equal(t, "411 01", merged.PostalCode)
	assert.Equal(t, "Goteborg", merged.City)
	assert.Equal(t, full.LocationFingerprint, merged.LocationFingerprint)
}

func TestSessionDedupesAcrossLocationVariants(t *testing.T) {
	full := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	cropped := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "", "", "")

	require.NotEqual(t, full.LocationFingerprint, cropped.LocationFingerprint)

	day, err := Session([][]models.CanonicalShift{{full}, {cropped}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	assert.Equal(t, 2, day.Shifts[0].SourceCount)
	assert.Equal(t, "Goteborg", day.Shifts[0].Shift.City)
	assert.Equal(t, full.LocationFingerprint, day.Shifts[0].Shift.LocationFingerprint)
}

func TestSessionOvernightShiftMergesAcrossMidnight(t *testing.T) {
	night := makeShift("22:00", "02:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	jittered := makeShift("22:01", "02:01", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")

	day, err := Session([][]models.CanonicalShift{{night}, {jittered}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	assert.Equal(t, "22:00", day.Shifts[0].Shift.Start)
	assert.Equal(t, "02:01", day.Shifts[0].Shift.End)
}

func TestSessionShiftTypeAndLabelUpgrade(t *testing.T) {
	vague := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")
	vague.ShiftType = models.ShiftTypeUnknown
	vague.RawTypeLabel = ""
	vague.CustomerFingerprint = normalize.CustomerKey(vague.CustomerName, vague.RawTypeLabel, vague.ShiftType)

	specific := makeShift("08:00", "10:00", "Anna Ek", "Storgatan", "12", "411 01", "Goteborg", "Goteborg")

	day, err := Session([][]models.CanonicalShift{{vague}, {specific}}, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)

	require.Len(t, day.Shifts, 1)
	assert.Equal(t, models.ShiftTypeWork, day.Shifts[0].Shift.ShiftType)
	assert.Equal(t, "Stadservice", day.Shifts[0].Shift.RawTypeLabel)
}

func TestSessionInputValidation(t *testing.T) {
	_, err := Session(nil, "14-03-2025", DefaultTimeTolerance)
	assert.Error(t, err)

	_, err = Session(nil, "2025-03-14", -1)
	assert.Error(t, err)

	_, err = Session([][]models.CanonicalShift{
		{{Start: "8", End: "10:00"}},
	}, "2025-03-14", DefaultTimeTolerance)
	assert.Error(t, err)
}

func TestSessionEmptyInput(t *testing.T) {
	day, err := Session(nil, "2025-03-14", DefaultTimeTolerance)
	require.NoError(t, err)
	assert.Empty(t, day.Shifts)
	assert.Empty(t, day.Snapshot())
}
