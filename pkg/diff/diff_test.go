package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

const testDate = "2025-03-14"

func shiftAt(start, end, name, locationFP, customerFP string) models.CanonicalShift {
	return models.CanonicalShift{
		Start:               start,
		End:                 end,
		CustomerName:        name,
		CustomerFingerprint: customerFP,
		Street:              "Storgatan",
		StreetNumber:        "12",
		City:                "Goteborg",
		LocationFingerprint: locationFP,
		ShiftType:           models.ShiftTypeWork,
		RawTypeLabel:        "Stadservice",
	}
}

func TestSchedulesNoChanges(t *testing.T) {
	a := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	b := shiftAt("11:00", "13:00", "Bo Berg", "loc-b", "cust-b")

	events, err := Schedules(
		[]models.CanonicalShift{a, b},
		[]models.CanonicalShift{b, a},
		testDate,
	)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSchedulesTimeChanged(t *testing.T) {
	before := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	after := shiftAt("09:00", "11:00", "Anna Ek", "loc-a", "cust-a")

	events, err := Schedules([]models.CanonicalShift{before}, []models.CanonicalShift{after}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftTimeChanged, events[0].Kind)
	assert.Equal(t, "08:00", events[0].Before.Start)
	assert.Equal(t, "09:00", events[0].After.Start)
	assert.Equal(t, testDate, events[0].ScheduleDate)
}

func TestSchedulesRetitledSameIdentity(t *testing.T) {
	before := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	after := shiftAt("08:00", "10:00", "Anna Eklund", "loc-a", "cust-a")

	events, err := Schedules([]models.CanonicalShift{before}, []models.CanonicalShift{after}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftRetitled, events[0].Kind)
}

func TestSchedulesReclassified(t *testing.T) {
	before := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	after := before
	after.ShiftType = models.ShiftTypeTraining

	events, err := Schedules([]models.CanonicalShift{before}, []models.CanonicalShift{after}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftReclassified, events[0].Kind)
}

func TestSchedulesRelocated(t *testing.T) {
	before := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	after := shiftAt("08:00", "10:00", "Anna Ek", "loc-b", "cust-a")

	events, err := Schedules([]models.CanonicalShift{before}, []models.CanonicalShift{after}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftRelocated, events[0].Kind)
	assert.Equal(t, "loc-a", events[0].Before.LocationFingerprint)
	assert.Equal(t, "loc-b", events[0].After.LocationFingerprint)
}

func TestSchedulesRetitledSameSlot(t *testing.T) {
	// Same location and time but a different customer identity pairs in
	// stage 3 as a retitle rather than a remove/add pair.
	before := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	after := shiftAt("08:00", "10:00", "Berit Falk", "loc-a", "cust-b")

	events, err := Schedules([]models.CanonicalShift{before}, []models.CanonicalShift{after}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftRetitled, events[0].Kind)
	assert.Equal(t, "Anna Ek", events[0].Before.CustomerName)
	assert.Equal(t, "Berit Falk", events[0].After.CustomerName)
}

func TestSchedulesRemovedAndAdded(t *testing.T) {
	removed := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	kept := shiftAt("11:00", "13:00", "Bo Berg", "loc-b", "cust-b")
	added := shiftAt("15:00", "17:00", "Cilla Dahl", "loc-c", "cust-c")

	events, err := Schedules(
		[]models.CanonicalShift{removed, kept},
		[]models.CanonicalShift{kept, added},
		testDate,
	)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, models.EventShiftRemoved, events[0].Kind)
	require.NotNil(t, events[0].Before)
	assert.Nil(t, events[0].After)
	assert.Equal(t, "Anna Ek", events[0].Before.CustomerName)

	assert.Equal(t, models.EventShiftAdded, events[1].Kind)
	require.NotNil(t, events[1].After)
	assert.Nil(t, events[1].Before)
	assert.Equal(t, "Cilla Dahl", events[1].After.CustomerName)
}

func TestSchedulesDuplicateIdentityPairsByTimeDistance(t *testing.T) {
	// Two same-identity visits on one day: each pairs with the instance
	// closest in time, so only the moved one reports a change.
	oldMorning := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")
	oldAfternoon := shiftAt("14:00", "16:00", "Anna Ek", "loc-a", "cust-a")
	newAfternoon := shiftAt("14:30", "16:30", "Anna Ek", "loc-a", "cust-a")
	newMorning := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")

	events, err := Schedules(
		[]models.CanonicalShift{oldMorning, oldAfternoon},
		[]models.CanonicalShift{newAfternoon, newMorning},
		testDate,
	)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventShiftTimeChanged, events[0].Kind)
	assert.Equal(t, "14:00", events[0].Before.Start)
	assert.Equal(t, "14:30", events[0].After.Start)
}

func TestSchedulesFromEmptyAddsAllSorted(t *testing.T) {
	a := shiftAt("11:00", "13:00", "Bo Berg", "loc-b", "cust-b")
	b := shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a")

	events, err := Schedules(nil, []models.CanonicalShift{a, b}, testDate)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, models.EventShiftAdded, events[0].Kind)
	assert.Equal(t, "Anna Ek", events[0].After.CustomerName)
	assert.Equal(t, "Bo Berg", events[1].After.CustomerName)
}

func TestSchedulesOrderIndependence(t *testing.T) {
	oldShifts := []models.CanonicalShift{
		shiftAt("08:00", "10:00", "Anna Ek", "loc-a", "cust-a"),
		shiftAt("11:00", "13:00", "Bo Berg", "loc-b", "cust-b"),
		shiftAt("14:00", "16:00", "Cilla Dahl", "loc-c", "cust-c"),
	}
	newShifts := []models.CanonicalShift{
		shiftAt("08:30", "10:00", "Anna Ek", "loc-a", "cust-a"),
		shiftAt("11:00", "13:00", "Bo Berg", "loc-b", "cust-b"),
	}

	forward, err := Schedules(oldShifts, newShifts, testDate)
	require.NoError(t, err)

	reversedOld := []models.CanonicalShift{oldShifts[2], oldShifts[0], oldShifts[1]}
	reversedNew := []models.CanonicalShift{newShifts[1], newShifts[0]}
	shuffled, err := Schedules(reversedOld, reversedNew, testDate)
	require.NoError(t, err)

	assert.Equal(t, forward, shuffled)
}

func TestSchedulesInvalidDate(t *testing.T) {
	_, err := Schedules(nil, nil, "14/03/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule date")
}
