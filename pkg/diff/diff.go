// Package diff computes the ordered change events between two canonical
// versions of a day's schedule. Matching runs in three narrowing stages
// so a shift that moved in one dimension (time, location or title) pairs
// with its counterpart instead of producing a remove/add pair.
package diff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

type shiftRef struct {
	sequence int
	shift    models.CanonicalShift
}

type pairedRefs struct {
	oldRef shiftRef
	newRef shiftRef
}

// Schedules diffs the previous against the current version of one
// schedule date and returns the events in deterministic order: stage 1
// identity matches, stage 2 relocations, stage 3 retitles, then removals
// and additions.
func Schedules(previous, current []models.CanonicalShift, scheduleDate string) ([]models.DiffEvent, error) {
	if _, err := time.Parse("2006-01-02", scheduleDate); err != nil {
		return nil, fmt.Errorf("invalid schedule date %q: %w", scheduleDate, err)
	}

	oldRefs := make([]shiftRef, len(previous))
	for i, shift := range previous {
		oldRefs[i] = shiftRef{sequence: i, shift: shift}
	}
	newRefs := make([]shiftRef, len(current))
	for i, shift := range current {
		newRefs[i] = shiftRef{sequence: i, shift: shift}
	}

	events := make([]models.DiffEvent, 0)

	// Stage 1: stable identity (location + customer). Duplicate-identity
	// instances pair greedily by minimal time distance.
	identityPairs, oldRefs, newRefs := pairByKey(oldRefs, newRefs, func(ref shiftRef) string {
		return ref.shift.LocationFingerprint + "\x00" + ref.shift.CustomerFingerprint
	}, true)
	for _, pair := range identityPairs {
		oldShift, newShift := pair.oldRef.shift, pair.newRef.shift
		switch {
		case oldShift.Start != newShift.Start || oldShift.End != newShift.End:
			events = append(events, event(models.EventShiftTimeChanged, scheduleDate, oldShift, newShift))
		case oldShift.CustomerName != newShift.CustomerName:
			events = append(events, event(models.EventShiftRetitled, scheduleDate, oldShift, newShift))
		case oldShift.ShiftType != newShift.ShiftType:
			events = append(events, event(models.EventShiftReclassified, scheduleDate, oldShift, newShift))
		}
	}

	// Stage 2: same customer and time slot, moved location.
	relocationPairs, oldRefs, newRefs := pairByKey(oldRefs, newRefs, func(ref shiftRef) string {
		return strings.Join([]string{ref.shift.CustomerFingerprint, ref.shift.Start, ref.shift.End}, "\x00")
	}, false)
	for _, pair := range relocationPairs {
		oldShift, newShift := pair.oldRef.shift, pair.newRef.shift
		switch {
		case oldShift.LocationFingerprint != newShift.LocationFingerprint:
			events = append(events, event(models.EventShiftRelocated, scheduleDate, oldShift, newShift))
		case oldShift.CustomerName != newShift.CustomerName:
			events = append(events, event(models.EventShiftRetitled, scheduleDate, oldShift, newShift))
		}
	}

	// Stage 3: same location and time slot, renamed customer.
	retitlePairs, oldRefs, newRefs := pairByKey(oldRefs, newRefs, func(ref shiftRef) string {
		return strings.Join([]string{ref.shift.LocationFingerprint, ref.shift.Start, ref.shift.End}, "\x00")
	}, false)
	for _, pair := range retitlePairs {
		if pair.oldRef.shift.CustomerFingerprint != pair.newRef.shift.CustomerFingerprint {
			events = append(events, event(models.EventShiftRetitled, scheduleDate, pair.oldRef.shift, pair.newRef.shift))
		}
	}

	sortRefs(oldRefs)
	for _, ref := range oldRefs {
		shift := ref.shift
		events = append(events, models.DiffEvent{
			Kind:         models.EventShiftRemoved,
			ScheduleDate: scheduleDate,
			Before:       &shift,
		})
	}

	sortRefs(newRefs)
	for _, ref := range newRefs {
		shift := ref.shift
		events = append(events, models.DiffEvent{
			Kind:         models.EventShiftAdded,
			ScheduleDate: scheduleDate,
			After:        &shift,
		})
	}

	return events, nil
}

func event(kind models.EventKind, scheduleDate string, before, after models.CanonicalShift) models.DiffEvent {
	beforeCopy, afterCopy := before, after
	return models.DiffEvent{
		Kind:         kind,
		ScheduleDate: scheduleDate,
		Before:       &beforeCopy,
		After:        &afterCopy,
	}
}

// pairByKey groups both sides by key and pairs within each group, in
// sorted key order. Unpaired refs flow to the next stage.
func pairByKey(oldRefs, newRefs []shiftRef, keyFn func(shiftRef) string, byTimeDistance bool) ([]pairedRefs, []shiftRef, []shiftRef) {
	oldByKey := make(map[string][]shiftRef)
	newByKey := make(map[string][]shiftRef)
	for _, ref := range oldRefs {
		key := keyFn(ref)
		oldByKey[key] = append(oldByKey[key], ref)
	}
	for _, ref := range newRefs {
		key := keyFn(ref)
		newByKey[key] = append(newByKey[key], ref)
	}

	var sharedKeys []string
	for key := range oldByKey {
		if _, ok := newByKey[key]; ok {
			sharedKeys = append(sharedKeys, key)
		}
	}
	sort.Strings(sharedKeys)

	var paired []pairedRefs
	consumedOld := make(map[int]struct{})
	consumedNew := make(map[int]struct{})

	for _, key := range sharedKeys {
		oldValues := append([]shiftRef(nil), oldByKey[key]...)
		newValues := append([]shiftRef(nil), newByKey[key]...)
		sortRefs(oldValues)
		sortRefs(newValues)

		var pairs []pairedRefs
		if byTimeDistance {
			pairs = pairGroupByTimeDistance(oldValues, newValues)
		} else {
			pairs = pairGroupByIndex(oldValues, newValues)
		}
		for _, pair := range pairs {
			paired = append(paired, pair)
			consumedOld[pair.oldRef.sequence] = struct{}{}
			consumedNew[pair.newRef.sequence] = struct{}{}
		}
	}

	var remainingOld, remainingNew []shiftRef
	for _, ref := range oldRefs {
		if _, ok := consumedOld[ref.sequence]; !ok {
			remainingOld = append(remainingOld, ref)
		}
	}
	for _, ref := range newRefs {
		if _, ok := consumedNew[ref.sequence]; !ok {
			remainingNew = append(remainingNew, ref)
		}
	}
	return paired, remainingOld, remainingNew
}

func pairGroupByIndex(oldValues, newValues []shiftRef) []pairedRefs {
	count := len(oldValues)
	if len(newValues) < count {
		count = len(newValues)
	}
	pairs := make([]pairedRefs, 0, count)
	for i := 0; i < count; i++ {
		pairs = append(pairs, pairedRefs{oldRef: oldValues[i], newRef: newValues[i]})
	}
	return pairs
}

// pairGroupByTimeDistance greedily pairs the closest-in-time instances
// of a duplicated identity, with sort-key tie breaks so the result does
// not depend on input order.
func pairGroupByTimeDistance(oldValues, newValues []shiftRef) []pairedRefs {
	remainingOld := append([]shiftRef(nil), oldValues...)
	remainingNew := append([]shiftRef(nil), newValues...)
	var pairs []pairedRefs

	for len(remainingOld) > 0 && len(remainingNew) > 0 {
		bestOld, bestNew := 0, 0
		bestSet := false
		var bestDistance int
		var bestOldKey, bestNewKey string

		for oldIndex, oldRef := range remainingOld {
			for newIndex, newRef := range remainingNew {
				distance := timeDistanceMinutes(oldRef.shift, newRef.shift)
				oldKey := refSortKey(oldRef)
				newKey := refSortKey(newRef)
				better := !bestSet ||
					distance < bestDistance ||
					(distance == bestDistance && oldKey < bestOldKey) ||
					(distance == bestDistance && oldKey == bestOldKey && newKey < bestNewKey)
				if better {
					bestSet = true
					bestDistance = distance
					bestOldKey = oldKey
					bestNewKey = newKey
					bestOld = oldIndex
					bestNew = newIndex
				}
			}
		}

		pairs = append(pairs, pairedRefs{oldRef: remainingOld[bestOld], newRef: remainingNew[bestNew]})
		remainingOld = append(remainingOld[:bestOld], remainingOld[bestOld+1:]...)
		remainingNew = append(remainingNew[:bestNew], remainingNew[bestNew+1:]...)
	}
	return pairs
}

func sortRefs(refs []shiftRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refSortKey(refs[i]) < refSortKey(refs[j])
	})
}

// refSortKey is a stable ordering over shift refs, used for residual
// event ordering and greedy-pairing tie breaks.
func refSortKey(ref shiftRef) string {
	shift := ref.shift
	return strings.Join([]string{
		shift.LocationFingerprint,
		shift.CustomerFingerprint,
		shift.Start,
		shift.End,
		strings.ToLower(shift.CustomerName),
		strings.ToLower(shift.Street),
		strings.ToLower(shift.StreetNumber),
		strings.ToLower(shift.City),
		fmt.Sprintf("%08d", ref.sequence),
	}, "\x00")
}

func timeDistanceMinutes(before, after models.CanonicalShift) int {
	return absInt(clockMinutes(before.Start)-clockMinutes(after.Start)) +
		absInt(clockMinutes(before.End)-clockMinutes(after.End))
}

func clockMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
