// Package aggregate merges the canonical shifts of a session's images
// into one deduplicated day schedule. Overlapping screenshots report the
// same shift with small time jitter, different cropping or partial
// addresses; clustering folds these observations together
// deterministically.
package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/identity"
	"github.com/skiftkoll/skiftkoll/pkg/models"
	"github.com/skiftkoll/skiftkoll/pkg/normalize"
)

// DefaultTimeTolerance is the clock distance (minutes, summed over start
// and end) within which two observations count as the same shift.
const DefaultTimeTolerance = 5

const minutesPerDay = 1440

var shiftTypePriority = map[string]int{
	models.ShiftTypeUnknown:     0,
	models.ShiftTypeBreak:       1,
	models.ShiftTypeTravel:      2,
	models.ShiftTypeMeeting:     3,
	models.ShiftTypeAdmin:       4,
	models.ShiftTypeLeave:       5,
	models.ShiftTypeTraining:    6,
	models.ShiftTypeUnavailable: 7,
	models.ShiftTypeWork:        8,
}

// Address-quality chrome tokens; their presence marks a noisier source.
var addressChromeTokens = []string{"on time", "collaborators"}

// AggregatedShift is one merged shift plus the number of observations
// that contributed to it.
type AggregatedShift struct {
	Shift       models.CanonicalShift
	SourceCount int
}

// DaySchedule is the aggregation result for one schedule date.
type DaySchedule struct {
	ScheduleDate string
	Shifts       []AggregatedShift
}

// Snapshot returns the plain shift list, the form stored as the day
// snapshot payload.
func (d DaySchedule) Snapshot() []models.CanonicalShift {
	shifts := make([]models.CanonicalShift, len(d.Shifts))
	for i, item := range d.Shifts {
		shifts[i] = item.Shift
	}
	return shifts
}

type shiftRef struct {
	imageIndex int
	shiftIndex int
	shift    models.CanonicalShift
	startMin int
	endMin   int
}

type cluster struct {
	shift       models.CanonicalShift
	startMin    int
	endMin      int
	sourceCount int
}

// Session aggregates the per-image canonical shifts of one session.
// The result is identical for any permutation of the input.
func Session(sessionImages [][]models.CanonicalShift, scheduleDate string, toleranceMinutes int) (DaySchedule, error) {
	if _, err := time.Parse("2006-01-02", scheduleDate); err != nil {
		return DaySchedule{}, fmt.Errorf("invalid schedule date %q: %w", scheduleDate, err)
	}
	if toleranceMinutes < 0 {
		return DaySchedule{}, fmt.Errorf("time tolerance must be >= 0, got %d", toleranceMinutes)
	}

	var refs []shiftRef
	for imageIndex, imageShifts := range sessionImages {
		for shiftIndex, shift := range imageShifts {
			startMin, err := clockMinutes(shift.Start)
			if err != nil {
				return DaySchedule{}, fmt.Errorf("image %d shift %d: %w", imageIndex, shiftIndex, err)
			}
			endMin, err := clockMinutes(shift.End)
			if err != nil {
				return DaySchedule{}, fmt.Errorf("image %d shift %d: %w", imageIndex, shiftIndex, err)
			}
			refs = append(refs, shiftRef{
				imageIndex: imageIndex,
				shiftIndex: shiftIndex,
				shift:      shift,
				startMin:   startMin,
				endMin:     endMin,
			})
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refLess(refs[i], refs[j])
	})

	grouped := make(map[string][]shiftRef)
	var locationKeys []string
	for _, ref := range refs {
		key := ref.shift.LocationFingerprint
		if _, seen := grouped[key]; !seen {
			locationKeys = append(locationKeys, key)
		}
		grouped[key] = append(grouped[key], ref)
	}
	sort.Strings(locationKeys)

	var merged []cluster
	for _, key := range locationKeys {
		merged = append(merged, mergeLocationGroup(grouped[key], toleranceMinutes)...)
	}

	aggregated := dedupeExactIdentity(merged)

	sort.SliceStable(aggregated, func(i, j int) bool {
		return aggregatedLess(aggregated[i], aggregated[j])
	})
	return DaySchedule{ScheduleDate: scheduleDate, Shifts: aggregated}, nil
}

func refLess(a, b shiftRef) bool {
	if a.shift.LocationFingerprint != b.shift.LocationFingerprint {
		return a.shift.LocationFingerprint < b.shift.LocationFingerprint
	}
	if a.startMin != b.startMin {
		return a.startMin < b.startMin
	}
	if a.endMin != b.endMin {
		return a.endMin < b.endMin
	}
	if a.shift.CustomerFingerprint != b.shift.CustomerFingerprint {
		return a.shift.CustomerFingerprint < b.shift.CustomerFingerprint
	}
	if a.imageIndex != b.imageIndex {
		return a.imageIndex < b.imageIndex
	}
	return a.shiftIndex < b.shiftIndex
}

func aggregatedLess(a, b AggregatedShift) bool {
	am, bm := mustMinutes(a.Shift.Start), mustMinutes(b.Shift.Start)
	if am != bm {
		return am < bm
	}
	am, bm = mustMinutes(a.Shift.End), mustMinutes(b.Shift.End)
	if am != bm {
		return am < bm
	}
	if a.Shift.LocationFingerprint != b.Shift.LocationFingerprint {
		return a.Shift.LocationFingerprint < b.Shift.LocationFingerprint
	}
	if a.Shift.CustomerFingerprint != b.Shift.CustomerFingerprint {
		return a.Shift.CustomerFingerprint < b.Shift.CustomerFingerprint
	}
	return strings.ToLower(a.Shift.CustomerName) < strings.ToLower(b.Shift.CustomerName)
}

func mergeLocationGroup(refs []shiftRef, tolerance int) []cluster {
	sorted := append([]shiftRef(nil), refs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.startMin != b.startMin {
			return a.startMin < b.startMin
		}
		if a.endMin != b.endMin {
			return a.endMin < b.endMin
		}
		if a.shift.CustomerFingerprint != b.shift.CustomerFingerprint {
			return a.shift.CustomerFingerprint < b.shift.CustomerFingerprint
		}
		if a.imageIndex != b.imageIndex {
			return a.imageIndex < b.imageIndex
		}
		return a.shiftIndex < b.shiftIndex
	})

	var clusters []cluster
	for _, ref := range sorted {
		index := bestClusterForShift(clusters, ref, tolerance)
		if index < 0 {
			clusters = append(clusters, cluster{
				shift:       ref.shift,
				startMin:    ref.startMin,
				endMin:      ref.endMin,
				sourceCount: 1,
			})
			continue
		}
		clusters[index] = mergeIntoCluster(clusters[index], ref)
	}
	return clusters
}

// bestClusterForShift picks the matching cluster with the smallest clock
// distance; containment with a matching customer also qualifies. Ties
// resolve on the cluster's (start, end, customer fingerprint, incoming
// customer fingerprint).
func bestClusterForShift(clusters []cluster, ref shiftRef, tolerance int) int {
	bestIndex := -1
	bestDistance := 0
	var bestKey clusterKey

	for index, c := range clusters {
		distance := modularDistance(c.startMin, ref.startMin) + modularDistance(c.endMin, ref.endMin)
		contains := containsWithCustomer(c, ref)
		if distance > tolerance && !contains {
			continue
		}
		key := clusterKey{
			start:            c.startMin,
			end:              c.endMin,
			clusterCustomer:  c.shift.CustomerFingerprint,
			incomingCustomer: ref.shift.CustomerFingerprint,
		}
		if bestIndex < 0 || distance < bestDistance ||
			(distance == bestDistance && key.less(bestKey)) {
			bestIndex = index
			bestDistance = distance
			bestKey = key
		}
	}
	return bestIndex
}

type clusterKey struct {
	start, end       int
	clusterCustomer  string
	incomingCustomer string
}

func (k clusterKey) less(other clusterKey) bool {
	if k.start != other.start {
		return k.start < other.start
	}
	if k.end != other.end {
		return k.end < other.end
	}
	if k.clusterCustomer != other.clusterCustomer {
		return k.clusterCustomer < other.clusterCustomer
	}
	return k.incomingCustomer < other.incomingCustomer
}

// containsWithCustomer reports whether one interval fully contains the
// other (after unwrapping against the cluster's start) and the customer
// fingerprints match.
func containsWithCustomer(c cluster, ref shiftRef) bool {
	if c.shift.CustomerFingerprint != ref.shift.CustomerFingerprint {
		return false
	}
	cs, ce := unwrapInterval(c.startMin, c.endMin, c.startMin)
	is, ie := unwrapInterval(ref.startMin, ref.endMin, c.startMin)
	return (cs <= is && ie <= ce) || (is <= cs && ce <= ie)
}

// mergeIntoCluster folds one observation into a cluster: modular time
// union, better customer name, higher-quality address, higher-priority
// shift type, longer raw label, fingerprints recomputed afterwards.
func mergeIntoCluster(c cluster, ref shiftRef) cluster {
	cs, ce := unwrapInterval(c.startMin, c.endMin, c.startMin)
	is, ie := unwrapInterval(ref.startMin, ref.endMin, c.startMin)
	newStart := minInt(cs, is)
	newEnd := maxInt(ce, ie)

	merged := c.shift
	merged.CustomerName = selectBetterCustomerName(c.shift.CustomerName, ref.shift.CustomerName)

	if addressQualityScore(ref.shift) > addressQualityScore(c.shift) {
		merged.Street = ref.shift.Street
		merged.StreetNumber = ref.shift.StreetNumber
		merged.PostalCode = ref.shift.PostalCode
		merged.PostalArea = ref.shift.PostalArea
		merged.City = ref.shift.City
	}

	merged.ShiftType = selectShiftType(c.shift.ShiftType, ref.shift.ShiftType)
	if len(ref.shift.RawTypeLabel) > len(merged.RawTypeLabel) {
		merged.RawTypeLabel = ref.shift.RawTypeLabel
	}

	startMin := ((newStart % minutesPerDay) + minutesPerDay) % minutesPerDay
	endMin := ((newEnd % minutesPerDay) + minutesPerDay) % minutesPerDay
	merged.Start = formatClock(startMin)
	merged.End = formatClock(endMin)

	merged.CustomerFingerprint = normalize.CustomerKey(merged.CustomerName, merged.RawTypeLabel, merged.ShiftType)
	merged.LocationFingerprint = identity.LocationFingerprint(merged.Street, merged.StreetNumber, merged.PostalArea, merged.City)

	return cluster{
		shift:       merged,
		startMin:    startMin,
		endMin:      endMin,
		sourceCount: c.sourceCount + 1,
	}
}

// selectBetterCustomerName prefers the longer name, then the
// lexicographically later one under case folding.
func selectBetterCustomerName(left, right string) string {
	leftLen := len(strings.TrimSpace(left))
	rightLen := len(strings.TrimSpace(right))
	if rightLen != leftLen {
		if rightLen > leftLen {
			return right
		}
		return left
	}
	if strings.ToLower(right) > strings.ToLower(left) {
		return right
	}
	return left
}

func selectShiftType(left, right string) string {
	if shiftTypePriority[right] > shiftTypePriority[left] {
		return right
	}
	return left
}

// addressQualityScore ranks address variants: components present and
// length score up, UI-chrome tokens and stray punctuation score down.
func addressQualityScore(shift models.CanonicalShift) int {
	components := []string{shift.Street, shift.StreetNumber, shift.PostalCode, shift.PostalArea, shift.City}
	present := 0
	var parts []string
	for _, component := range components {
		if component != "" {
			present++
			parts = append(parts, component)
		}
	}
	joined := strings.Join(parts, " ")

	penalties := 0
	folded := strings.ToLower(joined)
	for _, token := range addressChromeTokens {
		penalties += strings.Count(folded, token)
	}
	penalties += strings.Count(joined, "?")
	penalties += strings.Count(joined, "+")

	return present*10 + len(joined) - penalties*5
}

// dedupeExactIdentity collapses surviving clusters that agree on (start,
// end, customer fingerprint, shift type, case-folded raw label); clones
// differing only in noisy address merge into one.
func dedupeExactIdentity(clusters []cluster) []AggregatedShift {
	type identityKey struct {
		start, end   int
		customerFP   string
		shiftType    string
		rawTypeLabel string
	}

	byKey := make(map[identityKey]int)
	var result []AggregatedShift

	for _, c := range clusters {
		key := identityKey{
			start:        c.startMin,
			end:          c.endMin,
			customerFP:   c.shift.CustomerFingerprint,
			shiftType:    c.shift.ShiftType,
			rawTypeLabel: strings.ToLower(c.shift.RawTypeLabel),
		}
		existingIndex, seen := byKey[key]
		if !seen {
			byKey[key] = len(result)
			result = append(result, AggregatedShift{Shift: c.shift, SourceCount: c.sourceCount})
			continue
		}

		existing := result[existingIndex]
		mergedShift := existing.Shift
		mergedShift.CustomerName = selectBetterCustomerName(existing.Shift.CustomerName, c.shift.CustomerName)
		if addressQualityScore(c.shift) > addressQualityScore(existing.Shift) {
			mergedShift.Street = c.shift.Street
			mergedShift.StreetNumber = c.shift.StreetNumber
			mergedShift.PostalCode = c.shift.PostalCode
			mergedShift.PostalArea = c.shift.PostalArea
			mergedShift.City = c.shift.City
		}
		if len(c.shift.RawTypeLabel) > len(mergedShift.RawTypeLabel) {
			mergedShift.RawTypeLabel = c.shift.RawTypeLabel
		}
		mergedShift.CustomerFingerprint = normalize.CustomerKey(mergedShift.CustomerName, mergedShift.RawTypeLabel, mergedShift.ShiftType)
		mergedShift.LocationFingerprint = identity.LocationFingerprint(mergedShift.Street, mergedShift.StreetNumber, mergedShift.PostalArea, mergedShift.City)

		result[existingIndex] = AggregatedShift{
			Shift:       mergedShift,
			SourceCount: existing.SourceCount + c.sourceCount,
		}
	}
	return result
}

func clockMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	return hour*60 + minute, nil
}

func mustMinutes(value string) int {
	minutes, err := clockMinutes(value)
	if err != nil {
		return 0
	}
	return minutes
}

func formatClock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// modularDistance is the symmetric clock distance mod one day.
func modularDistance(a, b int) int {
	diff := absInt(a - b)
	if diff > minutesPerDay-diff {
		return minutesPerDay - diff
	}
	return diff
}

// unwrapInterval lifts a clock interval to absolute minutes near the
// anchor: the start takes the rotation closest to the anchor and the end
// follows at start + duration.
func unwrapInterval(startMin, endMin, anchor int) (int, int) {
	duration := ((endMin - startMin) % minutesPerDay + minutesPerDay) % minutesPerDay
	start := startMin
	for start-anchor > minutesPerDay/2 {
		start -= minutesPerDay
	}
	for anchor-start > minutesPerDay/2 {
		start += minutesPerDay
	}
	return start, start + duration
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
