// Package notify renders persisted schedule events into deterministic
// user-facing notifications. The same events always produce the same
// ids and messages, so delivery retries never duplicate.
package notify

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// DefaultSummaryThreshold is the group size at which individual event
// messages collapse into one summary line.
const DefaultSummaryThreshold = 3

// Builder renders notifications from schedule events. The zero value is
// not usable; construct with NewBuilder.
type Builder struct {
	summaryThreshold int
	today            *time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithToday anchors the relative day phrases ("today", "tomorrow").
// Without it every date renders as "on YYYY-MM-DD".
func WithToday(day time.Time) Option {
	return func(b *Builder) {
		b.today = &day
	}
}

// NewBuilder returns a Builder with the given summary threshold.
func NewBuilder(summaryThreshold int, opts ...Option) (*Builder, error) {
	if summaryThreshold <= 0 {
		return nil, fmt.Errorf("summary threshold must be > 0, got %d", summaryThreshold)
	}
	b := &Builder{summaryThreshold: summaryThreshold}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build renders notifications for the given events. Events whose id (or
// semantic key, when the id is empty) appears in alreadyNotified are
// skipped; the set is updated in place so consecutive calls dedupe.
func (b *Builder) Build(events []models.StoredEvent, alreadyNotified map[string]struct{}) []models.Notification {
	if alreadyNotified == nil {
		alreadyNotified = make(map[string]struct{})
	}

	ordered := append([]models.StoredEvent(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return eventSortKey(ordered[i]) < eventSortKey(ordered[j])
	})

	var fresh []models.StoredEvent
	for _, event := range ordered {
		dedupeKey := event.EventID
		if dedupeKey == "" {
			dedupeKey = semanticEventKey(event)
		}
		if _, seen := alreadyNotified[dedupeKey]; seen {
			continue
		}
		alreadyNotified[dedupeKey] = struct{}{}
		fresh = append(fresh, event)
	}

	type groupKey struct {
		userID          int64
		scheduleDate    string
		sourceSessionID string
	}
	groups := make(map[groupKey][]models.StoredEvent)
	var keys []groupKey
	for _, event := range fresh {
		key := groupKey{userID: event.UserID, scheduleDate: event.ScheduleDate, sourceSessionID: event.SourceSessionID}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], event)
	}
	sort.Slice(keys, func(i, j int) bool {
		left, right := keys[i], keys[j]
		if left.userID != right.userID {
			return left.userID < right.userID
		}
		if left.scheduleDate != right.scheduleDate {
			return left.scheduleDate < right.scheduleDate
		}
		return left.sourceSessionID < right.sourceSessionID
	})

	var notifications []models.Notification
	for _, key := range keys {
		grouped := groups[key]

		if len(grouped) >= b.summaryThreshold {
			eventIDs := make([]string, len(grouped))
			for i, event := range grouped {
				eventIDs[i] = event.EventID
			}
			message := fmt.Sprintf("%d shifts updated for %s", len(grouped), b.dayLabel(key.scheduleDate))
			notifications = append(notifications, models.Notification{
				NotificationID:  notificationID(key.userID, key.scheduleDate, key.sourceSessionID, append([]string{models.NotificationTypeSummary}, eventIDs...)),
				UserID:          key.userID,
				ScheduleDate:    key.scheduleDate,
				SourceSessionID: key.sourceSessionID,
				Type:            models.NotificationTypeSummary,
				Message:         message,
				EventIDs:        eventIDs,
			})
			continue
		}

		for _, event := range grouped {
			notifications = append(notifications, models.Notification{
				NotificationID:  notificationID(key.userID, key.scheduleDate, key.sourceSessionID, []string{event.EventID}),
				UserID:          key.userID,
				ScheduleDate:    key.scheduleDate,
				SourceSessionID: key.sourceSessionID,
				Type:            models.NotificationTypeEvent,
				Message:         b.eventMessage(event),
				EventIDs:        []string{event.EventID},
			})
		}
	}
	return notifications
}

func (b *Builder) eventMessage(event models.StoredEvent) string {
	dayLower := b.dayLabel(event.ScheduleDate)
	dayUpper := capitalize(dayLower)
	oldShift := event.OldValue
	newShift := event.NewValue

	switch event.Kind {
	case models.EventShiftAdded:
		return fmt.Sprintf("New shift added %s %s–%s in %s",
			dayLower, shiftField(newShift, fieldStart), shiftField(newShift, fieldEnd), cityOrUnknown(newShift))
	case models.EventShiftRemoved:
		return fmt.Sprintf("Shift removed %s %s–%s in %s",
			dayLower, shiftField(oldShift, fieldStart), shiftField(oldShift, fieldEnd), cityOrUnknown(oldShift))
	case models.EventShiftTimeChanged:
		city := firstNonEmpty(shiftCity(newShift), shiftCity(oldShift), "shift")
		return fmt.Sprintf("%s %s shift moved %s", dayUpper, city, timeChangePhrase(oldShift, newShift))
	case models.EventShiftRelocated:
		start := firstNonEmpty(shiftStart(newShift), shiftStart(oldShift), "--:--")
		return fmt.Sprintf("%s %s shift moved to %s", dayUpper, start, cityOrUnknown(newShift))
	case models.EventShiftReclassified:
		typeText := ""
		if newShift != nil {
			typeText = newShift.RawTypeLabel
		}
		if typeText == "" {
			typeText = shiftTypeLabel(shiftType(newShift))
		}
		return fmt.Sprintf("%s job updated to %s", dayUpper, typeText)
	case models.EventShiftRetitled:
		customer := firstNonEmpty(shiftCustomer(newShift), shiftCustomer(oldShift), "customer")
		return fmt.Sprintf("%s shift updated for %s", dayUpper, customer)
	}
	return fmt.Sprintf("%s schedule updated", dayUpper)
}

func timeChangePhrase(oldShift, newShift *models.CanonicalShift) string {
	oldStart := firstNonEmpty(shiftStart(oldShift), "--:--")
	oldEnd := firstNonEmpty(shiftEnd(oldShift), "--:--")
	newStart := firstNonEmpty(shiftStart(newShift), "--:--")
	newEnd := firstNonEmpty(shiftEnd(newShift), "--:--")

	startChanged := oldStart != newStart
	endChanged := oldEnd != newEnd

	switch {
	case startChanged && !endChanged:
		return fmt.Sprintf("%s → %s", oldStart, newStart)
	case endChanged && !startChanged:
		return fmt.Sprintf("ends %s → %s", oldEnd, newEnd)
	default:
		return fmt.Sprintf("%s–%s → %s–%s", oldStart, oldEnd, newStart, newEnd)
	}
}

var shiftTypeLabels = map[string]string{
	models.ShiftTypeWork:        "Work shift",
	models.ShiftTypeTravel:      "Travel",
	models.ShiftTypeTraining:    "Training",
	models.ShiftTypeBreak:       "Break",
	models.ShiftTypeMeeting:     "Meeting",
	models.ShiftTypeAdmin:       "Administrative task",
	models.ShiftTypeLeave:       "Leave",
	models.ShiftTypeUnavailable: "Unavailable",
	models.ShiftTypeUnknown:     "Unknown job type",
}

func shiftTypeLabel(value string) string {
	if label, ok := shiftTypeLabels[value]; ok {
		return label
	}
	if value == "" {
		return shiftTypeLabels[models.ShiftTypeUnknown]
	}
	return capitalize(strings.ToLower(value))
}

func (b *Builder) dayLabel(scheduleDate string) string {
	if b.today == nil {
		return "on " + scheduleDate
	}
	day, err := time.Parse("2006-01-02", scheduleDate)
	if err != nil {
		return "on " + scheduleDate
	}
	today := *b.today
	if sameDay(day, today) {
		return "today"
	}
	if sameDay(day, today.AddDate(0, 0, 1)) {
		return "tomorrow"
	}
	return "on " + scheduleDate
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

type shiftFieldName int

const (
	fieldStart shiftFieldName = iota
	fieldEnd
)

func shiftField(shift *models.CanonicalShift, field shiftFieldName) string {
	value := ""
	switch field {
	case fieldStart:
		value = shiftStart(shift)
	case fieldEnd:
		value = shiftEnd(shift)
	}
	if value == "" {
		return "--:--"
	}
	return value
}

func shiftStart(shift *models.CanonicalShift) string {
	if shift == nil {
		return ""
	}
	return shift.Start
}

func shiftEnd(shift *models.CanonicalShift) string {
	if shift == nil {
		return ""
	}
	return shift.End
}

func shiftCity(shift *models.CanonicalShift) string {
	if shift == nil {
		return ""
	}
	return shift.City
}

func shiftCustomer(shift *models.CanonicalShift) string {
	if shift == nil {
		return ""
	}
	return shift.CustomerName
}

func shiftType(shift *models.CanonicalShift) string {
	if shift == nil {
		return ""
	}
	return shift.ShiftType
}

func cityOrUnknown(shift *models.CanonicalShift) string {
	if city := shiftCity(shift); city != "" {
		return city
	}
	return "unknown location"
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func notificationID(userID int64, scheduleDate, sourceSessionID string, parts []string) string {
	payload := strings.Join(append([]string{strconv.FormatInt(userID, 10), scheduleDate, sourceSessionID}, parts...), "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// eventSortKey orders events by user, date and start time so messages
// emit in a stable clock-ordered sequence.
func eventSortKey(event models.StoredEvent) string {
	shift := event.NewValue
	if shift == nil {
		shift = event.OldValue
	}
	start := "99:99"
	if shift != nil && shift.Start != "" {
		start = shift.Start
	}
	detectedAt := ""
	if !event.DetectedAt.IsZero() {
		detectedAt = event.DetectedAt.UTC().Format(time.RFC3339Nano)
	}
	return strings.Join([]string{
		fmt.Sprintf("%020d", event.UserID),
		event.ScheduleDate,
		start,
		event.LocationFingerprint,
		string(event.Kind),
		event.SourceSessionID,
		detectedAt,
		event.EventID,
	}, "\x00")
}

// semanticEventKey substitutes for a missing event id: a hash of the
// event's identity fields and value hashes.
func semanticEventKey(event models.StoredEvent) string {
	payload := strings.Join([]string{
		strconv.FormatInt(event.UserID, 10),
		event.ScheduleDate,
		event.SourceSessionID,
		string(event.Kind),
		event.LocationFingerprint,
		event.CustomerFingerprint,
		valueKey(event.OldValue),
		valueKey(event.NewValue),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func valueKey(shift *models.CanonicalShift) string {
	if shift == nil {
		return "null"
	}
	return string(shift.CanonicalJSON())
}
