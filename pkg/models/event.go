package models

import "time"

// EventKind discriminates the schedule diff event union.
type EventKind string

const (
	EventShiftAdded        EventKind = "shift_added"
	EventShiftRemoved      EventKind = "shift_removed"
	EventShiftTimeChanged  EventKind = "shift_time_changed"
	EventShiftRelocated    EventKind = "shift_relocated"
	EventShiftRetitled     EventKind = "shift_retitled"
	EventShiftReclassified EventKind = "shift_reclassified"
)

// DiffEvent is one semantic change between two schedule versions.
// Added events carry only After; removed events only Before; the change
// kinds carry both.
type DiffEvent struct {
	Kind         EventKind
	ScheduleDate string
	Before       *CanonicalShift
	After        *CanonicalShift
}

// IdentityShift returns the shift whose fingerprints identify this event:
// the new value when present, otherwise the old one.
func (e DiffEvent) IdentityShift() *CanonicalShift {
	if e.After != nil {
		return e.After
	}
	return e.Before
}

// StoredEvent is a schedule_event row as read back from the store.
type StoredEvent struct {
	EventID             string
	UserID              int64
	ScheduleDate        string
	Kind                EventKind
	LocationFingerprint string
	CustomerFingerprint string
	OldValue            *CanonicalShift
	NewValue            *CanonicalShift
	DetectedAt          time.Time
	SourceSessionID     string
}
