package models

import "time"

// Notification types.
const (
	NotificationTypeEvent   = "event"
	NotificationTypeSummary = "summary"
)

// Notification statuses.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
)

// Notification is one user-facing message rendered from change events.
// NotificationID is a deterministic hash, so re-observing the same events
// never stores a duplicate.
type Notification struct {
	NotificationID  string
	UserID          int64
	ScheduleDate    string
	SourceSessionID string
	Type            string
	Message         string
	EventIDs        []string
	CreatedAt       time.Time
}
