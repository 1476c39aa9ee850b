// Code generated by ent, DO NOT EDIT.

package schedulenotification

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedulenotification type in the database.
	Label = "schedule_notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "notification_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScheduleDate holds the string denoting the schedule_date field in the database.
	FieldScheduleDate = "schedule_date"
	// FieldSourceSessionID holds the string denoting the source_session_id field in the database.
	FieldSourceSessionID = "source_session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNotificationType holds the string denoting the notification_type field in the database.
	FieldNotificationType = "notification_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldEventIds holds the string denoting the event_ids field in the database.
	FieldEventIds = "event_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// Table holds the table name of the schedulenotification in the database.
	Table = "schedule_notification"
)

// Columns holds all SQL columns for schedulenotification fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldScheduleDate,
	FieldSourceSessionID,
	FieldStatus,
	FieldNotificationType,
	FieldMessage,
	FieldEventIds,
	FieldCreatedAt,
	FieldSentAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the ScheduleNotification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByScheduleDate orders the results by the schedule_date field.
func ByScheduleDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleDate, opts...).ToFunc()
}

// BySourceSessionID orders the results by the source_session_id field.
func BySourceSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNotificationType orders the results by the notification_type field.
func ByNotificationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotificationType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}
