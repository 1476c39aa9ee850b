// Code generated by ent, DO NOT EDIT.

package daysnapshot

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the daysnapshot type in the database.
	Label = "day_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScheduleDate holds the string denoting the schedule_date field in the database.
	FieldScheduleDate = "schedule_date"
	// FieldSnapshotPayload holds the string denoting the snapshot_payload field in the database.
	FieldSnapshotPayload = "snapshot_payload"
	// FieldSourceSessionID holds the string denoting the source_session_id field in the database.
	FieldSourceSessionID = "source_session_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the daysnapshot in the database.
	Table = "day_snapshot"
)

// Columns holds all SQL columns for daysnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldScheduleDate,
	FieldSnapshotPayload,
	FieldSourceSessionID,
	FieldUpdatedAt,
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

// OrderOption defines the ordering options for the DaySnapshot queries.
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

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
