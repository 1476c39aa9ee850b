// Code generated by ent, DO NOT EDIT.

package scheduleevent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduleevent type in the database.
	Label = "schedule_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScheduleDate holds the string denoting the schedule_date field in the database.
	FieldScheduleDate = "schedule_date"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldLocationFingerprint holds the string denoting the location_fingerprint field in the database.
	FieldLocationFingerprint = "location_fingerprint"
	// FieldCustomerFingerprint holds the string denoting the customer_fingerprint field in the database.
	FieldCustomerFingerprint = "customer_fingerprint"
	// FieldOldValueHash holds the string denoting the old_value_hash field in the database.
	FieldOldValueHash = "old_value_hash"
	// FieldNewValueHash holds the string denoting the new_value_hash field in the database.
	FieldNewValueHash = "new_value_hash"
	// FieldOldValue holds the string denoting the old_value field in the database.
	FieldOldValue = "old_value"
	// FieldNewValue holds the string denoting the new_value field in the database.
	FieldNewValue = "new_value"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// FieldSourceSessionID holds the string denoting the source_session_id field in the database.
	FieldSourceSessionID = "source_session_id"
	// Table holds the table name of the scheduleevent in the database.
	Table = "schedule_event"
)

// Columns holds all SQL columns for scheduleevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldScheduleDate,
	FieldEventType,
	FieldLocationFingerprint,
	FieldCustomerFingerprint,
	FieldOldValueHash,
	FieldNewValueHash,
	FieldOldValue,
	FieldNewValue,
	FieldDetectedAt,
	FieldSourceSessionID,
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

// OrderOption defines the ordering options for the ScheduleEvent queries.
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

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByLocationFingerprint orders the results by the location_fingerprint field.
func ByLocationFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationFingerprint, opts...).ToFunc()
}

// ByCustomerFingerprint orders the results by the customer_fingerprint field.
func ByCustomerFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerFingerprint, opts...).ToFunc()
}

// ByOldValueHash orders the results by the old_value_hash field.
func ByOldValueHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldValueHash, opts...).ToFunc()
}

// ByNewValueHash orders the results by the new_value_hash field.
func ByNewValueHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewValueHash, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}

// BySourceSessionID orders the results by the source_session_id field.
func BySourceSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceSessionID, opts...).ToFunc()
}
