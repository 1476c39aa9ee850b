// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/scheduleevent"
)

// ScheduleEvent is the model entity for the ScheduleEvent schema.
type ScheduleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// ScheduleDate holds the value of the "schedule_date" field.
	ScheduleDate string `json:"schedule_date,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// LocationFingerprint holds the value of the "location_fingerprint" field.
	LocationFingerprint string `json:"location_fingerprint,omitempty"`
	// CustomerFingerprint holds the value of the "customer_fingerprint" field.
	CustomerFingerprint string `json:"customer_fingerprint,omitempty"`
	// OldValueHash holds the value of the "old_value_hash" field.
	OldValueHash string `json:"old_value_hash,omitempty"`
	// NewValueHash holds the value of the "new_value_hash" field.
	NewValueHash string `json:"new_value_hash,omitempty"`
	// OldValue holds the value of the "old_value" field.
	OldValue map[string]interface{} `json:"old_value,omitempty"`
	// NewValue holds the value of the "new_value" field.
	NewValue map[string]interface{} `json:"new_value,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// SourceSessionID holds the value of the "source_session_id" field.
	SourceSessionID string `json:"source_session_id,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleevent.FieldOldValue, scheduleevent.FieldNewValue:
			values[i] = new([]byte)
		case scheduleevent.FieldUserID:
			values[i] = new(sql.NullInt64)
		case scheduleevent.FieldID, scheduleevent.FieldScheduleDate, scheduleevent.FieldEventType, scheduleevent.FieldLocationFingerprint, scheduleevent.FieldCustomerFingerprint, scheduleevent.FieldOldValueHash, scheduleevent.FieldNewValueHash, scheduleevent.FieldSourceSessionID:
			values[i] = new(sql.NullString)
		case scheduleevent.FieldDetectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleEvent fields.
func (_m *ScheduleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduleevent.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case scheduleevent.FieldScheduleDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_date", values[i])
			} else if value.Valid {
				_m.ScheduleDate = value.String
			}
		case scheduleevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case scheduleevent.FieldLocationFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location_fingerprint", values[i])
			} else if value.Valid {
				_m.LocationFingerprint = value.String
			}
		case scheduleevent.FieldCustomerFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_fingerprint", values[i])
			} else if value.Valid {
				_m.CustomerFingerprint = value.String
			}
		case scheduleevent.FieldOldValueHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_value_hash", values[i])
			} else if value.Valid {
				_m.OldValueHash = value.String
			}
		case scheduleevent.FieldNewValueHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_value_hash", values[i])
			} else if value.Valid {
				_m.NewValueHash = value.String
			}
		case scheduleevent.FieldOldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field old_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OldValue); err != nil {
					return fmt.Errorf("unmarshal field old_value: %w", err)
				}
			}
		case scheduleevent.FieldNewValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field new_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NewValue); err != nil {
					return fmt.Errorf("unmarshal field new_value: %w", err)
				}
			}
		case scheduleevent.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		case scheduleevent.FieldSourceSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_session_id", values[i])
			} else if value.Valid {
				_m.SourceSessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduleEvent.
// Note that you need to call ScheduleEvent.Unwrap() before calling this method if this ScheduleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduleEvent) Update() *ScheduleEventUpdateOne {
	return NewScheduleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduleEvent) Unwrap() *ScheduleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("schedule_date=")
	builder.WriteString(_m.ScheduleDate)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("location_fingerprint=")
	builder.WriteString(_m.LocationFingerprint)
	builder.WriteString(", ")
	builder.WriteString("customer_fingerprint=")
	builder.WriteString(_m.CustomerFingerprint)
	builder.WriteString(", ")
	builder.WriteString("old_value_hash=")
	builder.WriteString(_m.OldValueHash)
	builder.WriteString(", ")
	builder.WriteString("new_value_hash=")
	builder.WriteString(_m.NewValueHash)
	builder.WriteString(", ")
	builder.WriteString("old_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.OldValue))
	builder.WriteString(", ")
	builder.WriteString("new_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewValue))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_session_id=")
	builder.WriteString(_m.SourceSessionID)
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleEvents is a parsable slice of ScheduleEvent.
type ScheduleEvents []*ScheduleEvent
