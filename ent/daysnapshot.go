// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/daysnapshot"
)

// DaySnapshot is the model entity for the DaySnapshot schema.
type DaySnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// ScheduleDate holds the value of the "schedule_date" field.
	ScheduleDate string `json:"schedule_date,omitempty"`
	// SnapshotPayload holds the value of the "snapshot_payload" field.
	SnapshotPayload []map[string]interface{} `json:"snapshot_payload,omitempty"`
	// Session of the last observation that produced this payload
	SourceSessionID string `json:"source_session_id,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DaySnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case daysnapshot.FieldSnapshotPayload:
			values[i] = new([]byte)
		case daysnapshot.FieldID, daysnapshot.FieldUserID:
			values[i] = new(sql.NullInt64)
		case daysnapshot.FieldScheduleDate, daysnapshot.FieldSourceSessionID:
			values[i] = new(sql.NullString)
		case daysnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DaySnapshot fields.
func (_m *DaySnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case daysnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case daysnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case daysnapshot.FieldScheduleDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_date", values[i])
			} else if value.Valid {
				_m.ScheduleDate = value.String
			}
		case daysnapshot.FieldSnapshotPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SnapshotPayload); err != nil {
					return fmt.Errorf("unmarshal field snapshot_payload: %w", err)
				}
			}
		case daysnapshot.FieldSourceSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_session_id", values[i])
			} else if value.Valid {
				_m.SourceSessionID = value.String
			}
		case daysnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DaySnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *DaySnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DaySnapshot.
// Note that you need to call DaySnapshot.Unwrap() before calling this method if this DaySnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DaySnapshot) Update() *DaySnapshotUpdateOne {
	return NewDaySnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DaySnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DaySnapshot) Unwrap() *DaySnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DaySnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DaySnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("DaySnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("schedule_date=")
	builder.WriteString(_m.ScheduleDate)
	builder.WriteString(", ")
	builder.WriteString("snapshot_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnapshotPayload))
	builder.WriteString(", ")
	builder.WriteString("source_session_id=")
	builder.WriteString(_m.SourceSessionID)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DaySnapshots is a parsable slice of DaySnapshot.
type DaySnapshots []*DaySnapshot
