// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

// ScheduleNotification is the model entity for the ScheduleNotification schema.
type ScheduleNotification struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// ScheduleDate holds the value of the "schedule_date" field.
	ScheduleDate string `json:"schedule_date,omitempty"`
	// SourceSessionID holds the value of the "source_session_id" field.
	SourceSessionID string `json:"source_session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// NotificationType holds the value of the "notification_type" field.
	NotificationType string `json:"notification_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// EventIds holds the value of the "event_ids" field.
	EventIds []string `json:"event_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt       *time.Time `json:"sent_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleNotification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedulenotification.FieldEventIds:
			values[i] = new([]byte)
		case schedulenotification.FieldUserID:
			values[i] = new(sql.NullInt64)
		case schedulenotification.FieldID, schedulenotification.FieldScheduleDate, schedulenotification.FieldSourceSessionID, schedulenotification.FieldStatus, schedulenotification.FieldNotificationType, schedulenotification.FieldMessage:
			values[i] = new(sql.NullString)
		case schedulenotification.FieldCreatedAt, schedulenotification.FieldSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleNotification fields.
func (_m *ScheduleNotification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedulenotification.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case schedulenotification.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case schedulenotification.FieldScheduleDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_date", values[i])
			} else if value.Valid {
				_m.ScheduleDate = value.String
			}
		case schedulenotification.FieldSourceSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_session_id", values[i])
			} else if value.Valid {
				_m.SourceSessionID = value.String
			}
		case schedulenotification.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case schedulenotification.FieldNotificationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_type", values[i])
			} else if value.Valid {
				_m.NotificationType = value.String
			}
		case schedulenotification.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case schedulenotification.FieldEventIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventIds); err != nil {
					return fmt.Errorf("unmarshal field event_ids: %w", err)
				}
			}
		case schedulenotification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case schedulenotification.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleNotification.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduleNotification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduleNotification.
// Note that you need to call ScheduleNotification.Unwrap() before calling this method if this ScheduleNotification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduleNotification) Update() *ScheduleNotificationUpdateOne {
	return NewScheduleNotificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduleNotification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduleNotification) Unwrap() *ScheduleNotification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleNotification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduleNotification) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleNotification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("schedule_date=")
	builder.WriteString(_m.ScheduleDate)
	builder.WriteString(", ")
	builder.WriteString("source_session_id=")
	builder.WriteString(_m.SourceSessionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("notification_type=")
	builder.WriteString(_m.NotificationType)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("event_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleNotifications is a parsable slice of ScheduleNotification.
type ScheduleNotifications []*ScheduleNotification
