// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
)

// CaptureSession is the model entity for the CaptureSession schema.
type CaptureSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning user
	UserID int64 `json:"user_id,omitempty"`
	// State labels are deployment-configurable, so no enum
	State string `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Worker id holding the processing claim
	LockedBy *string `json:"locked_by,omitempty"`
	// Claim time; heartbeats refresh it for orphan detection
	LockedAt *time.Time `json:"locked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaptureSessionQuery when eager-loading is set.
	Edges        CaptureSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaptureSessionEdges holds the relations/edges for other nodes in the graph.
type CaptureSessionEdges struct {
	// Images holds the value of the images edge.
	Images []*CaptureImage `json:"images,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e CaptureSessionEdges) ImagesOrErr() ([]*CaptureImage, error) {
	if e.loadedTypes[0] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaptureSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capturesession.FieldUserID:
			values[i] = new(sql.NullInt64)
		case capturesession.FieldID, capturesession.FieldState, capturesession.FieldErrorMessage, capturesession.FieldLockedBy:
			values[i] = new(sql.NullString)
		case capturesession.FieldCreatedAt, capturesession.FieldLockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaptureSession fields.
func (_m *CaptureSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capturesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case capturesession.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case capturesession.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case capturesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case capturesession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case capturesession.FieldLockedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_by", values[i])
			} else if value.Valid {
				_m.LockedBy = new(string)
				*_m.LockedBy = value.String
			}
		case capturesession.FieldLockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_at", values[i])
			} else if value.Valid {
				_m.LockedAt = new(time.Time)
				*_m.LockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaptureSession.
// This includes values selected through modifiers, order, etc.
func (_m *CaptureSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryImages queries the "images" edge of the CaptureSession entity.
func (_m *CaptureSession) QueryImages() *CaptureImageQuery {
	return NewCaptureSessionClient(_m.config).QueryImages(_m)
}

// Update returns a builder for updating this CaptureSession.
// Note that you need to call CaptureSession.Unwrap() before calling this method if this CaptureSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaptureSession) Update() *CaptureSessionUpdateOne {
	return NewCaptureSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaptureSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaptureSession) Unwrap() *CaptureSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaptureSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaptureSession) String() string {
	var builder strings.Builder
	builder.WriteString("CaptureSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LockedBy; v != nil {
		builder.WriteString("locked_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LockedAt; v != nil {
		builder.WriteString("locked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CaptureSessions is a parsable slice of CaptureSession.
type CaptureSessions []*CaptureSession
