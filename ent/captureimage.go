// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
)

// CaptureImage is the model entity for the CaptureImage schema.
type CaptureImage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Upload order within the session
	Sequence int `json:"sequence,omitempty"`
	// Object store key of the screenshot
	ObjectKey string `json:"object_key,omitempty"`
	// Server-observed upload time; gates the idle timeout
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaptureImageQuery when eager-loading is set.
	Edges        CaptureImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaptureImageEdges holds the relations/edges for other nodes in the graph.
type CaptureImageEdges struct {
	// Session holds the value of the session edge.
	Session *CaptureSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CaptureImageEdges) SessionOrErr() (*CaptureSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: capturesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaptureImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case captureimage.FieldSequence:
			values[i] = new(sql.NullInt64)
		case captureimage.FieldID, captureimage.FieldSessionID, captureimage.FieldObjectKey:
			values[i] = new(sql.NullString)
		case captureimage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaptureImage fields.
func (_m *CaptureImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case captureimage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case captureimage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case captureimage.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case captureimage.FieldObjectKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_key", values[i])
			} else if value.Valid {
				_m.ObjectKey = value.String
			}
		case captureimage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaptureImage.
// This includes values selected through modifiers, order, etc.
func (_m *CaptureImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the CaptureImage entity.
func (_m *CaptureImage) QuerySession() *CaptureSessionQuery {
	return NewCaptureImageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this CaptureImage.
// Note that you need to call CaptureImage.Unwrap() before calling this method if this CaptureImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaptureImage) Update() *CaptureImageUpdateOne {
	return NewCaptureImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaptureImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaptureImage) Unwrap() *CaptureImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaptureImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaptureImage) String() string {
	var builder strings.Builder
	builder.WriteString("CaptureImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("object_key=")
	builder.WriteString(_m.ObjectKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CaptureImages is a parsable slice of CaptureImage.
type CaptureImages []*CaptureImage
