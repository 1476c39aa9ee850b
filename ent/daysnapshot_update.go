// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/daysnapshot"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// DaySnapshotUpdate is the builder for updating DaySnapshot entities.
type DaySnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *DaySnapshotMutation
}

// Where appends a list predicates to the DaySnapshotUpdate builder.
func (_u *DaySnapshotUpdate) Where(ps ...predicate.DaySnapshot) *DaySnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DaySnapshotUpdate) SetUserID(v int64) *DaySnapshotUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DaySnapshotUpdate) SetNillableUserID(v *int64) *DaySnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DaySnapshotUpdate) AddUserID(v int64) *DaySnapshotUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *DaySnapshotUpdate) SetScheduleDate(v string) *DaySnapshotUpdate {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *DaySnapshotUpdate) SetNillableScheduleDate(v *string) *DaySnapshotUpdate {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetSnapshotPayload sets the "snapshot_payload" field.
func (_u *DaySnapshotUpdate) SetSnapshotPayload(v []map[string]interface{}) *DaySnapshotUpdate {
	_u.mutation.SetSnapshotPayload(v)
	return _u
}

// AppendSnapshotPayload appends value to the "snapshot_payload" field.
func (_u *DaySnapshotUpdate) AppendSnapshotPayload(v []map[string]interface{}) *DaySnapshotUpdate {
	_u.mutation.AppendSnapshotPayload(v)
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *DaySnapshotUpdate) SetSourceSessionID(v string) *DaySnapshotUpdate {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *DaySnapshotUpdate) SetNillableSourceSessionID(v *string) *DaySnapshotUpdate {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DaySnapshotUpdate) SetUpdatedAt(v time.Time) *DaySnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DaySnapshotUpdate) SetNillableUpdatedAt(v *time.Time) *DaySnapshotUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the DaySnapshotMutation object of the builder.
func (_u *DaySnapshotUpdate) Mutation() *DaySnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DaySnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaySnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DaySnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaySnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DaySnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(daysnapshot.Table, daysnapshot.Columns, sqlgraph.NewFieldSpec(daysnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(daysnapshot.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(daysnapshot.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(daysnapshot.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnapshotPayload(); ok {
		_spec.SetField(daysnapshot.FieldSnapshotPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshotPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daysnapshot.FieldSnapshotPayload, value)
		})
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(daysnapshot.FieldSourceSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(daysnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DaySnapshotUpdateOne is the builder for updating a single DaySnapshot entity.
type DaySnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DaySnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *DaySnapshotUpdateOne) SetUserID(v int64) *DaySnapshotUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DaySnapshotUpdateOne) SetNillableUserID(v *int64) *DaySnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *DaySnapshotUpdateOne) AddUserID(v int64) *DaySnapshotUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *DaySnapshotUpdateOne) SetScheduleDate(v string) *DaySnapshotUpdateOne {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *DaySnapshotUpdateOne) SetNillableScheduleDate(v *string) *DaySnapshotUpdateOne {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetSnapshotPayload sets the "snapshot_payload" field.
func (_u *DaySnapshotUpdateOne) SetSnapshotPayload(v []map[string]interface{}) *DaySnapshotUpdateOne {
	_u.mutation.SetSnapshotPayload(v)
	return _u
}

// AppendSnapshotPayload appends value to the "snapshot_payload" field.
func (_u *DaySnapshotUpdateOne) AppendSnapshotPayload(v []map[string]interface{}) *DaySnapshotUpdateOne {
	_u.mutation.AppendSnapshotPayload(v)
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *DaySnapshotUpdateOne) SetSourceSessionID(v string) *DaySnapshotUpdateOne {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *DaySnapshotUpdateOne) SetNillableSourceSessionID(v *string) *DaySnapshotUpdateOne {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DaySnapshotUpdateOne) SetUpdatedAt(v time.Time) *DaySnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DaySnapshotUpdateOne) SetNillableUpdatedAt(v *time.Time) *DaySnapshotUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the DaySnapshotMutation object of the builder.
func (_u *DaySnapshotUpdateOne) Mutation() *DaySnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the DaySnapshotUpdate builder.
func (_u *DaySnapshotUpdateOne) Where(ps ...predicate.DaySnapshot) *DaySnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DaySnapshotUpdateOne) Select(field string, fields ...string) *DaySnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DaySnapshot entity.
func (_u *DaySnapshotUpdateOne) Save(ctx context.Context) (*DaySnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaySnapshotUpdateOne) SaveX(ctx context.Context) *DaySnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DaySnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaySnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DaySnapshotUpdateOne) sqlSave(ctx context.Context) (_node *DaySnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(daysnapshot.Table, daysnapshot.Columns, sqlgraph.NewFieldSpec(daysnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DaySnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, daysnapshot.FieldID)
		for _, f := range fields {
			if !daysnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != daysnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(daysnapshot.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(daysnapshot.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(daysnapshot.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnapshotPayload(); ok {
		_spec.SetField(daysnapshot.FieldSnapshotPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSnapshotPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, daysnapshot.FieldSnapshotPayload, value)
		})
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(daysnapshot.FieldSourceSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(daysnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DaySnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daysnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
