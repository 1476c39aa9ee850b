// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
	"github.com/skiftkoll/skiftkoll/ent/scheduleevent"
)

// ScheduleEventUpdate is the builder for updating ScheduleEvent entities.
type ScheduleEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleEventMutation
}

// Where appends a list predicates to the ScheduleEventUpdate builder.
func (_u *ScheduleEventUpdate) Where(ps ...predicate.ScheduleEvent) *ScheduleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleEventUpdate) SetUserID(v int64) *ScheduleEventUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableUserID(v *int64) *ScheduleEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ScheduleEventUpdate) AddUserID(v int64) *ScheduleEventUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *ScheduleEventUpdate) SetScheduleDate(v string) *ScheduleEventUpdate {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableScheduleDate(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ScheduleEventUpdate) SetEventType(v string) *ScheduleEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableEventType(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetLocationFingerprint sets the "location_fingerprint" field.
func (_u *ScheduleEventUpdate) SetLocationFingerprint(v string) *ScheduleEventUpdate {
	_u.mutation.SetLocationFingerprint(v)
	return _u
}

// SetNillableLocationFingerprint sets the "location_fingerprint" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableLocationFingerprint(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetLocationFingerprint(*v)
	}
	return _u
}

// SetCustomerFingerprint sets the "customer_fingerprint" field.
func (_u *ScheduleEventUpdate) SetCustomerFingerprint(v string) *ScheduleEventUpdate {
	_u.mutation.SetCustomerFingerprint(v)
	return _u
}

// SetNillableCustomerFingerprint sets the "customer_fingerprint" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableCustomerFingerprint(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetCustomerFingerprint(*v)
	}
	return _u
}

// SetOldValueHash sets the "old_value_hash" field.
func (_u *ScheduleEventUpdate) SetOldValueHash(v string) *ScheduleEventUpdate {
	_u.mutation.SetOldValueHash(v)
	return _u
}

// SetNillableOldValueHash sets the "old_value_hash" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableOldValueHash(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetOldValueHash(*v)
	}
	return _u
}

// SetNewValueHash sets the "new_value_hash" field.
func (_u *ScheduleEventUpdate) SetNewValueHash(v string) *ScheduleEventUpdate {
	_u.mutation.SetNewValueHash(v)
	return _u
}

// SetNillableNewValueHash sets the "new_value_hash" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableNewValueHash(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetNewValueHash(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ScheduleEventUpdate) SetOldValue(v map[string]interface{}) *ScheduleEventUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *ScheduleEventUpdate) ClearOldValue() *ScheduleEventUpdate {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ScheduleEventUpdate) SetNewValue(v map[string]interface{}) *ScheduleEventUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *ScheduleEventUpdate) ClearNewValue() *ScheduleEventUpdate {
	_u.mutation.ClearNewValue()
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *ScheduleEventUpdate) SetDetectedAt(v time.Time) *ScheduleEventUpdate {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableDetectedAt(v *time.Time) *ScheduleEventUpdate {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *ScheduleEventUpdate) SetSourceSessionID(v string) *ScheduleEventUpdate {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *ScheduleEventUpdate) SetNillableSourceSessionID(v *string) *ScheduleEventUpdate {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_u *ScheduleEventUpdate) Mutation() *ScheduleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduleevent.Table, scheduleevent.Columns, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scheduleevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(scheduleevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(scheduleevent.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(scheduleevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldLocationFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldCustomerFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValueHash(); ok {
		_spec.SetField(scheduleevent.FieldOldValueHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewValueHash(); ok {
		_spec.SetField(scheduleevent.FieldNewValueHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(scheduleevent.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(scheduleevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(scheduleevent.FieldNewValue, field.TypeJSON, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(scheduleevent.FieldNewValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(scheduleevent.FieldDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(scheduleevent.FieldSourceSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleEventUpdateOne is the builder for updating a single ScheduleEvent entity.
type ScheduleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleEventUpdateOne) SetUserID(v int64) *ScheduleEventUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableUserID(v *int64) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ScheduleEventUpdateOne) AddUserID(v int64) *ScheduleEventUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *ScheduleEventUpdateOne) SetScheduleDate(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableScheduleDate(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *ScheduleEventUpdateOne) SetEventType(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableEventType(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetLocationFingerprint sets the "location_fingerprint" field.
func (_u *ScheduleEventUpdateOne) SetLocationFingerprint(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetLocationFingerprint(v)
	return _u
}

// SetNillableLocationFingerprint sets the "location_fingerprint" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableLocationFingerprint(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetLocationFingerprint(*v)
	}
	return _u
}

// SetCustomerFingerprint sets the "customer_fingerprint" field.
func (_u *ScheduleEventUpdateOne) SetCustomerFingerprint(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetCustomerFingerprint(v)
	return _u
}

// SetNillableCustomerFingerprint sets the "customer_fingerprint" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableCustomerFingerprint(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetCustomerFingerprint(*v)
	}
	return _u
}

// SetOldValueHash sets the "old_value_hash" field.
func (_u *ScheduleEventUpdateOne) SetOldValueHash(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetOldValueHash(v)
	return _u
}

// SetNillableOldValueHash sets the "old_value_hash" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableOldValueHash(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetOldValueHash(*v)
	}
	return _u
}

// SetNewValueHash sets the "new_value_hash" field.
func (_u *ScheduleEventUpdateOne) SetNewValueHash(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetNewValueHash(v)
	return _u
}

// SetNillableNewValueHash sets the "new_value_hash" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableNewValueHash(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetNewValueHash(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ScheduleEventUpdateOne) SetOldValue(v map[string]interface{}) *ScheduleEventUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *ScheduleEventUpdateOne) ClearOldValue() *ScheduleEventUpdateOne {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ScheduleEventUpdateOne) SetNewValue(v map[string]interface{}) *ScheduleEventUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *ScheduleEventUpdateOne) ClearNewValue() *ScheduleEventUpdateOne {
	_u.mutation.ClearNewValue()
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *ScheduleEventUpdateOne) SetDetectedAt(v time.Time) *ScheduleEventUpdateOne {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableDetectedAt(v *time.Time) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *ScheduleEventUpdateOne) SetSourceSessionID(v string) *ScheduleEventUpdateOne {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *ScheduleEventUpdateOne) SetNillableSourceSessionID(v *string) *ScheduleEventUpdateOne {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_u *ScheduleEventUpdateOne) Mutation() *ScheduleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleEventUpdate builder.
func (_u *ScheduleEventUpdateOne) Where(ps ...predicate.ScheduleEvent) *ScheduleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleEventUpdateOne) Select(field string, fields ...string) *ScheduleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleEvent entity.
func (_u *ScheduleEventUpdateOne) Save(ctx context.Context) (*ScheduleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleEventUpdateOne) SaveX(ctx context.Context) *ScheduleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleEventUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(scheduleevent.Table, scheduleevent.Columns, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleevent.FieldID)
		for _, f := range fields {
			if !scheduleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleevent.FieldID {
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
		_spec.SetField(scheduleevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(scheduleevent.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(scheduleevent.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(scheduleevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LocationFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldLocationFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldCustomerFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValueHash(); ok {
		_spec.SetField(scheduleevent.FieldOldValueHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewValueHash(); ok {
		_spec.SetField(scheduleevent.FieldNewValueHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(scheduleevent.FieldOldValue, field.TypeJSON, value)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(scheduleevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(scheduleevent.FieldNewValue, field.TypeJSON, value)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(scheduleevent.FieldNewValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(scheduleevent.FieldDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(scheduleevent.FieldSourceSessionID, field.TypeString, value)
	}
	_node = &ScheduleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
