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
	"github.com/skiftkoll/skiftkoll/ent/predicate"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

// ScheduleNotificationUpdate is the builder for updating ScheduleNotification entities.
type ScheduleNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleNotificationMutation
}

// Where appends a list predicates to the ScheduleNotificationUpdate builder.
func (_u *ScheduleNotificationUpdate) Where(ps ...predicate.ScheduleNotification) *ScheduleNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleNotificationUpdate) SetUserID(v int64) *ScheduleNotificationUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableUserID(v *int64) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ScheduleNotificationUpdate) AddUserID(v int64) *ScheduleNotificationUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *ScheduleNotificationUpdate) SetScheduleDate(v string) *ScheduleNotificationUpdate {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableScheduleDate(v *string) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *ScheduleNotificationUpdate) SetSourceSessionID(v string) *ScheduleNotificationUpdate {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableSourceSessionID(v *string) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleNotificationUpdate) SetStatus(v string) *ScheduleNotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableStatus(v *string) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotificationType sets the "notification_type" field.
func (_u *ScheduleNotificationUpdate) SetNotificationType(v string) *ScheduleNotificationUpdate {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableNotificationType(v *string) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScheduleNotificationUpdate) SetMessage(v string) *ScheduleNotificationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableMessage(v *string) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetEventIds sets the "event_ids" field.
func (_u *ScheduleNotificationUpdate) SetEventIds(v []string) *ScheduleNotificationUpdate {
	_u.mutation.SetEventIds(v)
	return _u
}

// AppendEventIds appends value to the "event_ids" field.
func (_u *ScheduleNotificationUpdate) AppendEventIds(v []string) *ScheduleNotificationUpdate {
	_u.mutation.AppendEventIds(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScheduleNotificationUpdate) SetCreatedAt(v time.Time) *ScheduleNotificationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableCreatedAt(v *time.Time) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduleNotificationUpdate) SetSentAt(v time.Time) *ScheduleNotificationUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduleNotificationUpdate) SetNillableSentAt(v *time.Time) *ScheduleNotificationUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduleNotificationUpdate) ClearSentAt() *ScheduleNotificationUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ScheduleNotificationMutation object of the builder.
func (_u *ScheduleNotificationUpdate) Mutation() *ScheduleNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleNotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulenotification.Table, schedulenotification.Columns, sqlgraph.NewFieldSpec(schedulenotification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(schedulenotification.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(schedulenotification.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(schedulenotification.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(schedulenotification.FieldSourceSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulenotification.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(schedulenotification.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(schedulenotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventIds(); ok {
		_spec.SetField(schedulenotification.FieldEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulenotification.FieldEventIds, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(schedulenotification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(schedulenotification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(schedulenotification.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulenotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleNotificationUpdateOne is the builder for updating a single ScheduleNotification entity.
type ScheduleNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleNotificationMutation
}

// SetUserID sets the "user_id" field.
func (_u *ScheduleNotificationUpdateOne) SetUserID(v int64) *ScheduleNotificationUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableUserID(v *int64) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ScheduleNotificationUpdateOne) AddUserID(v int64) *ScheduleNotificationUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetScheduleDate sets the "schedule_date" field.
func (_u *ScheduleNotificationUpdateOne) SetScheduleDate(v string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetScheduleDate(v)
	return _u
}

// SetNillableScheduleDate sets the "schedule_date" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableScheduleDate(v *string) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetScheduleDate(*v)
	}
	return _u
}

// SetSourceSessionID sets the "source_session_id" field.
func (_u *ScheduleNotificationUpdateOne) SetSourceSessionID(v string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetSourceSessionID(v)
	return _u
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableSourceSessionID(v *string) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetSourceSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduleNotificationUpdateOne) SetStatus(v string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableStatus(v *string) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotificationType sets the "notification_type" field.
func (_u *ScheduleNotificationUpdateOne) SetNotificationType(v string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableNotificationType(v *string) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScheduleNotificationUpdateOne) SetMessage(v string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableMessage(v *string) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetEventIds sets the "event_ids" field.
func (_u *ScheduleNotificationUpdateOne) SetEventIds(v []string) *ScheduleNotificationUpdateOne {
	_u.mutation.SetEventIds(v)
	return _u
}

// AppendEventIds appends value to the "event_ids" field.
func (_u *ScheduleNotificationUpdateOne) AppendEventIds(v []string) *ScheduleNotificationUpdateOne {
	_u.mutation.AppendEventIds(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ScheduleNotificationUpdateOne) SetCreatedAt(v time.Time) *ScheduleNotificationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableCreatedAt(v *time.Time) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ScheduleNotificationUpdateOne) SetSentAt(v time.Time) *ScheduleNotificationUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ScheduleNotificationUpdateOne) SetNillableSentAt(v *time.Time) *ScheduleNotificationUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ScheduleNotificationUpdateOne) ClearSentAt() *ScheduleNotificationUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the ScheduleNotificationMutation object of the builder.
func (_u *ScheduleNotificationUpdateOne) Mutation() *ScheduleNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleNotificationUpdate builder.
func (_u *ScheduleNotificationUpdateOne) Where(ps ...predicate.ScheduleNotification) *ScheduleNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleNotificationUpdateOne) Select(field string, fields ...string) *ScheduleNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleNotification entity.
func (_u *ScheduleNotificationUpdateOne) Save(ctx context.Context) (*ScheduleNotification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleNotificationUpdateOne) SaveX(ctx context.Context) *ScheduleNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScheduleNotificationUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleNotification, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedulenotification.Table, schedulenotification.Columns, sqlgraph.NewFieldSpec(schedulenotification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulenotification.FieldID)
		for _, f := range fields {
			if !schedulenotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedulenotification.FieldID {
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
		_spec.SetField(schedulenotification.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(schedulenotification.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScheduleDate(); ok {
		_spec.SetField(schedulenotification.FieldScheduleDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceSessionID(); ok {
		_spec.SetField(schedulenotification.FieldSourceSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(schedulenotification.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(schedulenotification.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(schedulenotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventIds(); ok {
		_spec.SetField(schedulenotification.FieldEventIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEventIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, schedulenotification.FieldEventIds, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(schedulenotification.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(schedulenotification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(schedulenotification.FieldSentAt, field.TypeTime)
	}
	_node = &ScheduleNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulenotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
