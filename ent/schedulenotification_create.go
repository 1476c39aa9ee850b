// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

// ScheduleNotificationCreate is the builder for creating a ScheduleNotification entity.
type ScheduleNotificationCreate struct {
	config
	mutation *ScheduleNotificationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ScheduleNotificationCreate) SetUserID(v int64) *ScheduleNotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScheduleDate sets the "schedule_date" field.
func (_c *ScheduleNotificationCreate) SetScheduleDate(v string) *ScheduleNotificationCreate {
	_c.mutation.SetScheduleDate(v)
	return _c
}

// SetSourceSessionID sets the "source_session_id" field.
func (_c *ScheduleNotificationCreate) SetSourceSessionID(v string) *ScheduleNotificationCreate {
	_c.mutation.SetSourceSessionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduleNotificationCreate) SetStatus(v string) *ScheduleNotificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduleNotificationCreate) SetNillableStatus(v *string) *ScheduleNotificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotificationType sets the "notification_type" field.
func (_c *ScheduleNotificationCreate) SetNotificationType(v string) *ScheduleNotificationCreate {
	_c.mutation.SetNotificationType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ScheduleNotificationCreate) SetMessage(v string) *ScheduleNotificationCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetEventIds sets the "event_ids" field.
func (_c *ScheduleNotificationCreate) SetEventIds(v []string) *ScheduleNotificationCreate {
	_c.mutation.SetEventIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleNotificationCreate) SetCreatedAt(v time.Time) *ScheduleNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ScheduleNotificationCreate) SetSentAt(v time.Time) *ScheduleNotificationCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ScheduleNotificationCreate) SetNillableSentAt(v *time.Time) *ScheduleNotificationCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleNotificationCreate) SetID(v string) *ScheduleNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduleNotificationMutation object of the builder.
func (_c *ScheduleNotificationCreate) Mutation() *ScheduleNotificationMutation {
	return _c.mutation
}

// Save creates the ScheduleNotification in the database.
func (_c *ScheduleNotificationCreate) Save(ctx context.Context) (*ScheduleNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleNotificationCreate) SaveX(ctx context.Context) *ScheduleNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleNotificationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := schedulenotification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleNotificationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScheduleNotification.user_id"`)}
	}
	if _, ok := _c.mutation.ScheduleDate(); !ok {
		return &ValidationError{Name: "schedule_date", err: errors.New(`ent: missing required field "ScheduleNotification.schedule_date"`)}
	}
	if _, ok := _c.mutation.SourceSessionID(); !ok {
		return &ValidationError{Name: "source_session_id", err: errors.New(`ent: missing required field "ScheduleNotification.source_session_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduleNotification.status"`)}
	}
	if _, ok := _c.mutation.NotificationType(); !ok {
		return &ValidationError{Name: "notification_type", err: errors.New(`ent: missing required field "ScheduleNotification.notification_type"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ScheduleNotification.message"`)}
	}
	if _, ok := _c.mutation.EventIds(); !ok {
		return &ValidationError{Name: "event_ids", err: errors.New(`ent: missing required field "ScheduleNotification.event_ids"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduleNotification.created_at"`)}
	}
	return nil
}

func (_c *ScheduleNotificationCreate) sqlSave(ctx context.Context) (*ScheduleNotification, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduleNotification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleNotificationCreate) createSpec() (*ScheduleNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulenotification.Table, sqlgraph.NewFieldSpec(schedulenotification.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(schedulenotification.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScheduleDate(); ok {
		_spec.SetField(schedulenotification.FieldScheduleDate, field.TypeString, value)
		_node.ScheduleDate = value
	}
	if value, ok := _c.mutation.SourceSessionID(); ok {
		_spec.SetField(schedulenotification.FieldSourceSessionID, field.TypeString, value)
		_node.SourceSessionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedulenotification.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NotificationType(); ok {
		_spec.SetField(schedulenotification.FieldNotificationType, field.TypeString, value)
		_node.NotificationType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(schedulenotification.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.EventIds(); ok {
		_spec.SetField(schedulenotification.FieldEventIds, field.TypeJSON, value)
		_node.EventIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedulenotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(schedulenotification.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	return _node, _spec
}

// ScheduleNotificationCreateBulk is the builder for creating many ScheduleNotification entities in bulk.
type ScheduleNotificationCreateBulk struct {
	config
	err      error
	builders []*ScheduleNotificationCreate
}

// Save creates the ScheduleNotification entities in the database.
func (_c *ScheduleNotificationCreateBulk) Save(ctx context.Context) ([]*ScheduleNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleNotificationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduleNotificationCreateBulk) SaveX(ctx context.Context) []*ScheduleNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
