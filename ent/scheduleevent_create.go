// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/scheduleevent"
)

// ScheduleEventCreate is the builder for creating a ScheduleEvent entity.
type ScheduleEventCreate struct {
	config
	mutation *ScheduleEventMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ScheduleEventCreate) SetUserID(v int64) *ScheduleEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScheduleDate sets the "schedule_date" field.
func (_c *ScheduleEventCreate) SetScheduleDate(v string) *ScheduleEventCreate {
	_c.mutation.SetScheduleDate(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ScheduleEventCreate) SetEventType(v string) *ScheduleEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetLocationFingerprint sets the "location_fingerprint" field.
func (_c *ScheduleEventCreate) SetLocationFingerprint(v string) *ScheduleEventCreate {
	_c.mutation.SetLocationFingerprint(v)
	return _c
}

// SetCustomerFingerprint sets the "customer_fingerprint" field.
func (_c *ScheduleEventCreate) SetCustomerFingerprint(v string) *ScheduleEventCreate {
	_c.mutation.SetCustomerFingerprint(v)
	return _c
}

// SetOldValueHash sets the "old_value_hash" field.
func (_c *ScheduleEventCreate) SetOldValueHash(v string) *ScheduleEventCreate {
	_c.mutation.SetOldValueHash(v)
	return _c
}

// SetNewValueHash sets the "new_value_hash" field.
func (_c *ScheduleEventCreate) SetNewValueHash(v string) *ScheduleEventCreate {
	_c.mutation.SetNewValueHash(v)
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *ScheduleEventCreate) SetOldValue(v map[string]interface{}) *ScheduleEventCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *ScheduleEventCreate) SetNewValue(v map[string]interface{}) *ScheduleEventCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *ScheduleEventCreate) SetDetectedAt(v time.Time) *ScheduleEventCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetSourceSessionID sets the "source_session_id" field.
func (_c *ScheduleEventCreate) SetSourceSessionID(v string) *ScheduleEventCreate {
	_c.mutation.SetSourceSessionID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleEventCreate) SetID(v string) *ScheduleEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduleEventMutation object of the builder.
func (_c *ScheduleEventCreate) Mutation() *ScheduleEventMutation {
	return _c.mutation
}

// Save creates the ScheduleEvent in the database.
func (_c *ScheduleEventCreate) Save(ctx context.Context) (*ScheduleEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleEventCreate) SaveX(ctx context.Context) *ScheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScheduleEvent.user_id"`)}
	}
	if _, ok := _c.mutation.ScheduleDate(); !ok {
		return &ValidationError{Name: "schedule_date", err: errors.New(`ent: missing required field "ScheduleEvent.schedule_date"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ScheduleEvent.event_type"`)}
	}
	if _, ok := _c.mutation.LocationFingerprint(); !ok {
		return &ValidationError{Name: "location_fingerprint", err: errors.New(`ent: missing required field "ScheduleEvent.location_fingerprint"`)}
	}
	if _, ok := _c.mutation.CustomerFingerprint(); !ok {
		return &ValidationError{Name: "customer_fingerprint", err: errors.New(`ent: missing required field "ScheduleEvent.customer_fingerprint"`)}
	}
	if _, ok := _c.mutation.OldValueHash(); !ok {
		return &ValidationError{Name: "old_value_hash", err: errors.New(`ent: missing required field "ScheduleEvent.old_value_hash"`)}
	}
	if _, ok := _c.mutation.NewValueHash(); !ok {
		return &ValidationError{Name: "new_value_hash", err: errors.New(`ent: missing required field "ScheduleEvent.new_value_hash"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "ScheduleEvent.detected_at"`)}
	}
	if _, ok := _c.mutation.SourceSessionID(); !ok {
		return &ValidationError{Name: "source_session_id", err: errors.New(`ent: missing required field "ScheduleEvent.source_session_id"`)}
	}
	return nil
}

func (_c *ScheduleEventCreate) sqlSave(ctx context.Context) (*ScheduleEvent, error) {
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
			return nil, fmt.Errorf("unexpected ScheduleEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleEventCreate) createSpec() (*ScheduleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduleevent.Table, sqlgraph.NewFieldSpec(scheduleevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scheduleevent.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScheduleDate(); ok {
		_spec.SetField(scheduleevent.FieldScheduleDate, field.TypeString, value)
		_node.ScheduleDate = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(scheduleevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.LocationFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldLocationFingerprint, field.TypeString, value)
		_node.LocationFingerprint = value
	}
	if value, ok := _c.mutation.CustomerFingerprint(); ok {
		_spec.SetField(scheduleevent.FieldCustomerFingerprint, field.TypeString, value)
		_node.CustomerFingerprint = value
	}
	if value, ok := _c.mutation.OldValueHash(); ok {
		_spec.SetField(scheduleevent.FieldOldValueHash, field.TypeString, value)
		_node.OldValueHash = value
	}
	if value, ok := _c.mutation.NewValueHash(); ok {
		_spec.SetField(scheduleevent.FieldNewValueHash, field.TypeString, value)
		_node.NewValueHash = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(scheduleevent.FieldOldValue, field.TypeJSON, value)
		_node.OldValue = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(scheduleevent.FieldNewValue, field.TypeJSON, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(scheduleevent.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.SourceSessionID(); ok {
		_spec.SetField(scheduleevent.FieldSourceSessionID, field.TypeString, value)
		_node.SourceSessionID = value
	}
	return _node, _spec
}

// ScheduleEventCreateBulk is the builder for creating many ScheduleEvent entities in bulk.
type ScheduleEventCreateBulk struct {
	config
	err      error
	builders []*ScheduleEventCreate
}

// Save creates the ScheduleEvent entities in the database.
func (_c *ScheduleEventCreateBulk) Save(ctx context.Context) ([]*ScheduleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleEventMutation)
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
func (_c *ScheduleEventCreateBulk) SaveX(ctx context.Context) []*ScheduleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
