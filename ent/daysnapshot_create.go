// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/daysnapshot"
)

// DaySnapshotCreate is the builder for creating a DaySnapshot entity.
type DaySnapshotCreate struct {
	config
	mutation *DaySnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DaySnapshotCreate) SetUserID(v int64) *DaySnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScheduleDate sets the "schedule_date" field.
func (_c *DaySnapshotCreate) SetScheduleDate(v string) *DaySnapshotCreate {
	_c.mutation.SetScheduleDate(v)
	return _c
}

// SetSnapshotPayload sets the "snapshot_payload" field.
func (_c *DaySnapshotCreate) SetSnapshotPayload(v []map[string]interface{}) *DaySnapshotCreate {
	_c.mutation.SetSnapshotPayload(v)
	return _c
}

// SetSourceSessionID sets the "source_session_id" field.
func (_c *DaySnapshotCreate) SetSourceSessionID(v string) *DaySnapshotCreate {
	_c.mutation.SetSourceSessionID(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DaySnapshotCreate) SetUpdatedAt(v time.Time) *DaySnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the DaySnapshotMutation object of the builder.
func (_c *DaySnapshotCreate) Mutation() *DaySnapshotMutation {
	return _c.mutation
}

// Save creates the DaySnapshot in the database.
func (_c *DaySnapshotCreate) Save(ctx context.Context) (*DaySnapshot, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DaySnapshotCreate) SaveX(ctx context.Context) *DaySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaySnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaySnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DaySnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DaySnapshot.user_id"`)}
	}
	if _, ok := _c.mutation.ScheduleDate(); !ok {
		return &ValidationError{Name: "schedule_date", err: errors.New(`ent: missing required field "DaySnapshot.schedule_date"`)}
	}
	if _, ok := _c.mutation.SnapshotPayload(); !ok {
		return &ValidationError{Name: "snapshot_payload", err: errors.New(`ent: missing required field "DaySnapshot.snapshot_payload"`)}
	}
	if _, ok := _c.mutation.SourceSessionID(); !ok {
		return &ValidationError{Name: "source_session_id", err: errors.New(`ent: missing required field "DaySnapshot.source_session_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DaySnapshot.updated_at"`)}
	}
	return nil
}

func (_c *DaySnapshotCreate) sqlSave(ctx context.Context) (*DaySnapshot, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DaySnapshotCreate) createSpec() (*DaySnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &DaySnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(daysnapshot.Table, sqlgraph.NewFieldSpec(daysnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(daysnapshot.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScheduleDate(); ok {
		_spec.SetField(daysnapshot.FieldScheduleDate, field.TypeString, value)
		_node.ScheduleDate = value
	}
	if value, ok := _c.mutation.SnapshotPayload(); ok {
		_spec.SetField(daysnapshot.FieldSnapshotPayload, field.TypeJSON, value)
		_node.SnapshotPayload = value
	}
	if value, ok := _c.mutation.SourceSessionID(); ok {
		_spec.SetField(daysnapshot.FieldSourceSessionID, field.TypeString, value)
		_node.SourceSessionID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(daysnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DaySnapshotCreateBulk is the builder for creating many DaySnapshot entities in bulk.
type DaySnapshotCreateBulk struct {
	config
	err      error
	builders []*DaySnapshotCreate
}

// Save creates the DaySnapshot entities in the database.
func (_c *DaySnapshotCreateBulk) Save(ctx context.Context) ([]*DaySnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DaySnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DaySnapshotMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DaySnapshotCreateBulk) SaveX(ctx context.Context) []*DaySnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaySnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaySnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
