// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
)

// CaptureSessionCreate is the builder for creating a CaptureSession entity.
type CaptureSessionCreate struct {
	config
	mutation *CaptureSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CaptureSessionCreate) SetUserID(v int64) *CaptureSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CaptureSessionCreate) SetState(v string) *CaptureSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableState(v *string) *CaptureSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaptureSessionCreate) SetCreatedAt(v time.Time) *CaptureSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableCreatedAt(v *time.Time) *CaptureSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CaptureSessionCreate) SetErrorMessage(v string) *CaptureSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableErrorMessage(v *string) *CaptureSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *CaptureSessionCreate) SetLockedBy(v string) *CaptureSessionCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableLockedBy(v *string) *CaptureSessionCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *CaptureSessionCreate) SetLockedAt(v time.Time) *CaptureSessionCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *CaptureSessionCreate) SetNillableLockedAt(v *time.Time) *CaptureSessionCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaptureSessionCreate) SetID(v string) *CaptureSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddImageIDs adds the "images" edge to the CaptureImage entity by IDs.
func (_c *CaptureSessionCreate) AddImageIDs(ids ...string) *CaptureSessionCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the CaptureImage entity.
func (_c *CaptureSessionCreate) AddImages(v ...*CaptureImage) *CaptureSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_c *CaptureSessionCreate) Mutation() *CaptureSessionMutation {
	return _c.mutation
}

// Save creates the CaptureSession in the database.
func (_c *CaptureSessionCreate) Save(ctx context.Context) (*CaptureSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaptureSessionCreate) SaveX(ctx context.Context) *CaptureSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaptureSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := capturesession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := capturesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaptureSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CaptureSession.user_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CaptureSession.state"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaptureSession.created_at"`)}
	}
	return nil
}

func (_c *CaptureSessionCreate) sqlSave(ctx context.Context) (*CaptureSession, error) {
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
			return nil, fmt.Errorf("unexpected CaptureSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaptureSessionCreate) createSpec() (*CaptureSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CaptureSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(capturesession.Table, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(capturesession.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(capturesession.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(capturesession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(capturesession.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(capturesession.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   capturesession.ImagesTable,
			Columns: []string{capturesession.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(captureimage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaptureSessionCreateBulk is the builder for creating many CaptureSession entities in bulk.
type CaptureSessionCreateBulk struct {
	config
	err      error
	builders []*CaptureSessionCreate
}

// Save creates the CaptureSession entities in the database.
func (_c *CaptureSessionCreateBulk) Save(ctx context.Context) ([]*CaptureSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaptureSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaptureSessionMutation)
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
func (_c *CaptureSessionCreateBulk) SaveX(ctx context.Context) []*CaptureSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
