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

// CaptureImageCreate is the builder for creating a CaptureImage entity.
type CaptureImageCreate struct {
	config
	mutation *CaptureImageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CaptureImageCreate) SetSessionID(v string) *CaptureImageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *CaptureImageCreate) SetSequence(v int) *CaptureImageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *CaptureImageCreate) SetObjectKey(v string) *CaptureImageCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaptureImageCreate) SetCreatedAt(v time.Time) *CaptureImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaptureImageCreate) SetNillableCreatedAt(v *time.Time) *CaptureImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaptureImageCreate) SetID(v string) *CaptureImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the CaptureSession entity.
func (_c *CaptureImageCreate) SetSession(v *CaptureSession) *CaptureImageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CaptureImageMutation object of the builder.
func (_c *CaptureImageCreate) Mutation() *CaptureImageMutation {
	return _c.mutation
}

// Save creates the CaptureImage in the database.
func (_c *CaptureImageCreate) Save(ctx context.Context) (*CaptureImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaptureImageCreate) SaveX(ctx context.Context) *CaptureImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaptureImageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := captureimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaptureImageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CaptureImage.session_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CaptureImage.sequence"`)}
	}
	if _, ok := _c.mutation.ObjectKey(); !ok {
		return &ValidationError{Name: "object_key", err: errors.New(`ent: missing required field "CaptureImage.object_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaptureImage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "CaptureImage.session"`)}
	}
	return nil
}

func (_c *CaptureImageCreate) sqlSave(ctx context.Context) (*CaptureImage, error) {
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
			return nil, fmt.Errorf("unexpected CaptureImage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaptureImageCreate) createSpec() (*CaptureImage, *sqlgraph.CreateSpec) {
	var (
		_node = &CaptureImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(captureimage.Table, sqlgraph.NewFieldSpec(captureimage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(captureimage.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(captureimage.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(captureimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   captureimage.SessionTable,
			Columns: []string{captureimage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CaptureImageCreateBulk is the builder for creating many CaptureImage entities in bulk.
type CaptureImageCreateBulk struct {
	config
	err      error
	builders []*CaptureImageCreate
}

// Save creates the CaptureImage entities in the database.
func (_c *CaptureImageCreateBulk) Save(ctx context.Context) ([]*CaptureImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaptureImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaptureImageMutation)
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
func (_c *CaptureImageCreateBulk) SaveX(ctx context.Context) []*CaptureImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
