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
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// CaptureImageUpdate is the builder for updating CaptureImage entities.
type CaptureImageUpdate struct {
	config
	hooks    []Hook
	mutation *CaptureImageMutation
}

// Where appends a list predicates to the CaptureImageUpdate builder.
func (_u *CaptureImageUpdate) Where(ps ...predicate.CaptureImage) *CaptureImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CaptureImageUpdate) SetSessionID(v string) *CaptureImageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CaptureImageUpdate) SetNillableSessionID(v *string) *CaptureImageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *CaptureImageUpdate) SetSequence(v int) *CaptureImageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *CaptureImageUpdate) SetNillableSequence(v *int) *CaptureImageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *CaptureImageUpdate) AddSequence(v int) *CaptureImageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *CaptureImageUpdate) SetObjectKey(v string) *CaptureImageUpdate {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *CaptureImageUpdate) SetNillableObjectKey(v *string) *CaptureImageUpdate {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureImageUpdate) SetCreatedAt(v time.Time) *CaptureImageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureImageUpdate) SetNillableCreatedAt(v *time.Time) *CaptureImageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the CaptureSession entity.
func (_u *CaptureImageUpdate) SetSession(v *CaptureSession) *CaptureImageUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CaptureImageMutation object of the builder.
func (_u *CaptureImageUpdate) Mutation() *CaptureImageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the CaptureSession entity.
func (_u *CaptureImageUpdate) ClearSession() *CaptureImageUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaptureImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaptureImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureImageUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaptureImage.session"`)
	}
	return nil
}

func (_u *CaptureImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(captureimage.Table, captureimage.Columns, sqlgraph.NewFieldSpec(captureimage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(captureimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(captureimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(captureimage.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(captureimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{captureimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaptureImageUpdateOne is the builder for updating a single CaptureImage entity.
type CaptureImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaptureImageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CaptureImageUpdateOne) SetSessionID(v string) *CaptureImageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CaptureImageUpdateOne) SetNillableSessionID(v *string) *CaptureImageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *CaptureImageUpdateOne) SetSequence(v int) *CaptureImageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *CaptureImageUpdateOne) SetNillableSequence(v *int) *CaptureImageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *CaptureImageUpdateOne) AddSequence(v int) *CaptureImageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *CaptureImageUpdateOne) SetObjectKey(v string) *CaptureImageUpdateOne {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *CaptureImageUpdateOne) SetNillableObjectKey(v *string) *CaptureImageUpdateOne {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureImageUpdateOne) SetCreatedAt(v time.Time) *CaptureImageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureImageUpdateOne) SetNillableCreatedAt(v *time.Time) *CaptureImageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the CaptureSession entity.
func (_u *CaptureImageUpdateOne) SetSession(v *CaptureSession) *CaptureImageUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CaptureImageMutation object of the builder.
func (_u *CaptureImageUpdateOne) Mutation() *CaptureImageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the CaptureSession entity.
func (_u *CaptureImageUpdateOne) ClearSession() *CaptureImageUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the CaptureImageUpdate builder.
func (_u *CaptureImageUpdateOne) Where(ps ...predicate.CaptureImage) *CaptureImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaptureImageUpdateOne) Select(field string, fields ...string) *CaptureImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaptureImage entity.
func (_u *CaptureImageUpdateOne) Save(ctx context.Context) (*CaptureImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureImageUpdateOne) SaveX(ctx context.Context) *CaptureImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaptureImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureImageUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CaptureImage.session"`)
	}
	return nil
}

func (_u *CaptureImageUpdateOne) sqlSave(ctx context.Context) (_node *CaptureImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(captureimage.Table, captureimage.Columns, sqlgraph.NewFieldSpec(captureimage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaptureImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, captureimage.FieldID)
		for _, f := range fields {
			if !captureimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != captureimage.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(captureimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(captureimage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(captureimage.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(captureimage.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaptureImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{captureimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
