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

// CaptureSessionUpdate is the builder for updating CaptureSession entities.
type CaptureSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CaptureSessionMutation
}

// Where appends a list predicates to the CaptureSessionUpdate builder.
func (_u *CaptureSessionUpdate) Where(ps ...predicate.CaptureSession) *CaptureSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CaptureSessionUpdate) SetUserID(v int64) *CaptureSessionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableUserID(v *int64) *CaptureSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CaptureSessionUpdate) AddUserID(v int64) *CaptureSessionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CaptureSessionUpdate) SetState(v string) *CaptureSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableState(v *string) *CaptureSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureSessionUpdate) SetCreatedAt(v time.Time) *CaptureSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableCreatedAt(v *time.Time) *CaptureSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaptureSessionUpdate) SetErrorMessage(v string) *CaptureSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableErrorMessage(v *string) *CaptureSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaptureSessionUpdate) ClearErrorMessage() *CaptureSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *CaptureSessionUpdate) SetLockedBy(v string) *CaptureSessionUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableLockedBy(v *string) *CaptureSessionUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *CaptureSessionUpdate) ClearLockedBy() *CaptureSessionUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *CaptureSessionUpdate) SetLockedAt(v time.Time) *CaptureSessionUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *CaptureSessionUpdate) SetNillableLockedAt(v *time.Time) *CaptureSessionUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *CaptureSessionUpdate) ClearLockedAt() *CaptureSessionUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// AddImageIDs adds the "images" edge to the CaptureImage entity by IDs.
func (_u *CaptureSessionUpdate) AddImageIDs(ids ...string) *CaptureSessionUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the CaptureImage entity.
func (_u *CaptureSessionUpdate) AddImages(v ...*CaptureImage) *CaptureSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_u *CaptureSessionUpdate) Mutation() *CaptureSessionMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the CaptureImage entity.
func (_u *CaptureSessionUpdate) ClearImages() *CaptureSessionUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to CaptureImage entities by IDs.
func (_u *CaptureSessionUpdate) RemoveImageIDs(ids ...string) *CaptureSessionUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to CaptureImage entities.
func (_u *CaptureSessionUpdate) RemoveImages(v ...*CaptureImage) *CaptureSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaptureSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaptureSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CaptureSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(capturesession.Table, capturesession.Columns, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(capturesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(capturesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(capturesession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(capturesession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(capturesession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(capturesession.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(capturesession.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(capturesession.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(capturesession.FieldLockedAt, field.TypeTime)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaptureSessionUpdateOne is the builder for updating a single CaptureSession entity.
type CaptureSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaptureSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *CaptureSessionUpdateOne) SetUserID(v int64) *CaptureSessionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableUserID(v *int64) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *CaptureSessionUpdateOne) AddUserID(v int64) *CaptureSessionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CaptureSessionUpdateOne) SetState(v string) *CaptureSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableState(v *string) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CaptureSessionUpdateOne) SetCreatedAt(v time.Time) *CaptureSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaptureSessionUpdateOne) SetErrorMessage(v string) *CaptureSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableErrorMessage(v *string) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaptureSessionUpdateOne) ClearErrorMessage() *CaptureSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *CaptureSessionUpdateOne) SetLockedBy(v string) *CaptureSessionUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableLockedBy(v *string) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *CaptureSessionUpdateOne) ClearLockedBy() *CaptureSessionUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *CaptureSessionUpdateOne) SetLockedAt(v time.Time) *CaptureSessionUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *CaptureSessionUpdateOne) SetNillableLockedAt(v *time.Time) *CaptureSessionUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *CaptureSessionUpdateOne) ClearLockedAt() *CaptureSessionUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// AddImageIDs adds the "images" edge to the CaptureImage entity by IDs.
func (_u *CaptureSessionUpdateOne) AddImageIDs(ids ...string) *CaptureSessionUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the CaptureImage entity.
func (_u *CaptureSessionUpdateOne) AddImages(v ...*CaptureImage) *CaptureSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// Mutation returns the CaptureSessionMutation object of the builder.
func (_u *CaptureSessionUpdateOne) Mutation() *CaptureSessionMutation {
	return _u.mutation
}

// ClearImages clears all "images" edges to the CaptureImage entity.
func (_u *CaptureSessionUpdateOne) ClearImages() *CaptureSessionUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to CaptureImage entities by IDs.
func (_u *CaptureSessionUpdateOne) RemoveImageIDs(ids ...string) *CaptureSessionUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to CaptureImage entities.
func (_u *CaptureSessionUpdateOne) RemoveImages(v ...*CaptureImage) *CaptureSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// Where appends a list predicates to the CaptureSessionUpdate builder.
func (_u *CaptureSessionUpdateOne) Where(ps ...predicate.CaptureSession) *CaptureSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaptureSessionUpdateOne) Select(field string, fields ...string) *CaptureSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaptureSession entity.
func (_u *CaptureSessionUpdateOne) Save(ctx context.Context) (*CaptureSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureSessionUpdateOne) SaveX(ctx context.Context) *CaptureSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaptureSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CaptureSessionUpdateOne) sqlSave(ctx context.Context) (_node *CaptureSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(capturesession.Table, capturesession.Columns, sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaptureSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capturesession.FieldID)
		for _, f := range fields {
			if !capturesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capturesession.FieldID {
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
		_spec.SetField(capturesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(capturesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(capturesession.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(capturesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(capturesession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(capturesession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(capturesession.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(capturesession.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(capturesession.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(capturesession.FieldLockedAt, field.TypeTime)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaptureSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capturesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
