// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/captureimage"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
)

// CaptureImageDelete is the builder for deleting a CaptureImage entity.
type CaptureImageDelete struct {
	config
	hooks    []Hook
	mutation *CaptureImageMutation
}

// Where appends a list predicates to the CaptureImageDelete builder.
func (_d *CaptureImageDelete) Where(ps ...predicate.CaptureImage) *CaptureImageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CaptureImageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaptureImageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CaptureImageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(captureimage.Table, sqlgraph.NewFieldSpec(captureimage.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CaptureImageDeleteOne is the builder for deleting a single CaptureImage entity.
type CaptureImageDeleteOne struct {
	_d *CaptureImageDelete
}

// Where appends a list predicates to the CaptureImageDelete builder.
func (_d *CaptureImageDeleteOne) Where(ps ...predicate.CaptureImage) *CaptureImageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CaptureImageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{captureimage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CaptureImageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
