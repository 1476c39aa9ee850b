// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skiftkoll/skiftkoll/ent/predicate"
	"github.com/skiftkoll/skiftkoll/ent/schedulenotification"
)

// ScheduleNotificationDelete is the builder for deleting a ScheduleNotification entity.
type ScheduleNotificationDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleNotificationMutation
}

// Where appends a list predicates to the ScheduleNotificationDelete builder.
func (_d *ScheduleNotificationDelete) Where(ps ...predicate.ScheduleNotification) *ScheduleNotificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScheduleNotificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleNotificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScheduleNotificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(schedulenotification.Table, sqlgraph.NewFieldSpec(schedulenotification.FieldID, field.TypeString))
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

// ScheduleNotificationDeleteOne is the builder for deleting a single ScheduleNotification entity.
type ScheduleNotificationDeleteOne struct {
	_d *ScheduleNotificationDelete
}

// Where appends a list predicates to the ScheduleNotificationDelete builder.
func (_d *ScheduleNotificationDeleteOne) Where(ps ...predicate.ScheduleNotification) *ScheduleNotificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScheduleNotificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{schedulenotification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleNotificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
