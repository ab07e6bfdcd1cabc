// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/projectautonomy"
)

// ProjectAutonomyDelete is the builder for deleting a ProjectAutonomy entity.
type ProjectAutonomyDelete struct {
	config
	hooks    []Hook
	mutation *ProjectAutonomyMutation
}

// Where appends a list predicates to the ProjectAutonomyDelete builder.
func (_d *ProjectAutonomyDelete) Where(ps ...predicate.ProjectAutonomy) *ProjectAutonomyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProjectAutonomyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectAutonomyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProjectAutonomyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(projectautonomy.Table, sqlgraph.NewFieldSpec(projectautonomy.FieldID, field.TypeInt))
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

// ProjectAutonomyDeleteOne is the builder for deleting a single ProjectAutonomy entity.
type ProjectAutonomyDeleteOne struct {
	_d *ProjectAutonomyDelete
}

// Where appends a list predicates to the ProjectAutonomyDelete builder.
func (_d *ProjectAutonomyDeleteOne) Where(ps ...predicate.ProjectAutonomy) *ProjectAutonomyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProjectAutonomyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{projectautonomy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProjectAutonomyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
