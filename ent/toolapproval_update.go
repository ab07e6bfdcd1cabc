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
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// ToolApprovalUpdate is the builder for updating ToolApproval entities.
type ToolApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ToolApprovalMutation
}

// Where appends a list predicates to the ToolApprovalUpdate builder.
func (_u *ToolApprovalUpdate) Where(ps ...predicate.ToolApproval) *ToolApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolApprovalUpdate) SetToolName(v string) *ToolApprovalUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolApprovalUpdate) SetNillableToolName(v *string) *ToolApprovalUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetApproved sets the "approved" field.
func (_u *ToolApprovalUpdate) SetApproved(v bool) *ToolApprovalUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *ToolApprovalUpdate) SetNillableApproved(v *bool) *ToolApprovalUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ToolApprovalUpdate) SetApprovedAt(v time.Time) *ToolApprovalUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ToolApprovalUpdate) SetNillableApprovedAt(v *time.Time) *ToolApprovalUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ToolApprovalUpdate) ClearApprovedAt() *ToolApprovalUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// Mutation returns the ToolApprovalMutation object of the builder.
func (_u *ToolApprovalUpdate) Mutation() *ToolApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolApprovalUpdate) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolApproval.server"`)
	}
	return nil
}

func (_u *ToolApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolapproval.Table, toolapproval.Columns, sqlgraph.NewFieldSpec(toolapproval.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolapproval.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(toolapproval.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(toolapproval.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(toolapproval.FieldApprovedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolApprovalUpdateOne is the builder for updating a single ToolApproval entity.
type ToolApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolApprovalMutation
}

// SetToolName sets the "tool_name" field.
func (_u *ToolApprovalUpdateOne) SetToolName(v string) *ToolApprovalUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolApprovalUpdateOne) SetNillableToolName(v *string) *ToolApprovalUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetApproved sets the "approved" field.
func (_u *ToolApprovalUpdateOne) SetApproved(v bool) *ToolApprovalUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *ToolApprovalUpdateOne) SetNillableApproved(v *bool) *ToolApprovalUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ToolApprovalUpdateOne) SetApprovedAt(v time.Time) *ToolApprovalUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ToolApprovalUpdateOne) SetNillableApprovedAt(v *time.Time) *ToolApprovalUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ToolApprovalUpdateOne) ClearApprovedAt() *ToolApprovalUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// Mutation returns the ToolApprovalMutation object of the builder.
func (_u *ToolApprovalUpdateOne) Mutation() *ToolApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolApprovalUpdate builder.
func (_u *ToolApprovalUpdateOne) Where(ps ...predicate.ToolApproval) *ToolApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolApprovalUpdateOne) Select(field string, fields ...string) *ToolApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolApproval entity.
func (_u *ToolApprovalUpdateOne) Save(ctx context.Context) (*ToolApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolApprovalUpdateOne) SaveX(ctx context.Context) *ToolApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolApprovalUpdateOne) check() error {
	if _u.mutation.ServerCleared() && len(_u.mutation.ServerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolApproval.server"`)
	}
	return nil
}

func (_u *ToolApprovalUpdateOne) sqlSave(ctx context.Context) (_node *ToolApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolapproval.Table, toolapproval.Columns, sqlgraph.NewFieldSpec(toolapproval.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolapproval.FieldID)
		for _, f := range fields {
			if !toolapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolapproval.FieldID {
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
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolapproval.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(toolapproval.FieldApproved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(toolapproval.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(toolapproval.FieldApprovedAt, field.TypeTime)
	}
	_node = &ToolApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
