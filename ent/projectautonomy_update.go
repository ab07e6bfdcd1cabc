// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/projectautonomy"
)

// ProjectAutonomyUpdate is the builder for updating ProjectAutonomy entities.
type ProjectAutonomyUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectAutonomyMutation
}

// Where appends a list predicates to the ProjectAutonomyUpdate builder.
func (_u *ProjectAutonomyUpdate) Where(ps ...predicate.ProjectAutonomy) *ProjectAutonomyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProjectAutonomyUpdate) SetLevel(v projectautonomy.Level) *ProjectAutonomyUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProjectAutonomyUpdate) SetNillableLevel(v *projectautonomy.Level) *ProjectAutonomyUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAllowlist sets the "allowlist" field.
func (_u *ProjectAutonomyUpdate) SetAllowlist(v []string) *ProjectAutonomyUpdate {
	_u.mutation.SetAllowlist(v)
	return _u
}

// AppendAllowlist appends value to the "allowlist" field.
func (_u *ProjectAutonomyUpdate) AppendAllowlist(v []string) *ProjectAutonomyUpdate {
	_u.mutation.AppendAllowlist(v)
	return _u
}

// ClearAllowlist clears the value of the "allowlist" field.
func (_u *ProjectAutonomyUpdate) ClearAllowlist() *ProjectAutonomyUpdate {
	_u.mutation.ClearAllowlist()
	return _u
}

// SetBlocklist sets the "blocklist" field.
func (_u *ProjectAutonomyUpdate) SetBlocklist(v []string) *ProjectAutonomyUpdate {
	_u.mutation.SetBlocklist(v)
	return _u
}

// AppendBlocklist appends value to the "blocklist" field.
func (_u *ProjectAutonomyUpdate) AppendBlocklist(v []string) *ProjectAutonomyUpdate {
	_u.mutation.AppendBlocklist(v)
	return _u
}

// ClearBlocklist clears the value of the "blocklist" field.
func (_u *ProjectAutonomyUpdate) ClearBlocklist() *ProjectAutonomyUpdate {
	_u.mutation.ClearBlocklist()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectAutonomyUpdate) SetUpdatedAt(v time.Time) *ProjectAutonomyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectAutonomyMutation object of the builder.
func (_u *ProjectAutonomyUpdate) Mutation() *ProjectAutonomyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectAutonomyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectAutonomyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectAutonomyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectAutonomyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectAutonomyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectautonomy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectAutonomyUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := projectautonomy.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProjectAutonomy.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectAutonomyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectautonomy.Table, projectautonomy.Columns, sqlgraph.NewFieldSpec(projectautonomy.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(projectautonomy.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Allowlist(); ok {
		_spec.SetField(projectautonomy.FieldAllowlist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowlist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectautonomy.FieldAllowlist, value)
		})
	}
	if _u.mutation.AllowlistCleared() {
		_spec.ClearField(projectautonomy.FieldAllowlist, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blocklist(); ok {
		_spec.SetField(projectautonomy.FieldBlocklist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocklist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectautonomy.FieldBlocklist, value)
		})
	}
	if _u.mutation.BlocklistCleared() {
		_spec.ClearField(projectautonomy.FieldBlocklist, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectautonomy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectautonomy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectAutonomyUpdateOne is the builder for updating a single ProjectAutonomy entity.
type ProjectAutonomyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectAutonomyMutation
}

// SetLevel sets the "level" field.
func (_u *ProjectAutonomyUpdateOne) SetLevel(v projectautonomy.Level) *ProjectAutonomyUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProjectAutonomyUpdateOne) SetNillableLevel(v *projectautonomy.Level) *ProjectAutonomyUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAllowlist sets the "allowlist" field.
func (_u *ProjectAutonomyUpdateOne) SetAllowlist(v []string) *ProjectAutonomyUpdateOne {
	_u.mutation.SetAllowlist(v)
	return _u
}

// AppendAllowlist appends value to the "allowlist" field.
func (_u *ProjectAutonomyUpdateOne) AppendAllowlist(v []string) *ProjectAutonomyUpdateOne {
	_u.mutation.AppendAllowlist(v)
	return _u
}

// ClearAllowlist clears the value of the "allowlist" field.
func (_u *ProjectAutonomyUpdateOne) ClearAllowlist() *ProjectAutonomyUpdateOne {
	_u.mutation.ClearAllowlist()
	return _u
}

// SetBlocklist sets the "blocklist" field.
func (_u *ProjectAutonomyUpdateOne) SetBlocklist(v []string) *ProjectAutonomyUpdateOne {
	_u.mutation.SetBlocklist(v)
	return _u
}

// AppendBlocklist appends value to the "blocklist" field.
func (_u *ProjectAutonomyUpdateOne) AppendBlocklist(v []string) *ProjectAutonomyUpdateOne {
	_u.mutation.AppendBlocklist(v)
	return _u
}

// ClearBlocklist clears the value of the "blocklist" field.
func (_u *ProjectAutonomyUpdateOne) ClearBlocklist() *ProjectAutonomyUpdateOne {
	_u.mutation.ClearBlocklist()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectAutonomyUpdateOne) SetUpdatedAt(v time.Time) *ProjectAutonomyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectAutonomyMutation object of the builder.
func (_u *ProjectAutonomyUpdateOne) Mutation() *ProjectAutonomyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectAutonomyUpdate builder.
func (_u *ProjectAutonomyUpdateOne) Where(ps ...predicate.ProjectAutonomy) *ProjectAutonomyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectAutonomyUpdateOne) Select(field string, fields ...string) *ProjectAutonomyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectAutonomy entity.
func (_u *ProjectAutonomyUpdateOne) Save(ctx context.Context) (*ProjectAutonomy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectAutonomyUpdateOne) SaveX(ctx context.Context) *ProjectAutonomy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectAutonomyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectAutonomyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectAutonomyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectautonomy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectAutonomyUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := projectautonomy.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProjectAutonomy.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectAutonomyUpdateOne) sqlSave(ctx context.Context) (_node *ProjectAutonomy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectautonomy.Table, projectautonomy.Columns, sqlgraph.NewFieldSpec(projectautonomy.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectAutonomy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectautonomy.FieldID)
		for _, f := range fields {
			if !projectautonomy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectautonomy.FieldID {
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
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(projectautonomy.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Allowlist(); ok {
		_spec.SetField(projectautonomy.FieldAllowlist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowlist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectautonomy.FieldAllowlist, value)
		})
	}
	if _u.mutation.AllowlistCleared() {
		_spec.ClearField(projectautonomy.FieldAllowlist, field.TypeJSON)
	}
	if value, ok := _u.mutation.Blocklist(); ok {
		_spec.SetField(projectautonomy.FieldBlocklist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocklist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, projectautonomy.FieldBlocklist, value)
		})
	}
	if _u.mutation.BlocklistCleared() {
		_spec.ClearField(projectautonomy.FieldBlocklist, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectautonomy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectAutonomy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectautonomy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
