// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/projectautonomy"
)

// ProjectAutonomyCreate is the builder for creating a ProjectAutonomy entity.
type ProjectAutonomyCreate struct {
	config
	mutation *ProjectAutonomyMutation
	hooks    []Hook
}

// SetProjectPath sets the "project_path" field.
func (_c *ProjectAutonomyCreate) SetProjectPath(v string) *ProjectAutonomyCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProjectAutonomyCreate) SetLevel(v projectautonomy.Level) *ProjectAutonomyCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ProjectAutonomyCreate) SetNillableLevel(v *projectautonomy.Level) *ProjectAutonomyCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetAllowlist sets the "allowlist" field.
func (_c *ProjectAutonomyCreate) SetAllowlist(v []string) *ProjectAutonomyCreate {
	_c.mutation.SetAllowlist(v)
	return _c
}

// SetBlocklist sets the "blocklist" field.
func (_c *ProjectAutonomyCreate) SetBlocklist(v []string) *ProjectAutonomyCreate {
	_c.mutation.SetBlocklist(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectAutonomyCreate) SetUpdatedAt(v time.Time) *ProjectAutonomyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectAutonomyCreate) SetNillableUpdatedAt(v *time.Time) *ProjectAutonomyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProjectAutonomyMutation object of the builder.
func (_c *ProjectAutonomyCreate) Mutation() *ProjectAutonomyMutation {
	return _c.mutation
}

// Save creates the ProjectAutonomy in the database.
func (_c *ProjectAutonomyCreate) Save(ctx context.Context) (*ProjectAutonomy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectAutonomyCreate) SaveX(ctx context.Context) *ProjectAutonomy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectAutonomyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectAutonomyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectAutonomyCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := projectautonomy.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectautonomy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectAutonomyCreate) check() error {
	if _, ok := _c.mutation.ProjectPath(); !ok {
		return &ValidationError{Name: "project_path", err: errors.New(`ent: missing required field "ProjectAutonomy.project_path"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ProjectAutonomy.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := projectautonomy.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ProjectAutonomy.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectAutonomy.updated_at"`)}
	}
	return nil
}

func (_c *ProjectAutonomyCreate) sqlSave(ctx context.Context) (*ProjectAutonomy, error) {
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

func (_c *ProjectAutonomyCreate) createSpec() (*ProjectAutonomy, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectAutonomy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectautonomy.Table, sqlgraph.NewFieldSpec(projectautonomy.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(projectautonomy.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(projectautonomy.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Allowlist(); ok {
		_spec.SetField(projectautonomy.FieldAllowlist, field.TypeJSON, value)
		_node.Allowlist = value
	}
	if value, ok := _c.mutation.Blocklist(); ok {
		_spec.SetField(projectautonomy.FieldBlocklist, field.TypeJSON, value)
		_node.Blocklist = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectautonomy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProjectAutonomyCreateBulk is the builder for creating many ProjectAutonomy entities in bulk.
type ProjectAutonomyCreateBulk struct {
	config
	err      error
	builders []*ProjectAutonomyCreate
}

// Save creates the ProjectAutonomy entities in the database.
func (_c *ProjectAutonomyCreateBulk) Save(ctx context.Context) ([]*ProjectAutonomy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectAutonomy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectAutonomyMutation)
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
func (_c *ProjectAutonomyCreateBulk) SaveX(ctx context.Context) []*ProjectAutonomy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectAutonomyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectAutonomyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
