// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// ToolApprovalCreate is the builder for creating a ToolApproval entity.
type ToolApprovalCreate struct {
	config
	mutation *ToolApprovalMutation
	hooks    []Hook
}

// SetServerID sets the "server_id" field.
func (_c *ToolApprovalCreate) SetServerID(v string) *ToolApprovalCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolApprovalCreate) SetToolName(v string) *ToolApprovalCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetApproved sets the "approved" field.
func (_c *ToolApprovalCreate) SetApproved(v bool) *ToolApprovalCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *ToolApprovalCreate) SetNillableApproved(v *bool) *ToolApprovalCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ToolApprovalCreate) SetApprovedAt(v time.Time) *ToolApprovalCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ToolApprovalCreate) SetNillableApprovedAt(v *time.Time) *ToolApprovalCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetServer sets the "server" edge to the ExternalServer entity.
func (_c *ToolApprovalCreate) SetServer(v *ExternalServer) *ToolApprovalCreate {
	return _c.SetServerID(v.ID)
}

// Mutation returns the ToolApprovalMutation object of the builder.
func (_c *ToolApprovalCreate) Mutation() *ToolApprovalMutation {
	return _c.mutation
}

// Save creates the ToolApproval in the database.
func (_c *ToolApprovalCreate) Save(ctx context.Context) (*ToolApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolApprovalCreate) SaveX(ctx context.Context) *ToolApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolApprovalCreate) defaults() {
	if _, ok := _c.mutation.Approved(); !ok {
		v := toolapproval.DefaultApproved
		_c.mutation.SetApproved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolApprovalCreate) check() error {
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "ToolApproval.server_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolApproval.tool_name"`)}
	}
	if _, ok := _c.mutation.Approved(); !ok {
		return &ValidationError{Name: "approved", err: errors.New(`ent: missing required field "ToolApproval.approved"`)}
	}
	if len(_c.mutation.ServerIDs()) == 0 {
		return &ValidationError{Name: "server", err: errors.New(`ent: missing required edge "ToolApproval.server"`)}
	}
	return nil
}

func (_c *ToolApprovalCreate) sqlSave(ctx context.Context) (*ToolApproval, error) {
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

func (_c *ToolApprovalCreate) createSpec() (*ToolApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolapproval.Table, sqlgraph.NewFieldSpec(toolapproval.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolapproval.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(toolapproval.FieldApproved, field.TypeBool, value)
		_node.Approved = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(toolapproval.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if nodes := _c.mutation.ServerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolapproval.ServerTable,
			Columns: []string{toolapproval.ServerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(externalserver.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolApprovalCreateBulk is the builder for creating many ToolApproval entities in bulk.
type ToolApprovalCreateBulk struct {
	config
	err      error
	builders []*ToolApprovalCreate
}

// Save creates the ToolApproval entities in the database.
func (_c *ToolApprovalCreateBulk) Save(ctx context.Context) ([]*ToolApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolApprovalMutation)
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
func (_c *ToolApprovalCreateBulk) SaveX(ctx context.Context) []*ToolApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
