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

// ExternalServerCreate is the builder for creating a ExternalServer entity.
type ExternalServerCreate struct {
	config
	mutation *ExternalServerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ExternalServerCreate) SetName(v string) *ExternalServerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExternalServerCreate) SetDescription(v string) *ExternalServerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableDescription(v *string) *ExternalServerCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTransport sets the "transport" field.
func (_c *ExternalServerCreate) SetTransport(v externalserver.Transport) *ExternalServerCreate {
	_c.mutation.SetTransport(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *ExternalServerCreate) SetCommand(v string) *ExternalServerCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableCommand(v *string) *ExternalServerCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetArgs sets the "args" field.
func (_c *ExternalServerCreate) SetArgs(v []string) *ExternalServerCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetEnv sets the "env" field.
func (_c *ExternalServerCreate) SetEnv(v map[string]string) *ExternalServerCreate {
	_c.mutation.SetEnv(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ExternalServerCreate) SetURL(v string) *ExternalServerCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableURL(v *string) *ExternalServerCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *ExternalServerCreate) SetHeaders(v map[string]string) *ExternalServerCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExternalServerCreate) SetTrust(v externalserver.Trust) *ExternalServerCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableTrust(v *externalserver.Trust) *ExternalServerCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetSandboxEnabled sets the "sandbox_enabled" field.
func (_c *ExternalServerCreate) SetSandboxEnabled(v bool) *ExternalServerCreate {
	_c.mutation.SetSandboxEnabled(v)
	return _c
}

// SetNillableSandboxEnabled sets the "sandbox_enabled" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableSandboxEnabled(v *bool) *ExternalServerCreate {
	if v != nil {
		_c.SetSandboxEnabled(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExternalServerCreate) SetCategory(v string) *ExternalServerCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableCategory(v *string) *ExternalServerCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ExternalServerCreate) SetEnabled(v bool) *ExternalServerCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableEnabled(v *bool) *ExternalServerCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExternalServerCreate) SetCreatedAt(v time.Time) *ExternalServerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableCreatedAt(v *time.Time) *ExternalServerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastConnected sets the "last_connected" field.
func (_c *ExternalServerCreate) SetLastConnected(v time.Time) *ExternalServerCreate {
	_c.mutation.SetLastConnected(v)
	return _c
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableLastConnected(v *time.Time) *ExternalServerCreate {
	if v != nil {
		_c.SetLastConnected(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ExternalServerCreate) SetLastError(v string) *ExternalServerCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ExternalServerCreate) SetNillableLastError(v *string) *ExternalServerCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExternalServerCreate) SetID(v string) *ExternalServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddToolApprovalIDs adds the "tool_approvals" edge to the ToolApproval entity by IDs.
func (_c *ExternalServerCreate) AddToolApprovalIDs(ids ...int) *ExternalServerCreate {
	_c.mutation.AddToolApprovalIDs(ids...)
	return _c
}

// AddToolApprovals adds the "tool_approvals" edges to the ToolApproval entity.
func (_c *ExternalServerCreate) AddToolApprovals(v ...*ToolApproval) *ExternalServerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolApprovalIDs(ids...)
}

// Mutation returns the ExternalServerMutation object of the builder.
func (_c *ExternalServerCreate) Mutation() *ExternalServerMutation {
	return _c.mutation
}

// Save creates the ExternalServer in the database.
func (_c *ExternalServerCreate) Save(ctx context.Context) (*ExternalServer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExternalServerCreate) SaveX(ctx context.Context) *ExternalServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExternalServerCreate) defaults() {
	if _, ok := _c.mutation.Trust(); !ok {
		v := externalserver.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.SandboxEnabled(); !ok {
		v := externalserver.DefaultSandboxEnabled
		_c.mutation.SetSandboxEnabled(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := externalserver.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := externalserver.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExternalServerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExternalServer.name"`)}
	}
	if _, ok := _c.mutation.Transport(); !ok {
		return &ValidationError{Name: "transport", err: errors.New(`ent: missing required field "ExternalServer.transport"`)}
	}
	if v, ok := _c.mutation.Transport(); ok {
		if err := externalserver.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.transport": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExternalServer.trust"`)}
	}
	if v, ok := _c.mutation.Trust(); ok {
		if err := externalserver.TrustValidator(v); err != nil {
			return &ValidationError{Name: "trust", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.trust": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SandboxEnabled(); !ok {
		return &ValidationError{Name: "sandbox_enabled", err: errors.New(`ent: missing required field "ExternalServer.sandbox_enabled"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ExternalServer.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExternalServer.created_at"`)}
	}
	return nil
}

func (_c *ExternalServerCreate) sqlSave(ctx context.Context) (*ExternalServer, error) {
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
			return nil, fmt.Errorf("unexpected ExternalServer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExternalServerCreate) createSpec() (*ExternalServer, *sqlgraph.CreateSpec) {
	var (
		_node = &ExternalServer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(externalserver.Table, sqlgraph.NewFieldSpec(externalserver.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(externalserver.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(externalserver.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Transport(); ok {
		_spec.SetField(externalserver.FieldTransport, field.TypeEnum, value)
		_node.Transport = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(externalserver.FieldCommand, field.TypeString, value)
		_node.Command = &value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(externalserver.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.Env(); ok {
		_spec.SetField(externalserver.FieldEnv, field.TypeJSON, value)
		_node.Env = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(externalserver.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(externalserver.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(externalserver.FieldTrust, field.TypeEnum, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.SandboxEnabled(); ok {
		_spec.SetField(externalserver.FieldSandboxEnabled, field.TypeBool, value)
		_node.SandboxEnabled = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(externalserver.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(externalserver.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(externalserver.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastConnected(); ok {
		_spec.SetField(externalserver.FieldLastConnected, field.TypeTime, value)
		_node.LastConnected = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(externalserver.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if nodes := _c.mutation.ToolApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   externalserver.ToolApprovalsTable,
			Columns: []string{externalserver.ToolApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolapproval.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExternalServerCreateBulk is the builder for creating many ExternalServer entities in bulk.
type ExternalServerCreateBulk struct {
	config
	err      error
	builders []*ExternalServerCreate
}

// Save creates the ExternalServer entities in the database.
func (_c *ExternalServerCreateBulk) Save(ctx context.Context) ([]*ExternalServer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExternalServer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExternalServerMutation)
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
func (_c *ExternalServerCreateBulk) SaveX(ctx context.Context) []*ExternalServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
