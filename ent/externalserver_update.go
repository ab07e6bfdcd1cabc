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
	"github.com/praxislabs/praxis/ent/externalserver"
	"github.com/praxislabs/praxis/ent/predicate"
	"github.com/praxislabs/praxis/ent/toolapproval"
)

// ExternalServerUpdate is the builder for updating ExternalServer entities.
type ExternalServerUpdate struct {
	config
	hooks    []Hook
	mutation *ExternalServerMutation
}

// Where appends a list predicates to the ExternalServerUpdate builder.
func (_u *ExternalServerUpdate) Where(ps ...predicate.ExternalServer) *ExternalServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ExternalServerUpdate) SetName(v string) *ExternalServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableName(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExternalServerUpdate) SetDescription(v string) *ExternalServerUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableDescription(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExternalServerUpdate) ClearDescription() *ExternalServerUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTransport sets the "transport" field.
func (_u *ExternalServerUpdate) SetTransport(v externalserver.Transport) *ExternalServerUpdate {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableTransport(v *externalserver.Transport) *ExternalServerUpdate {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExternalServerUpdate) SetCommand(v string) *ExternalServerUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableCommand(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExternalServerUpdate) ClearCommand() *ExternalServerUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *ExternalServerUpdate) SetArgs(v []string) *ExternalServerUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *ExternalServerUpdate) AppendArgs(v []string) *ExternalServerUpdate {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ExternalServerUpdate) ClearArgs() *ExternalServerUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetEnv sets the "env" field.
func (_u *ExternalServerUpdate) SetEnv(v map[string]string) *ExternalServerUpdate {
	_u.mutation.SetEnv(v)
	return _u
}

// ClearEnv clears the value of the "env" field.
func (_u *ExternalServerUpdate) ClearEnv() *ExternalServerUpdate {
	_u.mutation.ClearEnv()
	return _u
}

// SetURL sets the "url" field.
func (_u *ExternalServerUpdate) SetURL(v string) *ExternalServerUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableURL(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ExternalServerUpdate) ClearURL() *ExternalServerUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *ExternalServerUpdate) SetHeaders(v map[string]string) *ExternalServerUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ExternalServerUpdate) ClearHeaders() *ExternalServerUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExternalServerUpdate) SetTrust(v externalserver.Trust) *ExternalServerUpdate {
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableTrust(v *externalserver.Trust) *ExternalServerUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// SetSandboxEnabled sets the "sandbox_enabled" field.
func (_u *ExternalServerUpdate) SetSandboxEnabled(v bool) *ExternalServerUpdate {
	_u.mutation.SetSandboxEnabled(v)
	return _u
}

// SetNillableSandboxEnabled sets the "sandbox_enabled" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableSandboxEnabled(v *bool) *ExternalServerUpdate {
	if v != nil {
		_u.SetSandboxEnabled(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExternalServerUpdate) SetCategory(v string) *ExternalServerUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableCategory(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExternalServerUpdate) ClearCategory() *ExternalServerUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ExternalServerUpdate) SetEnabled(v bool) *ExternalServerUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableEnabled(v *bool) *ExternalServerUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExternalServerUpdate) SetCreatedAt(v time.Time) *ExternalServerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableCreatedAt(v *time.Time) *ExternalServerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastConnected sets the "last_connected" field.
func (_u *ExternalServerUpdate) SetLastConnected(v time.Time) *ExternalServerUpdate {
	_u.mutation.SetLastConnected(v)
	return _u
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableLastConnected(v *time.Time) *ExternalServerUpdate {
	if v != nil {
		_u.SetLastConnected(*v)
	}
	return _u
}

// ClearLastConnected clears the value of the "last_connected" field.
func (_u *ExternalServerUpdate) ClearLastConnected() *ExternalServerUpdate {
	_u.mutation.ClearLastConnected()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExternalServerUpdate) SetLastError(v string) *ExternalServerUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExternalServerUpdate) SetNillableLastError(v *string) *ExternalServerUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExternalServerUpdate) ClearLastError() *ExternalServerUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// AddToolApprovalIDs adds the "tool_approvals" edge to the ToolApproval entity by IDs.
func (_u *ExternalServerUpdate) AddToolApprovalIDs(ids ...int) *ExternalServerUpdate {
	_u.mutation.AddToolApprovalIDs(ids...)
	return _u
}

// AddToolApprovals adds the "tool_approvals" edges to the ToolApproval entity.
func (_u *ExternalServerUpdate) AddToolApprovals(v ...*ToolApproval) *ExternalServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolApprovalIDs(ids...)
}

// Mutation returns the ExternalServerMutation object of the builder.
func (_u *ExternalServerUpdate) Mutation() *ExternalServerMutation {
	return _u.mutation
}

// ClearToolApprovals clears all "tool_approvals" edges to the ToolApproval entity.
func (_u *ExternalServerUpdate) ClearToolApprovals() *ExternalServerUpdate {
	_u.mutation.ClearToolApprovals()
	return _u
}

// RemoveToolApprovalIDs removes the "tool_approvals" edge to ToolApproval entities by IDs.
func (_u *ExternalServerUpdate) RemoveToolApprovalIDs(ids ...int) *ExternalServerUpdate {
	_u.mutation.RemoveToolApprovalIDs(ids...)
	return _u
}

// RemoveToolApprovals removes "tool_approvals" edges to ToolApproval entities.
func (_u *ExternalServerUpdate) RemoveToolApprovals(v ...*ToolApproval) *ExternalServerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolApprovalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExternalServerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExternalServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalServerUpdate) check() error {
	if v, ok := _u.mutation.Transport(); ok {
		if err := externalserver.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.transport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trust(); ok {
		if err := externalserver.TrustValidator(v); err != nil {
			return &ValidationError{Name: "trust", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.trust": %w`, err)}
		}
	}
	return nil
}

func (_u *ExternalServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalserver.Table, externalserver.Columns, sqlgraph.NewFieldSpec(externalserver.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(externalserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(externalserver.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(externalserver.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(externalserver.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(externalserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(externalserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(externalserver.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, externalserver.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(externalserver.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(externalserver.FieldEnv, field.TypeJSON, value)
	}
	if _u.mutation.EnvCleared() {
		_spec.ClearField(externalserver.FieldEnv, field.TypeJSON)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(externalserver.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(externalserver.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(externalserver.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(externalserver.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(externalserver.FieldTrust, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SandboxEnabled(); ok {
		_spec.SetField(externalserver.FieldSandboxEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(externalserver.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(externalserver.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(externalserver.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(externalserver.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastConnected(); ok {
		_spec.SetField(externalserver.FieldLastConnected, field.TypeTime, value)
	}
	if _u.mutation.LastConnectedCleared() {
		_spec.ClearField(externalserver.FieldLastConnected, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(externalserver.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(externalserver.FieldLastError, field.TypeString)
	}
	if _u.mutation.ToolApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ToolApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExternalServerUpdateOne is the builder for updating a single ExternalServer entity.
type ExternalServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExternalServerMutation
}

// SetName sets the "name" field.
func (_u *ExternalServerUpdateOne) SetName(v string) *ExternalServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableName(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExternalServerUpdateOne) SetDescription(v string) *ExternalServerUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableDescription(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExternalServerUpdateOne) ClearDescription() *ExternalServerUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTransport sets the "transport" field.
func (_u *ExternalServerUpdateOne) SetTransport(v externalserver.Transport) *ExternalServerUpdateOne {
	_u.mutation.SetTransport(v)
	return _u
}

// SetNillableTransport sets the "transport" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableTransport(v *externalserver.Transport) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetTransport(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *ExternalServerUpdateOne) SetCommand(v string) *ExternalServerUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableCommand(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *ExternalServerUpdateOne) ClearCommand() *ExternalServerUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *ExternalServerUpdateOne) SetArgs(v []string) *ExternalServerUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *ExternalServerUpdateOne) AppendArgs(v []string) *ExternalServerUpdateOne {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ExternalServerUpdateOne) ClearArgs() *ExternalServerUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetEnv sets the "env" field.
func (_u *ExternalServerUpdateOne) SetEnv(v map[string]string) *ExternalServerUpdateOne {
	_u.mutation.SetEnv(v)
	return _u
}

// ClearEnv clears the value of the "env" field.
func (_u *ExternalServerUpdateOne) ClearEnv() *ExternalServerUpdateOne {
	_u.mutation.ClearEnv()
	return _u
}

// SetURL sets the "url" field.
func (_u *ExternalServerUpdateOne) SetURL(v string) *ExternalServerUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableURL(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *ExternalServerUpdateOne) ClearURL() *ExternalServerUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *ExternalServerUpdateOne) SetHeaders(v map[string]string) *ExternalServerUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *ExternalServerUpdateOne) ClearHeaders() *ExternalServerUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExternalServerUpdateOne) SetTrust(v externalserver.Trust) *ExternalServerUpdateOne {
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableTrust(v *externalserver.Trust) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// SetSandboxEnabled sets the "sandbox_enabled" field.
func (_u *ExternalServerUpdateOne) SetSandboxEnabled(v bool) *ExternalServerUpdateOne {
	_u.mutation.SetSandboxEnabled(v)
	return _u
}

// SetNillableSandboxEnabled sets the "sandbox_enabled" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableSandboxEnabled(v *bool) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetSandboxEnabled(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExternalServerUpdateOne) SetCategory(v string) *ExternalServerUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableCategory(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExternalServerUpdateOne) ClearCategory() *ExternalServerUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ExternalServerUpdateOne) SetEnabled(v bool) *ExternalServerUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableEnabled(v *bool) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExternalServerUpdateOne) SetCreatedAt(v time.Time) *ExternalServerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableCreatedAt(v *time.Time) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetLastConnected sets the "last_connected" field.
func (_u *ExternalServerUpdateOne) SetLastConnected(v time.Time) *ExternalServerUpdateOne {
	_u.mutation.SetLastConnected(v)
	return _u
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableLastConnected(v *time.Time) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetLastConnected(*v)
	}
	return _u
}

// ClearLastConnected clears the value of the "last_connected" field.
func (_u *ExternalServerUpdateOne) ClearLastConnected() *ExternalServerUpdateOne {
	_u.mutation.ClearLastConnected()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExternalServerUpdateOne) SetLastError(v string) *ExternalServerUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExternalServerUpdateOne) SetNillableLastError(v *string) *ExternalServerUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExternalServerUpdateOne) ClearLastError() *ExternalServerUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// AddToolApprovalIDs adds the "tool_approvals" edge to the ToolApproval entity by IDs.
func (_u *ExternalServerUpdateOne) AddToolApprovalIDs(ids ...int) *ExternalServerUpdateOne {
	_u.mutation.AddToolApprovalIDs(ids...)
	return _u
}

// AddToolApprovals adds the "tool_approvals" edges to the ToolApproval entity.
func (_u *ExternalServerUpdateOne) AddToolApprovals(v ...*ToolApproval) *ExternalServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolApprovalIDs(ids...)
}

// Mutation returns the ExternalServerMutation object of the builder.
func (_u *ExternalServerUpdateOne) Mutation() *ExternalServerMutation {
	return _u.mutation
}

// ClearToolApprovals clears all "tool_approvals" edges to the ToolApproval entity.
func (_u *ExternalServerUpdateOne) ClearToolApprovals() *ExternalServerUpdateOne {
	_u.mutation.ClearToolApprovals()
	return _u
}

// RemoveToolApprovalIDs removes the "tool_approvals" edge to ToolApproval entities by IDs.
func (_u *ExternalServerUpdateOne) RemoveToolApprovalIDs(ids ...int) *ExternalServerUpdateOne {
	_u.mutation.RemoveToolApprovalIDs(ids...)
	return _u
}

// RemoveToolApprovals removes "tool_approvals" edges to ToolApproval entities.
func (_u *ExternalServerUpdateOne) RemoveToolApprovals(v ...*ToolApproval) *ExternalServerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolApprovalIDs(ids...)
}

// Where appends a list predicates to the ExternalServerUpdate builder.
func (_u *ExternalServerUpdateOne) Where(ps ...predicate.ExternalServer) *ExternalServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExternalServerUpdateOne) Select(field string, fields ...string) *ExternalServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExternalServer entity.
func (_u *ExternalServerUpdateOne) Save(ctx context.Context) (*ExternalServer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalServerUpdateOne) SaveX(ctx context.Context) *ExternalServer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExternalServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalServerUpdateOne) check() error {
	if v, ok := _u.mutation.Transport(); ok {
		if err := externalserver.TransportValidator(v); err != nil {
			return &ValidationError{Name: "transport", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.transport": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trust(); ok {
		if err := externalserver.TrustValidator(v); err != nil {
			return &ValidationError{Name: "trust", err: fmt.Errorf(`ent: validator failed for field "ExternalServer.trust": %w`, err)}
		}
	}
	return nil
}

func (_u *ExternalServerUpdateOne) sqlSave(ctx context.Context) (_node *ExternalServer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalserver.Table, externalserver.Columns, sqlgraph.NewFieldSpec(externalserver.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExternalServer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externalserver.FieldID)
		for _, f := range fields {
			if !externalserver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != externalserver.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(externalserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(externalserver.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(externalserver.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Transport(); ok {
		_spec.SetField(externalserver.FieldTransport, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(externalserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(externalserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(externalserver.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, externalserver.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(externalserver.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Env(); ok {
		_spec.SetField(externalserver.FieldEnv, field.TypeJSON, value)
	}
	if _u.mutation.EnvCleared() {
		_spec.ClearField(externalserver.FieldEnv, field.TypeJSON)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(externalserver.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(externalserver.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(externalserver.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(externalserver.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(externalserver.FieldTrust, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SandboxEnabled(); ok {
		_spec.SetField(externalserver.FieldSandboxEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(externalserver.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(externalserver.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(externalserver.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(externalserver.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastConnected(); ok {
		_spec.SetField(externalserver.FieldLastConnected, field.TypeTime, value)
	}
	if _u.mutation.LastConnectedCleared() {
		_spec.ClearField(externalserver.FieldLastConnected, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(externalserver.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(externalserver.FieldLastError, field.TypeString)
	}
	if _u.mutation.ToolApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ToolApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExternalServer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
