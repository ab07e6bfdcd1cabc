// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AuditEntryCreate) SetSessionID(v string) *AuditEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AuditEntryCreate) SetTimestamp(v time.Time) *AuditEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableTimestamp(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *AuditEntryCreate) SetToolName(v string) *AuditEntryCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *AuditEntryCreate) SetRiskLevel(v auditentry.RiskLevel) *AuditEntryCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *AuditEntryCreate) SetParameters(v string) *AuditEntryCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetFullParameters sets the "full_parameters" field.
func (_c *AuditEntryCreate) SetFullParameters(v string) *AuditEntryCreate {
	_c.mutation.SetFullParameters(v)
	return _c
}

// SetNillableFullParameters sets the "full_parameters" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableFullParameters(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetFullParameters(*v)
	}
	return _c
}

// SetApprovalDecision sets the "approval_decision" field.
func (_c *AuditEntryCreate) SetApprovalDecision(v auditentry.ApprovalDecision) *AuditEntryCreate {
	_c.mutation.SetApprovalDecision(v)
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *AuditEntryCreate) SetApprovedBy(v string) *AuditEntryCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableApprovedBy(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AuditEntryCreate) SetDurationMs(v int) *AuditEntryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableDurationMs(v *int) *AuditEntryCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AuditEntryCreate) SetSuccess(v bool) *AuditEntryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AuditEntryCreate) SetResult(v string) *AuditEntryCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableResult(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditEntryCreate) SetErrorMessage(v string) *AuditEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableErrorMessage(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetYoloMode sets the "yolo_mode" field.
func (_c *AuditEntryCreate) SetYoloMode(v bool) *AuditEntryCreate {
	_c.mutation.SetYoloMode(v)
	return _c
}

// SetNillableYoloMode sets the "yolo_mode" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableYoloMode(v *bool) *AuditEntryCreate {
	if v != nil {
		_c.SetYoloMode(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v string) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := auditentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := auditentry.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.YoloMode(); !ok {
		v := auditentry.DefaultYoloMode
		_c.mutation.SetYoloMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AuditEntry.session_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AuditEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "AuditEntry.tool_name"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "AuditEntry.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := auditentry.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Parameters(); !ok {
		return &ValidationError{Name: "parameters", err: errors.New(`ent: missing required field "AuditEntry.parameters"`)}
	}
	if _, ok := _c.mutation.ApprovalDecision(); !ok {
		return &ValidationError{Name: "approval_decision", err: errors.New(`ent: missing required field "AuditEntry.approval_decision"`)}
	}
	if v, ok := _c.mutation.ApprovalDecision(); ok {
		if err := auditentry.ApprovalDecisionValidator(v); err != nil {
			return &ValidationError{Name: "approval_decision", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.approval_decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AuditEntry.duration_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AuditEntry.success"`)}
	}
	if _, ok := _c.mutation.YoloMode(); !ok {
		return &ValidationError{Name: "yolo_mode", err: errors.New(`ent: missing required field "AuditEntry.yolo_mode"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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
			return nil, fmt.Errorf("unexpected AuditEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(auditentry.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(auditentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(auditentry.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(auditentry.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(auditentry.FieldParameters, field.TypeString, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.FullParameters(); ok {
		_spec.SetField(auditentry.FieldFullParameters, field.TypeString, value)
		_node.FullParameters = &value
	}
	if value, ok := _c.mutation.ApprovalDecision(); ok {
		_spec.SetField(auditentry.FieldApprovalDecision, field.TypeEnum, value)
		_node.ApprovalDecision = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(auditentry.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(auditentry.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(auditentry.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(auditentry.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(auditentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.YoloMode(); ok {
		_spec.SetField(auditentry.FieldYoloMode, field.TypeBool, value)
		_node.YoloMode = value
	}
	return _node, _spec
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
