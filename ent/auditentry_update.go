// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/auditentry"
	"github.com/praxislabs/praxis/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AuditEntryUpdate) SetToolName(v string) *AuditEntryUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableToolName(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AuditEntryUpdate) SetRiskLevel(v auditentry.RiskLevel) *AuditEntryUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableRiskLevel(v *auditentry.RiskLevel) *AuditEntryUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *AuditEntryUpdate) SetParameters(v string) *AuditEntryUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// SetNillableParameters sets the "parameters" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableParameters(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetParameters(*v)
	}
	return _u
}

// SetFullParameters sets the "full_parameters" field.
func (_u *AuditEntryUpdate) SetFullParameters(v string) *AuditEntryUpdate {
	_u.mutation.SetFullParameters(v)
	return _u
}

// SetNillableFullParameters sets the "full_parameters" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableFullParameters(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetFullParameters(*v)
	}
	return _u
}

// ClearFullParameters clears the value of the "full_parameters" field.
func (_u *AuditEntryUpdate) ClearFullParameters() *AuditEntryUpdate {
	_u.mutation.ClearFullParameters()
	return _u
}

// SetApprovalDecision sets the "approval_decision" field.
func (_u *AuditEntryUpdate) SetApprovalDecision(v auditentry.ApprovalDecision) *AuditEntryUpdate {
	_u.mutation.SetApprovalDecision(v)
	return _u
}

// SetNillableApprovalDecision sets the "approval_decision" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableApprovalDecision(v *auditentry.ApprovalDecision) *AuditEntryUpdate {
	if v != nil {
		_u.SetApprovalDecision(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *AuditEntryUpdate) SetApprovedBy(v string) *AuditEntryUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableApprovedBy(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *AuditEntryUpdate) ClearApprovedBy() *AuditEntryUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AuditEntryUpdate) SetDurationMs(v int) *AuditEntryUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableDurationMs(v *int) *AuditEntryUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AuditEntryUpdate) AddDurationMs(v int) *AuditEntryUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuditEntryUpdate) SetSuccess(v bool) *AuditEntryUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableSuccess(v *bool) *AuditEntryUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AuditEntryUpdate) SetResult(v string) *AuditEntryUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableResult(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AuditEntryUpdate) ClearResult() *AuditEntryUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditEntryUpdate) SetErrorMessage(v string) *AuditEntryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableErrorMessage(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditEntryUpdate) ClearErrorMessage() *AuditEntryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetYoloMode sets the "yolo_mode" field.
func (_u *AuditEntryUpdate) SetYoloMode(v bool) *AuditEntryUpdate {
	_u.mutation.SetYoloMode(v)
	return _u
}

// SetNillableYoloMode sets the "yolo_mode" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableYoloMode(v *bool) *AuditEntryUpdate {
	if v != nil {
		_u.SetYoloMode(*v)
	}
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEntryUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := auditentry.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalDecision(); ok {
		if err := auditentry.ApprovalDecisionValidator(v); err != nil {
			return &ValidationError{Name: "approval_decision", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.approval_decision": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(auditentry.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(auditentry.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(auditentry.FieldParameters, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullParameters(); ok {
		_spec.SetField(auditentry.FieldFullParameters, field.TypeString, value)
	}
	if _u.mutation.FullParametersCleared() {
		_spec.ClearField(auditentry.FieldFullParameters, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalDecision(); ok {
		_spec.SetField(auditentry.FieldApprovalDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(auditentry.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(auditentry.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(auditentry.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(auditentry.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(auditentry.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(auditentry.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(auditentry.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditentry.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditentry.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.YoloMode(); ok {
		_spec.SetField(auditentry.FieldYoloMode, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// SetToolName sets the "tool_name" field.
func (_u *AuditEntryUpdateOne) SetToolName(v string) *AuditEntryUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableToolName(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AuditEntryUpdateOne) SetRiskLevel(v auditentry.RiskLevel) *AuditEntryUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableRiskLevel(v *auditentry.RiskLevel) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *AuditEntryUpdateOne) SetParameters(v string) *AuditEntryUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// SetNillableParameters sets the "parameters" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableParameters(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetParameters(*v)
	}
	return _u
}

// SetFullParameters sets the "full_parameters" field.
func (_u *AuditEntryUpdateOne) SetFullParameters(v string) *AuditEntryUpdateOne {
	_u.mutation.SetFullParameters(v)
	return _u
}

// SetNillableFullParameters sets the "full_parameters" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableFullParameters(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetFullParameters(*v)
	}
	return _u
}

// ClearFullParameters clears the value of the "full_parameters" field.
func (_u *AuditEntryUpdateOne) ClearFullParameters() *AuditEntryUpdateOne {
	_u.mutation.ClearFullParameters()
	return _u
}

// SetApprovalDecision sets the "approval_decision" field.
func (_u *AuditEntryUpdateOne) SetApprovalDecision(v auditentry.ApprovalDecision) *AuditEntryUpdateOne {
	_u.mutation.SetApprovalDecision(v)
	return _u
}

// SetNillableApprovalDecision sets the "approval_decision" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableApprovalDecision(v *auditentry.ApprovalDecision) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetApprovalDecision(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *AuditEntryUpdateOne) SetApprovedBy(v string) *AuditEntryUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableApprovedBy(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *AuditEntryUpdateOne) ClearApprovedBy() *AuditEntryUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AuditEntryUpdateOne) SetDurationMs(v int) *AuditEntryUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableDurationMs(v *int) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AuditEntryUpdateOne) AddDurationMs(v int) *AuditEntryUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuditEntryUpdateOne) SetSuccess(v bool) *AuditEntryUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableSuccess(v *bool) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AuditEntryUpdateOne) SetResult(v string) *AuditEntryUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableResult(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AuditEntryUpdateOne) ClearResult() *AuditEntryUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditEntryUpdateOne) SetErrorMessage(v string) *AuditEntryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableErrorMessage(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditEntryUpdateOne) ClearErrorMessage() *AuditEntryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetYoloMode sets the "yolo_mode" field.
func (_u *AuditEntryUpdateOne) SetYoloMode(v bool) *AuditEntryUpdateOne {
	_u.mutation.SetYoloMode(v)
	return _u
}

// SetNillableYoloMode sets the "yolo_mode" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableYoloMode(v *bool) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetYoloMode(*v)
	}
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEntry entity.
func (_u *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditEntryUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := auditentry.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalDecision(); ok {
		if err := auditentry.ApprovalDecisionValidator(v); err != nil {
			return &ValidationError{Name: "approval_decision", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.approval_decision": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
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
		_spec.SetField(auditentry.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(auditentry.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(auditentry.FieldParameters, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullParameters(); ok {
		_spec.SetField(auditentry.FieldFullParameters, field.TypeString, value)
	}
	if _u.mutation.FullParametersCleared() {
		_spec.ClearField(auditentry.FieldFullParameters, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalDecision(); ok {
		_spec.SetField(auditentry.FieldApprovalDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(auditentry.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(auditentry.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(auditentry.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(auditentry.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(auditentry.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(auditentry.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(auditentry.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditentry.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditentry.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.YoloMode(); ok {
		_spec.SetField(auditentry.FieldYoloMode, field.TypeBool, value)
	}
	_node = &AuditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
