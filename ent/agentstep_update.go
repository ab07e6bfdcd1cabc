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
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/ent/predicate"
)

// AgentStepUpdate is the builder for updating AgentStep entities.
type AgentStepUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStepMutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdate) Where(ps ...predicate.AgentStep) *AgentStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *AgentStepUpdate) SetStepID(v int) *AgentStepUpdate {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStepID(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *AgentStepUpdate) AddStepID(v int) *AgentStepUpdate {
	_u.mutation.AddStepID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentStepUpdate) SetDescription(v string) *AgentStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableDescription(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentStepUpdate) SetToolName(v string) *AgentStepUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableToolName(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *AgentStepUpdate) ClearToolName() *AgentStepUpdate {
	_u.mutation.ClearToolName()
	return _u
}

// SetParams sets the "params" field.
func (_u *AgentStepUpdate) SetParams(v map[string]interface{}) *AgentStepUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *AgentStepUpdate) ClearParams() *AgentStepUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentStepUpdate) SetDependencies(v []int) *AgentStepUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentStepUpdate) AppendDependencies(v []int) *AgentStepUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentStepUpdate) ClearDependencies() *AgentStepUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdate) SetStatus(v agentstep.Status) *AgentStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStatus(v *agentstep.Status) *AgentStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentStepUpdate) SetResult(v string) *AgentStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableResult(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentStepUpdate) ClearResult() *AgentStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentStepUpdate) SetErrorMessage(v string) *AgentStepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableErrorMessage(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentStepUpdate) ClearErrorMessage() *AgentStepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentStepUpdate) SetStartedAt(v time.Time) *AgentStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStartedAt(v *time.Time) *AgentStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentStepUpdate) ClearStartedAt() *AgentStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentStepUpdate) SetCompletedAt(v time.Time) *AgentStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableCompletedAt(v *time.Time) *AgentStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentStepUpdate) ClearCompletedAt() *AgentStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentStepUpdate) SetDurationMs(v int) *AgentStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableDurationMs(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentStepUpdate) AddDurationMs(v int) *AgentStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentStepUpdate) ClearDurationMs() *AgentStepUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdate) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.session"`)
	}
	return nil
}

func (_u *AgentStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(agentstep.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(agentstep.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentstep.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(agentstep.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(agentstep.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(agentstep.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentstep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentstep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentstep.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentstep.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentstep.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStepUpdateOne is the builder for updating a single AgentStep entity.
type AgentStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStepMutation
}

// SetStepID sets the "step_id" field.
func (_u *AgentStepUpdateOne) SetStepID(v int) *AgentStepUpdateOne {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStepID(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *AgentStepUpdateOne) AddStepID(v int) *AgentStepUpdateOne {
	_u.mutation.AddStepID(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentStepUpdateOne) SetDescription(v string) *AgentStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableDescription(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentStepUpdateOne) SetToolName(v string) *AgentStepUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableToolName(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// ClearToolName clears the value of the "tool_name" field.
func (_u *AgentStepUpdateOne) ClearToolName() *AgentStepUpdateOne {
	_u.mutation.ClearToolName()
	return _u
}

// SetParams sets the "params" field.
func (_u *AgentStepUpdateOne) SetParams(v map[string]interface{}) *AgentStepUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *AgentStepUpdateOne) ClearParams() *AgentStepUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *AgentStepUpdateOne) SetDependencies(v []int) *AgentStepUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *AgentStepUpdateOne) AppendDependencies(v []int) *AgentStepUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *AgentStepUpdateOne) ClearDependencies() *AgentStepUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdateOne) SetStatus(v agentstep.Status) *AgentStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStatus(v *agentstep.Status) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentStepUpdateOne) SetResult(v string) *AgentStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableResult(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentStepUpdateOne) ClearResult() *AgentStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentStepUpdateOne) SetErrorMessage(v string) *AgentStepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableErrorMessage(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentStepUpdateOne) ClearErrorMessage() *AgentStepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentStepUpdateOne) SetStartedAt(v time.Time) *AgentStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStartedAt(v *time.Time) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentStepUpdateOne) ClearStartedAt() *AgentStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentStepUpdateOne) SetCompletedAt(v time.Time) *AgentStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentStepUpdateOne) ClearCompletedAt() *AgentStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentStepUpdateOne) SetDurationMs(v int) *AgentStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableDurationMs(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentStepUpdateOne) AddDurationMs(v int) *AgentStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentStepUpdateOne) ClearDurationMs() *AgentStepUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdateOne) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdateOne) Where(ps ...predicate.AgentStep) *AgentStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStepUpdateOne) Select(field string, fields ...string) *AgentStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentStep entity.
func (_u *AgentStepUpdateOne) Save(ctx context.Context) (*AgentStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdateOne) SaveX(ctx context.Context) *AgentStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.session"`)
	}
	return nil
}

func (_u *AgentStepUpdateOne) sqlSave(ctx context.Context) (_node *AgentStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstep.FieldID)
		for _, f := range fields {
			if !agentstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstep.FieldID {
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
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(agentstep.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(agentstep.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agentstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentstep.FieldToolName, field.TypeString, value)
	}
	if _u.mutation.ToolNameCleared() {
		_spec.ClearField(agentstep.FieldToolName, field.TypeString)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(agentstep.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(agentstep.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(agentstep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(agentstep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentstep.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentstep.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentstep.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentstep.FieldDurationMs, field.TypeInt)
	}
	_node = &AgentStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
