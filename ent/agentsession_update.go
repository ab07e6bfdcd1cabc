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
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
	"github.com/praxislabs/praxis/ent/predicate"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTask sets the "task" field.
func (_u *AgentSessionUpdate) SetTask(v string) *AgentSessionUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTask(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *AgentSessionUpdate) SetState(v agentsession.State) *AgentSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableState(v *agentsession.State) *AgentSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *AgentSessionUpdate) SetProjectPath(v string) *AgentSessionUpdate {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableProjectPath(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// ClearProjectPath clears the value of the "project_path" field.
func (_u *AgentSessionUpdate) ClearProjectPath() *AgentSessionUpdate {
	_u.mutation.ClearProjectPath()
	return _u
}

// SetPlanOverview sets the "plan_overview" field.
func (_u *AgentSessionUpdate) SetPlanOverview(v string) *AgentSessionUpdate {
	_u.mutation.SetPlanOverview(v)
	return _u
}

// SetNillablePlanOverview sets the "plan_overview" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillablePlanOverview(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetPlanOverview(*v)
	}
	return _u
}

// ClearPlanOverview clears the value of the "plan_overview" field.
func (_u *AgentSessionUpdate) ClearPlanOverview() *AgentSessionUpdate {
	_u.mutation.ClearPlanOverview()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentSessionUpdate) SetCreatedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableCreatedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdate) SetStartedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStartedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdate) ClearStartedAt() *AgentSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdate) SetEndedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableEndedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdate) ClearEndedAt() *AgentSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentSessionUpdate) SetTokensIn(v int) *AgentSessionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTokensIn(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentSessionUpdate) AddTokensIn(v int) *AgentSessionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentSessionUpdate) SetTokensOut(v int) *AgentSessionUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTokensOut(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentSessionUpdate) AddTokensOut(v int) *AgentSessionUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *AgentSessionUpdate) SetCost(v float64) *AgentSessionUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableCost(v *float64) *AgentSessionUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AgentSessionUpdate) AddCost(v float64) *AgentSessionUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdate) SetErrorMessage(v string) *AgentSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableErrorMessage(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdate) ClearErrorMessage() *AgentSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AgentSessionUpdate) SetPodID(v string) *AgentSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillablePodID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AgentSessionUpdate) ClearPodID() *AgentSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentSessionUpdate) AddStepIDs(ids ...int) *AgentSessionUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdate) AddSteps(v ...*AgentStep) *AgentSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdate) ClearSteps() *AgentSessionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentSessionUpdate) RemoveStepIDs(ids ...int) *AgentSessionUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentSessionUpdate) RemoveSteps(v ...*AgentStep) *AgentSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agentsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentSession.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(agentsession.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(agentsession.FieldProjectPath, field.TypeString, value)
	}
	if _u.mutation.ProjectPathCleared() {
		_spec.ClearField(agentsession.FieldProjectPath, field.TypeString)
	}
	if value, ok := _u.mutation.PlanOverview(); ok {
		_spec.SetField(agentsession.FieldPlanOverview, field.TypeString, value)
	}
	if _u.mutation.PlanOverviewCleared() {
		_spec.ClearField(agentsession.FieldPlanOverview, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(agentsession.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(agentsession.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(agentsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(agentsession.FieldPodID, field.TypeString)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetTask sets the "task" field.
func (_u *AgentSessionUpdateOne) SetTask(v string) *AgentSessionUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTask(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *AgentSessionUpdateOne) SetState(v agentsession.State) *AgentSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableState(v *agentsession.State) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *AgentSessionUpdateOne) SetProjectPath(v string) *AgentSessionUpdateOne {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableProjectPath(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// ClearProjectPath clears the value of the "project_path" field.
func (_u *AgentSessionUpdateOne) ClearProjectPath() *AgentSessionUpdateOne {
	_u.mutation.ClearProjectPath()
	return _u
}

// SetPlanOverview sets the "plan_overview" field.
func (_u *AgentSessionUpdateOne) SetPlanOverview(v string) *AgentSessionUpdateOne {
	_u.mutation.SetPlanOverview(v)
	return _u
}

// SetNillablePlanOverview sets the "plan_overview" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillablePlanOverview(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetPlanOverview(*v)
	}
	return _u
}

// ClearPlanOverview clears the value of the "plan_overview" field.
func (_u *AgentSessionUpdateOne) ClearPlanOverview() *AgentSessionUpdateOne {
	_u.mutation.ClearPlanOverview()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentSessionUpdateOne) SetCreatedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdateOne) SetStartedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdateOne) ClearStartedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentSessionUpdateOne) SetEndedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableEndedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentSessionUpdateOne) ClearEndedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentSessionUpdateOne) SetTokensIn(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTokensIn(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentSessionUpdateOne) AddTokensIn(v int) *AgentSessionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentSessionUpdateOne) SetTokensOut(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTokensOut(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentSessionUpdateOne) AddTokensOut(v int) *AgentSessionUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *AgentSessionUpdateOne) SetCost(v float64) *AgentSessionUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableCost(v *float64) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *AgentSessionUpdateOne) AddCost(v float64) *AgentSessionUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdateOne) SetErrorMessage(v string) *AgentSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableErrorMessage(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdateOne) ClearErrorMessage() *AgentSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AgentSessionUpdateOne) SetPodID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillablePodID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AgentSessionUpdateOne) ClearPodID() *AgentSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentSessionUpdateOne) AddStepIDs(ids ...int) *AgentSessionUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdateOne) AddSteps(v ...*AgentStep) *AgentSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentSessionUpdateOne) ClearSteps() *AgentSessionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveStepIDs(ids ...int) *AgentSessionUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentSessionUpdateOne) RemoveSteps(v ...*AgentStep) *AgentSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agentsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentSession.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(agentsession.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(agentsession.FieldProjectPath, field.TypeString, value)
	}
	if _u.mutation.ProjectPathCleared() {
		_spec.ClearField(agentsession.FieldProjectPath, field.TypeString)
	}
	if value, ok := _u.mutation.PlanOverview(); ok {
		_spec.SetField(agentsession.FieldPlanOverview, field.TypeString, value)
	}
	if _u.mutation.PlanOverviewCleared() {
		_spec.ClearField(agentsession.FieldPlanOverview, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentsession.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentsession.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(agentsession.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(agentsession.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(agentsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(agentsession.FieldPodID, field.TypeString)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.StepsTable,
			Columns: []string{agentsession.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
