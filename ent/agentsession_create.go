// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislabs/praxis/ent/agentsession"
	"github.com/praxislabs/praxis/ent/agentstep"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetTask sets the "task" field.
func (_c *AgentSessionCreate) SetTask(v string) *AgentSessionCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetState sets the "state" field.
func (_c *AgentSessionCreate) SetState(v agentsession.State) *AgentSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableState(v *agentsession.State) *AgentSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetProjectPath sets the "project_path" field.
func (_c *AgentSessionCreate) SetProjectPath(v string) *AgentSessionCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableProjectPath(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetProjectPath(*v)
	}
	return _c
}

// SetPlanOverview sets the "plan_overview" field.
func (_c *AgentSessionCreate) SetPlanOverview(v string) *AgentSessionCreate {
	_c.mutation.SetPlanOverview(v)
	return _c
}

// SetNillablePlanOverview sets the "plan_overview" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillablePlanOverview(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetPlanOverview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentSessionCreate) SetStartedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStartedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentSessionCreate) SetEndedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableEndedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *AgentSessionCreate) SetTokensIn(v int) *AgentSessionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableTokensIn(v *int) *AgentSessionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *AgentSessionCreate) SetTokensOut(v int) *AgentSessionCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableTokensOut(v *int) *AgentSessionCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *AgentSessionCreate) SetCost(v float64) *AgentSessionCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCost(v *float64) *AgentSessionCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentSessionCreate) SetErrorMessage(v string) *AgentSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableErrorMessage(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AgentSessionCreate) SetPodID(v string) *AgentSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillablePodID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_c *AgentSessionCreate) AddStepIDs(ids ...int) *AgentSessionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_c *AgentSessionCreate) AddSteps(v ...*AgentStep) *AgentSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := agentsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := agentsession.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := agentsession.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := agentsession.DefaultCost
		_c.mutation.SetCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "AgentSession.task"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "AgentSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := agentsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "AgentSession.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "AgentSession.tokens_out"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "AgentSession.cost"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(agentsession.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(agentsession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(agentsession.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = &value
	}
	if value, ok := _c.mutation.PlanOverview(); ok {
		_spec.SetField(agentsession.FieldPlanOverview, field.TypeString, value)
		_node.PlanOverview = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agentsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(agentsession.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(agentsession.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(agentsession.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(agentsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
